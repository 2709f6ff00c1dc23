// Copyright 2026 Buster Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64

package target

import "github.com/klauspost/cpuid/v2"

// detectModelNative reads CPUID leaves 0 and 1 (via klauspost/cpuid/v2,
// which already does the vendor-string + family/model/stepping decode the
// C original hand-rolls) and maps the result into the closed Model enum.
// Unknown vendors/families fall through to ModelBaseline.
func detectModelNative() Model {
	switch {
	case cpuid.CPU.VendorID == cpuid.Intel:
		switch {
		case cpuid.CPU.Supports(cpuid.AVX512F) && cpuid.CPU.FamilyID == 6 && cpuid.CPU.ModelID >= 0x8c:
			return ModelAlderLake
		case cpuid.CPU.Supports(cpuid.AVX512F):
			return ModelIceLake
		case cpuid.CPU.Supports(cpuid.AVX2):
			return ModelSkylake
		case cpuid.CPU.Supports(cpuid.AVX):
			return ModelX86_64V3
		default:
			return ModelX86_64V2
		}
	case cpuid.CPU.VendorID == cpuid.AMD:
		switch {
		case cpuid.CPU.FamilyID == 0x19 && cpuid.CPU.ModelID >= 0x10:
			return ModelZen4
		case cpuid.CPU.FamilyID == 0x19:
			return ModelZen3
		case cpuid.CPU.FamilyID == 0x17:
			return ModelZen2
		default:
			return ModelX86_64V2
		}
	default:
		return ModelBaseline
	}
}
