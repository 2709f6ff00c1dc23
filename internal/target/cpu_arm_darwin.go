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

//go:build arm64 && darwin

package target

import (
	"strings"

	"golang.org/x/sys/unix"
)

// appleFamilyModels maps the hw.cpufamily sysctl value (a stable per-chip
// generation ID Apple documents in <mach/machine.h>) to a Model.
var appleFamilyModels = map[uint32]Model{
	0x1b588bb3: ModelAppleM1, // kCPUFamilyFirestorm / Icestorm (M1 family)
	0xda33d83d: ModelAppleM2, // Avalanche / Blizzard (M2 family)
	0xfa33415e: ModelAppleM3, // Everest / Sawtooth (M3 family)
}

// detectModelNative reads hw.cpufamily first, falling back to parsing
// machdep.cpu.brand_string for "Apple M<n>" when the family ID is unknown
// (a new chip generation shipped before this table was updated).
func detectModelNative() Model {
	if family, err := unix.SysctlUint32("hw.cpufamily"); err == nil {
		if m, ok := appleFamilyModels[family]; ok {
			return m
		}
	}

	brand, err := unix.Sysctl("machdep.cpu.brand_string")
	if err != nil {
		return ModelBaseline
	}
	switch {
	case strings.Contains(brand, "M3"):
		return ModelAppleM3
	case strings.Contains(brand, "M2"):
		return ModelAppleM2
	case strings.Contains(brand, "M1"):
		return ModelAppleM1
	default:
		return ModelBaseline
	}
}
