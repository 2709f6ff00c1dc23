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

package target

import "github.com/buster-os/builder/internal/assertx"

// Tests is this package's `*_tests` entry point (§4.H): checks that host
// detection returns a target whose Triple/MarchString don't fall through
// to "unknown", per §8 property for closed enums.
func Tests(args assertx.TestArguments) bool {
	return assertx.Run(args, func(args assertx.TestArguments) bool {
		result := true

		host := DetectHost()
		result = result && host.Arch.String() != "unknown"
		result = result && host.OS.String() != "unknown"
		result = result && host.Model.String() != ""

		triple := host.Triple()
		result = result && len(triple) > 0

		march := host.MarchString()
		switch host.Arch {
		case ArchAArch64:
			result = result && march == "-mcpu="+host.Model.String()
		default:
			result = result && march == "-march="+host.Model.String()
		}

		return result
	})
}
