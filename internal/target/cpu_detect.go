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

import "runtime"

// DetectModel dispatches to the arch-specific (and, for aarch64, OS-specific)
// native detector selected at compile time via build tags.
func DetectModel() Model {
	return detectModelNative()
}

// DetectArch maps runtime.GOARCH onto the closed Arch enum. Anything other
// than amd64/arm64 is unreachable: the driver only ships those two build
// targets.
func DetectArch() Arch {
	switch runtime.GOARCH {
	case "arm64":
		return ArchAArch64
	default:
		return ArchX86_64
	}
}

// DetectOS maps runtime.GOOS onto the closed OS enum.
func DetectOS() OS {
	switch runtime.GOOS {
	case "darwin":
		return OSMacOS
	case "windows":
		return OSWindows
	default:
		return OSLinux
	}
}

// DetectHost builds the Target describing the machine the driver is
// currently running on.
func DetectHost() Target {
	return Target{
		Arch:  DetectArch(),
		Model: DetectModel(),
		OS:    DetectOS(),
	}
}
