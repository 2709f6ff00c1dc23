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

// Package target identifies the native CPU (arch + model) and produces
// the compiler triple and -march/-mcpu strings the build driver's
// argument synthesis needs (component I).
package target

import "fmt"

// Arch is the closed set of CPU architectures the driver knows how to
// target.
type Arch int

const (
	ArchX86_64 Arch = iota
	ArchAArch64
)

func (a Arch) String() string {
	switch a {
	case ArchX86_64:
		return "x86_64"
	case ArchAArch64:
		return "aarch64"
	default:
		return "unknown"
	}
}

// OS is the closed set of target operating systems.
type OS int

const (
	OSLinux OS = iota
	OSMacOS
	OSWindows
	OSUEFI
	OSAndroid
	OSIOS
	OSFreestanding
)

func (o OS) String() string {
	switch o {
	case OSLinux:
		return "linux"
	case OSMacOS:
		return "macos"
	case OSWindows:
		return "windows"
	case OSUEFI:
		return "uefi"
	case OSAndroid:
		return "android"
	case OSIOS:
		return "ios"
	case OSFreestanding:
		return "freestanding"
	default:
		return "unknown"
	}
}

// Model is a large closed enum of specific CPU microarchitectures, used to
// pick the exact -march=/-mcpu= string. Unknown/Baseline covers anything
// cpu_detect_model() couldn't positively identify.
type Model int

const (
	ModelBaseline Model = iota

	// x86-64 families.
	ModelX86_64V2
	ModelX86_64V3
	ModelSkylake
	ModelIceLake
	ModelAlderLake
	ModelZen2
	ModelZen3
	ModelZen4

	// aarch64 families.
	ModelAppleM1
	ModelAppleM2
	ModelAppleM3
	ModelCortexA72
	ModelCortexA76
	ModelNeoverseN1
	ModelGraviton3
)

var modelStrings = map[Model]string{
	ModelBaseline:   "x86-64",
	ModelX86_64V2:   "x86-64-v2",
	ModelX86_64V3:   "x86-64-v3",
	ModelSkylake:    "skylake",
	ModelIceLake:    "icelake-client",
	ModelAlderLake:  "alderlake",
	ModelZen2:       "znver2",
	ModelZen3:       "znver3",
	ModelZen4:       "znver4",
	ModelAppleM1:    "apple-m1",
	ModelAppleM2:    "apple-m2",
	ModelAppleM3:    "apple-m3",
	ModelCortexA72:  "cortex-a72",
	ModelCortexA76:  "cortex-a76",
	ModelNeoverseN1: "neoverse-n1",
	ModelGraviton3:  "neoverse-v1",
}

// String is the single total mapping cpu_model -> name required by §4.I.
func (m Model) String() string {
	if s, ok := modelStrings[m]; ok {
		return s
	}
	return modelStrings[ModelBaseline]
}

// Target is {cpu_arch, cpu_model, os}.
type Target struct {
	Arch  Arch
	Model Model
	OS    OS
}

// Triple formats arch-os-model.
func (t Target) Triple() string {
	return fmt.Sprintf("%s-%s-%s", t.Arch, t.OS, t.Model)
}

// MarchString is "-march=<model>" on x86 or "-mcpu=<model>" on arm.
func (t Target) MarchString() string {
	switch t.Arch {
	case ArchAArch64:
		return "-mcpu=" + t.Model.String()
	default:
		return "-march=" + t.Model.String()
	}
}
