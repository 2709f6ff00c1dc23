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

package build

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buster-os/builder/internal/target"
)

func TestSynthesizeArgsCompileIncludesMarchAndOptLevel(t *testing.T) {
	argv := SynthesizeArgs(ArgSynthOptions{
		Destination: "out.o",
		Sources:     []string{"src/buster/arena.c"},
		Target:      target.Target{Arch: target.ArchX86_64, Model: target.ModelZen3, OS: target.OSLinux},
		Optimize:    true,
		Compile:     true,
		ClangPath:   "clang",
	})
	assert.Contains(t, argv, "-march=znver3")
	assert.Contains(t, argv, "-O2")
	assert.NotContains(t, argv, "-g")
}

func TestSynthesizeArgsLinkAddsWinsockOnWindows(t *testing.T) {
	argv := SynthesizeArgs(ArgSynthOptions{
		Destination: "cc.exe",
		Sources:     []string{"a.o"},
		Target:      target.Target{Arch: target.ArchX86_64, OS: target.OSWindows},
		Link:        true,
		ClangPath:   "clang",
	})
	assert.Contains(t, argv, "-lws2_32")
	assert.Contains(t, argv, "-fuse-ld=lld")
}

func TestSynthesizeArgsSanitizeDisabledOnArmWindows(t *testing.T) {
	argv := SynthesizeArgs(ArgSynthOptions{
		Target:    target.Target{Arch: target.ArchAArch64, OS: target.OSWindows},
		Sanitize:  true,
		ClangPath: "clang",
	})
	for _, a := range argv {
		assert.NotContains(t, a, "fsanitize", "aarch64-windows never gets the sanitizer flag")
	}
}

func TestSynthesizeArgsSanitizeEnabledElsewhere(t *testing.T) {
	argv := SynthesizeArgs(ArgSynthOptions{
		Target:    target.Target{Arch: target.ArchX86_64, OS: target.OSLinux},
		Sanitize:  true,
		ClangPath: "clang",
	})
	assert.Contains(t, argv, "-fsanitize=address,undefined,bounds,fuzzer")
}

func TestSynthesizeArgsDebugInfoAddsDashG(t *testing.T) {
	argv := SynthesizeArgs(ArgSynthOptions{
		Target:              target.Target{Arch: target.ArchX86_64, OS: target.OSLinux},
		HasDebugInformation: true,
		ClangPath:           "clang",
	})
	assert.Contains(t, argv, "-g")
}

func TestBoolDefineFormatting(t *testing.T) {
	assert.Equal(t, "-DBUSTER_FUZZING=1", boolDefine("BUSTER_FUZZING", true))
	assert.Equal(t, "-DBUSTER_FUZZING=0", boolDefine("BUSTER_FUZZING", false))
}
