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
	"github.com/buster-os/builder/internal/target"
)

// ArgSynthOptions is the shared option set named in §4.G "Argument
// synthesis", consumed by both the compile and the link path.
type ArgSynthOptions struct {
	Destination         string
	Sources             []string
	Target              target.Target
	Optimize            bool
	Fuzz                bool
	HasDebugInformation bool
	Sanitize            bool
	CI                  bool
	UnityBuild          bool
	UseIoRing           bool
	JustPreprocessor    bool
	Compile             bool
	Link                bool
	ForceColor          bool
	XCSDKPath           string
	ClangPath           string
	IncludeTests        bool
}

// sanitizeDisabledOn reports the one target combination the spec calls
// out as never getting the address sanitizer regardless of the --sanitize
// flag.
func sanitizeDisabledOn(t target.Target) bool {
	return t.Arch == target.ArchAArch64 && t.OS == target.OSWindows
}

// SynthesizeArgs builds the full argv for a single clang/lld invocation,
// shared between the compile and link phases of the scheduler.
func SynthesizeArgs(opts ArgSynthOptions) []string {
	argv := []string{opts.ClangPath}

	argv = append(argv, "-ferror-limit=1")
	if opts.ForceColor {
		argv = append(argv, "-fcolor-diagnostics")
	} else {
		argv = append(argv, "-fno-color-diagnostics")
	}

	if opts.JustPreprocessor && opts.Compile {
		argv = append(argv, "-E")
	} else if opts.Destination != "" {
		argv = append(argv, "-o", opts.Destination)
	}
	argv = append(argv, opts.Sources...)

	if opts.Sanitize && !sanitizeDisabledOn(opts.Target) {
		argv = append(argv, "-fsanitize=address,undefined,bounds,fuzzer")
	}
	if opts.HasDebugInformation {
		argv = append(argv, "-g")
	}
	if opts.XCSDKPath != "" && opts.Target.OS == target.OSMacOS {
		argv = append(argv, "-isysroot", opts.XCSDKPath)
	}

	if opts.Compile {
		argv = append(argv, compileOnlyArgs(opts)...)
	}
	if opts.Link {
		argv = append(argv, linkOnlyArgs(opts)...)
	}

	return argv
}

func compileOnlyArgs(opts ArgSynthOptions) []string {
	argv := []string{
		"-Isrc",
		"-std=gnu2x",
		"-Wall", "-Wextra", "-Wpedantic", "-Wconversion", "-Wshadow",
		"-Wno-unused-parameter", "-Wno-gnu-zero-variadic-macro-arguments",
		"-fwrapv", "-fno-strict-aliasing", "-funsigned-char",
		"-fno-exceptions", "-fno-rtti",
	}

	argv = append(argv, boolDefine("BUSTER_UNITY_BUILD", opts.UnityBuild))
	argv = append(argv, boolDefine("BUSTER_FUZZING", opts.Fuzz))
	argv = append(argv, boolDefine("BUSTER_USE_IO_RING", opts.UseIoRing))
	argv = append(argv, boolDefine("BUSTER_INCLUDE_TESTS", opts.IncludeTests))

	argv = append(argv, opts.Target.MarchString())

	if opts.Optimize {
		argv = append(argv, "-O2")
	} else {
		argv = append(argv, "-O0")
	}

	return argv
}

func linkOnlyArgs(opts ArgSynthOptions) []string {
	argv := []string{"-fuse-ld=lld"}
	if opts.UseIoRing {
		argv = append(argv, "-luring")
	}
	if opts.Target.OS == target.OSWindows {
		argv = append(argv, "-lws2_32")
	}
	return argv
}

func boolDefine(name string, v bool) string {
	if v {
		return "-D" + name + "=1"
	}
	return "-D" + name + "=0"
}
