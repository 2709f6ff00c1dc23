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

// Command builder is the CLI entrypoint for the build driver (§4.G /
// §6): it parses the process argv into a command and flag set, resolves
// the module table against the host target, and runs the two-phase
// compile-then-link scheduler, exiting with the process-result code
// scheme from §6.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"

	"github.com/golang/glog"

	"github.com/buster-os/builder/internal/build"
	"github.com/buster-os/builder/internal/osx"
)

func main() {
	flag.Parse() // registers glog's -v, -logtostderr, etc.
	defer glog.Flush()

	cwd, err := os.Getwd()
	if err != nil {
		glog.Exitf("builder: getwd: %v", err)
	}

	clangPath, err := exec.LookPath("clang")
	if err != nil {
		glog.Exitf("builder: clang not found on PATH: %v", err)
	}

	cmd, flags, err := build.ParseArgs(flag.Args(), os.Environ(), unrecognizedArgument)
	if err != nil {
		glog.Errorf("builder: %v", err)
		os.Exit(osx.Failed.ExitCode())
	}

	result, err := build.Run(context.Background(), build.Inputs{
		Cwd:       cwd,
		ClangPath: clangPath,
		Command:   cmd,
		Flags:     flags,
	})
	if err != nil {
		glog.Errorf("builder: %v", err)
		os.Exit(osx.Unknown.ExitCode())
	}
	os.Exit(result.ExitCode())
}

// unrecognizedArgument is buster_argument_process from §4.G / the ground
// truth in original_source/src/buster/lib.c: "-verbose" is the one
// recognized passthrough; everything else fails the build, per spec.md
// §8 scenario S3.
func unrecognizedArgument(argv []string, envp []string, index int, arg string) error {
	if arg == "-verbose" {
		return nil
	}
	return fmt.Errorf("Unrecognized argument: '%s'", arg)
}
