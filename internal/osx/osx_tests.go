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

package osx

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/golang/glog"
)

// Tests is this package's `*_tests` entry point (§4.H). Like
// arena.Tests, it takes a plain bool rather than assertx.TestArguments to
// avoid assertx (which depends on osx) importing back.
func Tests(show bool) bool {
	result := true

	dir, err := os.MkdirTemp("", "osx-tests-")
	if err != nil {
		return false
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "probe.txt")
	result = result && WriteWholeFile(path, []byte("hello\n")) == nil

	fd, err := FileOpen(path, OpenFlags{Read: true}, OpenPerms{Read: true})
	result = result && err == nil
	if err == nil {
		size, sizeErr := FileGetSize(fd)
		result = result && sizeErr == nil && size == 6
		result = result && FileClose(fd)
	}

	echoCmd, echoArgs := echoProbeCommand()
	h, err := Spawn(echoCmd, echoArgs, nil, Capture{Stdout: true})
	if err == nil {
		res, werr := WaitSync(h)
		result = result && werr == nil && res.Result == Success
	} else {
		result = false
	}

	if show {
		glog.V(1).Infof("osx: Tests result=%v", result)
	}
	return result
}

// echoProbeCommand returns a trivial, always-present command used to
// exercise Spawn/WaitSync without depending on any other package (or on
// clang) being present and correct.
func echoProbeCommand() (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", "echo hello"}
	}
	return "/bin/echo", []string{"hello"}
}
