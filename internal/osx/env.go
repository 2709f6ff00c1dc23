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
	"runtime"
)

// GetEnvironmentVariable fetches name from the process environment. On
// POSIX this delegates straight to libc-equivalent os.LookupEnv; on
// Windows the real OS layer would scan the environment block directly so
// its encoding always matches argv's — Go's os.LookupEnv already
// does the UTF-16-correct thing under the hood, so both platforms share
// this one implementation.
func GetEnvironmentVariable(name string) (string, bool) {
	return os.LookupEnv(name)
}

// HomeDirEnvVar names the environment variable toolchain-path discovery
// reads: HOME on POSIX, USERPROFILE on Windows (§6 "Environment").
func HomeDirEnvVar() string {
	if runtime.GOOS == "windows" {
		return "USERPROFILE"
	}
	return "HOME"
}

// Environ returns the inherited environment, unmodified, for passing
// straight through to spawned children (§6 "inherits the caller's
// environment untouched").
func Environ() []string {
	return os.Environ()
}
