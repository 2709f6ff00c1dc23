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

//go:build !windows

package argv

import "os"

// FromProcessArgv returns the process's own argv as a List. On POSIX this
// is already an array of independently-terminated strings (§4.E
// "Iterator: POSIX"), so no further parsing is needed.
func FromProcessArgv() List {
	return FromStrings(os.Args...)
}
