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

package ustr

import "github.com/buster-os/builder/internal/arena"

// StringOs is a width-1 (UTF-8) code unit string on POSIX targets, matching
// what the platform's own file/process APIs natively accept.
type StringOs = String8

// FromPointerOs wraps a NUL-terminated native-width buffer.
func FromPointerOs(buf []byte) StringOs { return FromPointer(buf) }

// DuplicateArenaOs duplicates s into a, the platform-native width.
func DuplicateArenaOs(a *arena.Arena, s StringOs, nulTerminate bool) (StringOs, error) {
	return s.DuplicateArena(a, nulTerminate)
}
