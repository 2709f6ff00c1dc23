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

package ustr

import (
	"github.com/buster-os/builder/internal/assertx"
)

// Tests is this package's `*_tests` entry point (§4.H).
func Tests(args assertx.TestArguments) bool {
	return assertx.Run(args, func(args assertx.TestArguments) bool {
		result := true

		a := String8("hello")
		b := String8("hello")
		result = result && a.Equal(b)
		result = result && !a.Equal(String8("world"))

		dup, err := a.DuplicateArena(args.Arena, true)
		result = result && err == nil && dup.Equal(a)

		joined, err := JoinArena(args.Arena, []String8{String8("a"), String8("b")}, String8(","), false)
		result = result && err == nil && joined.Equal(String8("a,b"))

		wide, err := ToWide(args.Arena, String8("héllo"))
		result = result && err == nil
		narrow, err := ToNarrow(args.Arena, wide)
		result = result && err == nil && narrow.Equal(String8("héllo"))

		out, err := FormatArena(args.Arena, String8("v={u32}"), uint32(7))
		result = result && err == nil && out.Equal(String8("v=7"))

		return result
	})
}
