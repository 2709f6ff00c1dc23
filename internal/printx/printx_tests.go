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

package printx

import (
	"github.com/buster-os/builder/internal/assertx"
	"github.com/buster-os/builder/internal/ustr"
)

// Tests is this package's `*_tests` entry point (§4.H). Print writes to
// real stdout, so this just exercises the format/write path for errors
// rather than capturing output.
func Tests(args assertx.TestArguments) bool {
	return assertx.Run(args, func(args assertx.TestArguments) bool {
		result := true

		result = result && Print(ustr.String8("printx self-test: v={u32}\n"), uint32(1)) == nil
		result = result && Print(ustr.String8("printx self-test: ok\n")) == nil

		return result
	})
}
