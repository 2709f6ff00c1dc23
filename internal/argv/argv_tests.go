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

package argv

import (
	"github.com/buster-os/builder/internal/assertx"
)

// Tests is this package's `*_tests` entry point (§4.H): round-trips a
// builder's output through the iterator, per §8 property 7.
func Tests(args assertx.TestArguments) bool {
	return assertx.Run(args, func(args assertx.TestArguments) bool {
		result := true

		b := NewBuilder(args.Arena)
		want := []string{"clang", "-o", "out.o", "src/foo.c"}
		for _, w := range want {
			if err := b.AddString(w); err != nil {
				result = false
			}
		}
		list := b.Build()

		it := NewIterator(list)
		for _, w := range want {
			got, ok := it.Next()
			result = result && ok && got.String() == w
		}
		_, ok := it.Next()
		result = result && !ok

		return result
	})
}
