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

package bytesx

import "github.com/golang/glog"

// Tests is this package's `*_tests` entry point (§4.H). It takes a plain
// bool instead of assertx.TestArguments: package assertx depends on arena,
// which itself depends on bytesx, so bytesx importing assertx back would
// cycle.
func Tests(show bool) bool {
	result := true

	buf := make([]byte, FormatBufferSize())
	for _, v := range []uint64{0, 1, 255, 1 << 40, ^uint64(0)} {
		out := FormatU64(buf, v, FormatOpts{Base: Hex})
		got := ParseU64Hex(out)
		result = result && got.Value == v && got.Consumed == len(out)
	}

	result = result && AlignForward(0, 8) == 0
	result = result && AlignForward(1, 8) == 8
	result = result && AlignForward(8, 8) == 8
	result = result && AlignForward(AlignForward(13, 16), 16) == AlignForward(13, 16)

	result = result && Equal([]byte("abc"), []byte("abc"))
	result = result && !Equal([]byte("abc"), []byte("abd"))

	if show {
		glog.V(1).Infof("bytesx: Tests result=%v", result)
	}
	return result
}
