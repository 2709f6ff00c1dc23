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
	"unicode/utf16"
	"unicode/utf8"

	"github.com/buster-os/builder/internal/arena"
)

// ToWide converts a String8 (UTF-8) to a String16 (UTF-16) inside a, doing
// full surrogate-pair-aware conversion. The C original implements only the
// ASCII subset and documents non-ASCII as a known gap; this implementation
// covers the general case since Go's unicode/utf16 and unicode/utf8 make
// that free, and the spec calls non-ASCII conversion a required
// correctness path (see SPEC_FULL.md's Open Question decision).
func ToWide(a *arena.Arena, s String8) (String16, error) {
	// Fast path: pure ASCII needs no decoding, one code unit per byte.
	ascii := true
	for _, b := range s {
		if b >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		raw, err := a.Allocate(uint64(len(s))*2, 2)
		if err != nil {
			return nil, err
		}
		buf := bytesToU16(raw)
		for i, b := range s {
			buf[i] = uint16(b)
		}
		return buf, nil
	}

	// General path: decode runes, then UTF-16-encode (surrogate pairs for
	// anything above the BMP).
	runes := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRune(s[i:])
		runes = append(runes, r)
		i += size
	}
	units := utf16.Encode(runes)
	raw, err := a.Allocate(uint64(len(units))*2, 2)
	if err != nil {
		return nil, err
	}
	buf := bytesToU16(raw)
	copy(buf, units)
	return buf, nil
}

// ToNarrow converts a String16 (UTF-16) to a String8 (UTF-8) inside a.
func ToNarrow(a *arena.Arena, s String16) (String8, error) {
	runes := utf16.Decode([]uint16(s))
	n := 0
	for _, r := range runes {
		n += utf8.RuneLen(r)
	}
	buf, err := a.Allocate(uint64(n), 1)
	if err != nil {
		return nil, err
	}
	off := 0
	for _, r := range runes {
		off += utf8.EncodeRune(buf[off:], r)
	}
	return String8(buf), nil
}
