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
	"errors"
	"unicode/utf16"
	"unsafe"

	"github.com/buster-os/builder/internal/arena"
)

var errTooSmall = errors.New("ustr: destination too small")

// String16 is a non-owning view of UTF-16 code units (used verbatim on
// Windows, and internally wherever code needs to reason about UTF-16
// regardless of host OS, e.g. cross-compiling argv synthesis for a
// Windows target from a POSIX build host).
type String16 []uint16

// FromPointer16 scans buf for the first zero code unit.
func FromPointer16(buf []uint16) String16 {
	for i, c := range buf {
		if c == 0 {
			return String16(buf[:i])
		}
	}
	return String16(buf)
}

// FromPointerLength16 wraps a known-length buffer verbatim.
func FromPointerLength16(buf []uint16) String16 { return String16(buf) }

// String decodes s as UTF-16 into a Go string (unlike String8, s can't be
// converted directly: Go defines no string([]uint16) conversion).
func (s String16) String() string { return string(utf16.Decode(s)) }

func (s String16) Slice(start, end int) String16 { return s[start:end] }
func (s String16) SliceStart(start int) String16 { return s[start:] }

func (s String16) Equal(o String16) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

func (s String16) FirstCodePoint(c uint16) uint64 {
	for i, v := range s {
		if v == c {
			return uint64(i)
		}
	}
	return sentinelNoMatch
}

func (s String16) LastCodePoint(c uint16) uint64 {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c {
			return uint64(i)
		}
	}
	return sentinelNoMatch
}

func (s String16) FirstSequence(t String16) uint64 {
	if len(t) == 0 {
		return 0
	}
	for i := 0; i+len(t) <= len(s); i++ {
		if s[i:i+len(t)].Equal(t) {
			return uint64(i)
		}
	}
	return sentinelNoMatch
}

func (s String16) StartsWith(prefix String16) bool {
	return len(s) >= len(prefix) && s[:len(prefix)].Equal(prefix)
}

func (s String16) EndsWith(suffix String16) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):].Equal(suffix)
}

func (s String16) DuplicateArena(a *arena.Arena, nulTerminate bool) (String16, error) {
	extra := uint64(0)
	if nulTerminate {
		extra = 1
	}
	raw, err := a.Allocate((uint64(len(s))+extra)*2, 2)
	if err != nil {
		return nil, err
	}
	buf := bytesToU16(raw)
	copy(buf, s)
	if nulTerminate {
		buf[len(s)] = 0
		return buf[:len(s)], nil
	}
	return buf, nil
}

func JoinArena16(a *arena.Arena, parts []String16, sep String16, nulTerminate bool) (String16, error) {
	total := 0
	for i, p := range parts {
		total += len(p)
		if i > 0 {
			total += len(sep)
		}
	}
	extra := 0
	if nulTerminate {
		extra = 1
	}
	raw, err := a.Allocate(uint64(total+extra)*2, 2)
	if err != nil {
		return nil, err
	}
	buf := bytesToU16(raw)
	off := 0
	for i, p := range parts {
		if i > 0 {
			off += copy(buf[off:], sep)
		}
		off += copy(buf[off:], p)
	}
	if nulTerminate {
		buf[total] = 0
	}
	return buf[:total], nil
}

func (s String16) CodePointCount(c uint16) int {
	n := 0
	for _, v := range s {
		if v == c {
			n++
		}
	}
	return n
}

func Copy16(dst, src String16) error {
	if len(dst) < len(src) {
		return errTooSmall
	}
	copy(dst, src)
	return nil
}

const sentinelNoMatch = ^uint64(0)

// bytesToU16 reinterprets an arena-backed buffer as a []uint16 in place:
// both of this file's callers request the underlying arena.Allocate with
// align=2, so b is guaranteed 2-byte aligned and the reinterpret is safe.
// It must NOT copy into a freshly made() slice — doing so would silently
// move the string off the arena and onto the Go heap, breaking the
// "arenas own all transitively-reachable buffers they hand out" rule.
func bytesToU16(b []byte) []uint16 {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&b[0])), len(b)/2)
}
