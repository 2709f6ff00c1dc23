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

// Package ustr is the string model: String8 (UTF-8, width-1 code units)
// and String16 (UTF-16, width-2 code units) behind one logical contract,
// plus StringOs, a per-platform alias (see stringos_posix.go /
// stringos_windows.go). Every string is a non-owning {pointer, length}
// view over code units, never code points or bytes-of-a-different-width.
// Interior code stays within one width; conversion lives only at the OS
// boundary (convert.go).
package ustr

import (
	"bytes"

	"github.com/buster-os/builder/internal/arena"
	"github.com/buster-os/builder/internal/bytesx"
)

// String8 is a non-owning view of UTF-8 code units. Length is len(s), i.e.
// bytes, which for UTF-8 are also the code units.
type String8 []byte

// FromPointer wraps a NUL-terminated byte buffer by scanning to the first
// zero byte, mirroring the C original's from_pointer contract.
func FromPointer(buf []byte) String8 {
	i := bytes.IndexByte(buf, 0)
	if i < 0 {
		return String8(buf)
	}
	return String8(buf[:i])
}

// FromPointerLength wraps a known-length buffer verbatim.
func FromPointerLength(buf []byte) String8 { return String8(buf) }

// Slice returns s[start:end], pure length arithmetic, never a copy.
func (s String8) Slice(start, end int) String8 { return s[start:end] }

// SliceStart returns s[start:].
func (s String8) SliceStart(start int) String8 { return s[start:] }

// Equal compares length then bytes.
func (s String8) Equal(o String8) bool { return bytesx.Equal(s, o) }

// FirstCodePoint returns the byte offset of the first occurrence of c, or
// bytesx.SentinelNoMatch if absent. c is a single byte (ASCII) lookup;
// non-ASCII code-point search goes through FirstSequence on the code
// point's UTF-8 encoding.
func (s String8) FirstCodePoint(c byte) uint64 {
	i := bytes.IndexByte(s, c)
	if i < 0 {
		return bytesx.SentinelNoMatch
	}
	return uint64(i)
}

// LastCodePoint is FirstCodePoint scanning from the end.
func (s String8) LastCodePoint(c byte) uint64 {
	i := bytes.LastIndexByte(s, c)
	if i < 0 {
		return bytesx.SentinelNoMatch
	}
	return uint64(i)
}

// FirstSequence finds the smallest index i such that s[i:i+len(t)] == t, or
// bytesx.SentinelNoMatch (equivalently, >= len(s)) if t does not occur.
func (s String8) FirstSequence(t String8) uint64 {
	i := bytes.Index(s, t)
	if i < 0 {
		return bytesx.SentinelNoMatch
	}
	return uint64(i)
}

// StartsWith reports whether s begins with prefix.
func (s String8) StartsWith(prefix String8) bool { return bytes.HasPrefix(s, prefix) }

// EndsWith reports whether s ends with suffix.
func (s String8) EndsWith(suffix String8) bool { return bytes.HasSuffix(s, suffix) }

// DuplicateArena copies s into a, optionally reserving and writing a
// trailing NUL (for OS calls that need a zero-terminated buffer).
func (s String8) DuplicateArena(a *arena.Arena, nulTerminate bool) (String8, error) {
	extra := uint64(0)
	if nulTerminate {
		extra = 1
	}
	buf, err := a.Allocate(uint64(len(s))+extra, 1)
	if err != nil {
		return nil, err
	}
	copy(buf, s)
	if nulTerminate {
		buf[len(s)] = 0
		return String8(buf[:len(s)]), nil
	}
	return String8(buf), nil
}

// JoinArena concatenates parts into one fresh arena allocation, optionally
// NUL-terminated.
func JoinArena(a *arena.Arena, parts []String8, sep String8, nulTerminate bool) (String8, error) {
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
	buf, err := a.Allocate(uint64(total+extra), 1)
	if err != nil {
		return nil, err
	}
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
	return String8(buf[:total]), nil
}

// CodePointCount counts occurrences of c in s.
func (s String8) CodePointCount(c byte) int { return bytes.Count(s, []byte{c}) }

// Copy copies src into dst, which must be an owned, large-enough
// destination; returns an error otherwise.
func Copy(dst, src String8) error {
	if len(dst) < len(src) {
		return errTooSmall
	}
	copy(dst, src)
	return nil
}

func (s String8) String() string { return string(s) }

// ParseU64Hex/Dec/Oct/Bin are thin adapters over bytesx's parsers.
func (s String8) ParseU64Hex() bytesx.ParseResult { return bytesx.ParseU64Hex(s) }
func (s String8) ParseU64Dec() bytesx.ParseResult { return bytesx.ParseU64Dec(s) }
func (s String8) ParseU64Oct() bytesx.ParseResult { return bytesx.ParseU64Oct(s) }
func (s String8) ParseU64Bin() bytesx.ParseResult { return bytesx.ParseU64Bin(s) }
