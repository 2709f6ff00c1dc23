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

// Package bytesx holds the byte-level primitives shared by every other
// package in the tree: integer parse/format, byte-span compare, alignment
// and code-point classification. Nothing here allocates on the heap except
// where the caller hands in the destination buffer.
package bytesx

// Base selects the numeral system used by ParseU64/FormatU64.
type Base int

const (
	Binary Base = iota
	Octal
	Decimal
	Hex
)

// SentinelNoMatch is the all-ones "not found" return value used throughout
// the string-search operations in package ustr.
const SentinelNoMatch = ^uint64(0)

// ParseResult is what every ParseU64* variant returns: the value consumed so
// far and how many bytes of the input were consumed. The parsers never
// fail outright; callers decide validity by comparing Consumed against the
// length they expected to consume.
type ParseResult struct {
	Value    uint64
	Consumed int
}

func isDecDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isOctDigit(c byte) bool  { return c >= '0' && c <= '7' }
func isBinDigit(c byte) bool  { return c == '0' || c == '1' }
func isHexLower(c byte) bool  { return c >= 'a' && c <= 'f' }
func isHexUpper(c byte) bool  { return c >= 'A' && c <= 'F' }
func isHexDigit(c byte) bool  { return isDecDigit(c) || isHexLower(c) || isHexUpper(c) }
func IsASCIISpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
func IsIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func IsIdentCont(c byte) bool { return IsIdentStart(c) || isDecDigit(c) }

func hexVal(c byte) uint64 {
	switch {
	case isDecDigit(c):
		return uint64(c - '0')
	case isHexLower(c):
		return uint64(c-'a') + 10
	case isHexUpper(c):
		return uint64(c-'A') + 10
	default:
		return 0
	}
}

// ParseU64Hex greedily consumes hex digits (either case, no "0x" prefix
// expected) from s and returns the accumulated value.
func ParseU64Hex(s []byte) ParseResult {
	var v uint64
	i := 0
	for i < len(s) && isHexDigit(s[i]) {
		v = v<<4 | hexVal(s[i])
		i++
	}
	return ParseResult{Value: v, Consumed: i}
}

// ParseU64Dec greedily consumes decimal digits from s. No sign handling:
// callers strip a leading '-' themselves and negate with overflow checking.
func ParseU64Dec(s []byte) ParseResult {
	var v uint64
	i := 0
	for i < len(s) && isDecDigit(s[i]) {
		v = v*10 + uint64(s[i]-'0')
		i++
	}
	return ParseResult{Value: v, Consumed: i}
}

// ParseU64Oct greedily consumes octal digits from s.
func ParseU64Oct(s []byte) ParseResult {
	var v uint64
	i := 0
	for i < len(s) && isOctDigit(s[i]) {
		v = v<<3 | uint64(s[i]-'0')
		i++
	}
	return ParseResult{Value: v, Consumed: i}
}

// ParseU64Bin greedily consumes '0'/'1' digits from s.
func ParseU64Bin(s []byte) ParseResult {
	var v uint64
	i := 0
	for i < len(s) && isBinDigit(s[i]) {
		v = v<<1 | uint64(s[i]-'0')
		i++
	}
	return ParseResult{Value: v, Consumed: i}
}

// FormatOpts controls FormatU64.
type FormatOpts struct {
	Base      Base
	Signed    bool // writes a leading '-'; only meaningful with Base == Decimal
	Prefix    bool // writes 0x/0d/0o/0b; mutually exclusive with Signed
}

const maxFormatLen = 2 + 1 + 65 // prefix + sign + 64 binary digits + 1 slack

// FormatU64 writes the textual representation of v into dst (which must be
// at least maxFormatLen bytes, see FormatBufferSize) and returns the
// written sub-slice. Digits are built in reverse starting at the end of dst
// and the result is the tail of dst actually used.
func FormatU64(dst []byte, v uint64, opts FormatOpts) []byte {
	if len(dst) < maxFormatLen {
		panic("bytesx: FormatU64 destination buffer too small")
	}
	var alphabet string
	var shift uint
	switch opts.Base {
	case Hex:
		alphabet = "0123456789abcdef"
		shift = 4
	case Octal:
		alphabet = "01234567"
		shift = 3
	case Binary:
		alphabet = "01"
		shift = 1
	default:
		alphabet = "0123456789"
	}

	neg := opts.Signed && opts.Base == Decimal && int64(v) < 0
	if neg {
		v = uint64(-int64(v))
	}

	i := len(dst)
	if v == 0 {
		i--
		dst[i] = '0'
	} else if shift != 0 {
		for v != 0 {
			i--
			dst[i] = alphabet[v&((1<<shift)-1)]
			v >>= shift
		}
	} else {
		for v != 0 {
			i--
			dst[i] = alphabet[v%10]
			v /= 10
		}
	}

	if neg {
		i--
		dst[i] = '-'
	}
	if opts.Prefix && !opts.Signed {
		var p0, p1 byte
		switch opts.Base {
		case Hex:
			p0, p1 = '0', 'x'
		case Octal:
			p0, p1 = '0', 'o'
		case Binary:
			p0, p1 = '0', 'b'
		default:
			p0, p1 = '0', 'd'
		}
		i--
		dst[i] = p1
		i--
		dst[i] = p0
	}
	return dst[i:]
}

// FormatBufferSize is the minimum destination length FormatU64 requires.
func FormatBufferSize() int { return maxFormatLen }

// AlignForward rounds n up to the nearest multiple of the power-of-two a.
// a's power-of-two-ness is an unchecked precondition, matching the C
// original's release-mode behavior.
func AlignForward(n, a uint64) uint64 {
	return (n + a - 1) &^ (a - 1)
}

// Equal does a bytewise compare; identical backing pointers (same slice
// header address and length) are reported equal without re-scanning.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	if &a[0] == &b[0] {
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
