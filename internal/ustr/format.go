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
	"math/big"
	"strings"

	"github.com/buster-os/builder/internal/arena"
	"github.com/buster-os/builder/internal/bytesx"
)

// Stringer is implemented by out-of-package values placed into a `{EOs}` or
// `{SOsL}` placeholder (osx.OsError, argv.List) so that package ustr never
// has to import them directly.
type Stringer interface {
	String() string
}

// FormatArena expands a `{T}`/`{T:K}` template against args, writing the
// result into a. Unknown placeholders (unrecognized T, or a T whose arg
// doesn't type-assert as expected) are emitted verbatim, braces included.
func FormatArena(a *arena.Arena, format String8, args ...interface{}) (String8, error) {
	var sb strings.Builder
	argi := 0
	s := string(format)
	for i := 0; i < len(s); {
		if s[i] != '{' {
			sb.WriteByte(s[i])
			i++
			continue
		}
		end := strings.IndexByte(s[i:], '}')
		if end < 0 {
			sb.WriteByte(s[i])
			i++
			continue
		}
		end += i
		placeholder := s[i+1 : end]
		typ, base, hasBase := strings.Cut(placeholder, ":")
		rendered, ok := renderPlaceholder(typ, base, hasBase, args, &argi)
		if !ok {
			sb.WriteString(s[i : end+1])
		} else {
			sb.WriteString(rendered)
		}
		i = end + 1
	}
	return String8(sb.String()).DuplicateArena(a, false)
}

func baseOf(k string, hasBase bool) bytesx.Base {
	if !hasBase {
		return bytesx.Decimal
	}
	switch k {
	case "b":
		return bytesx.Binary
	case "o":
		return bytesx.Octal
	case "x":
		return bytesx.Hex
	default:
		return bytesx.Decimal
	}
}

func renderPlaceholder(typ, base string, hasBase bool, args []interface{}, argi *int) (string, bool) {
	if *argi >= len(args) {
		return "", false
	}
	arg := args[*argi]

	switch typ {
	case "SOs", "S8":
		v, ok := arg.(String8)
		if !ok {
			if v2, ok2 := arg.(StringOs); ok2 {
				v, ok = String8(v2), true
			}
		}
		if !ok {
			return "", false
		}
		*argi++
		return string(v), true
	case "S16":
		v, ok := arg.(String16)
		if !ok {
			return "", false
		}
		*argi++
		var sb strings.Builder
		for _, c := range v {
			sb.WriteRune(rune(c))
		}
		return sb.String(), true
	case "OsC":
		*argi++
		switch v := arg.(type) {
		case byte:
			return string([]byte{v}), true
		case uint16:
			return string(rune(v)), true
		default:
			return "", false
		}
	case "EOs", "SOsL":
		v, ok := arg.(Stringer)
		if !ok {
			return "", false
		}
		*argi++
		return v.String(), true
	case "u8", "u16", "u32", "u64":
		val, ok := toUint64(arg)
		if !ok {
			return "", false
		}
		*argi++
		buf := make([]byte, bytesx.FormatBufferSize())
		return string(bytesx.FormatU64(buf, val, bytesx.FormatOpts{Base: baseOf(base, hasBase)})), true
	case "s8", "s16", "s32", "s64":
		val, ok := toInt64(arg)
		if !ok {
			return "", false
		}
		*argi++
		buf := make([]byte, bytesx.FormatBufferSize())
		b := baseOf(base, hasBase)
		signed := b == bytesx.Decimal
		return string(bytesx.FormatU64(buf, uint64(val), bytesx.FormatOpts{Base: b, Signed: signed})), true
	case "u128":
		v, ok := arg.(*big.Int)
		if !ok {
			return "", false
		}
		*argi++
		return v.Text(radixOf(base, hasBase)), true
	case "s128":
		v, ok := arg.(*big.Int)
		if !ok {
			return "", false
		}
		*argi++
		return v.Text(radixOf(base, hasBase)), true
	default:
		return "", false
	}
}

func radixOf(k string, hasBase bool) int {
	if !hasBase {
		return 10
	}
	switch k {
	case "b":
		return 2
	case "o":
		return 8
	case "x":
		return 16
	default:
		return 10
	}
}

func toUint64(arg interface{}) (uint64, bool) {
	switch v := arg.(type) {
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	default:
		return 0, false
	}
}

func toInt64(arg interface{}) (int64, bool) {
	switch v := arg.(type) {
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}
