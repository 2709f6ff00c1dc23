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

// Package argv implements the argument-vector iterator and builder: a
// reader that walks a platform argv the same way regardless of whether
// the platform handed it over as a POSIX-style array or a flat Windows
// command line, and a builder that synthesizes a platform-correct argv
// for spawning children.
package argv

import (
	"strings"

	"github.com/buster-os/builder/internal/arena"
	"github.com/buster-os/builder/internal/ustr"
)

// List is a platform-correct argv: a slice of already-split arguments on
// every platform. On Windows, FromProcessArgv (list_windows.go) fills it by
// splitting the flat command line with ParseWindowsCommandLine. It
// implements ustr.Stringer so it can be dropped into a `{SOsL}` format
// placeholder.
type List []ustr.StringOs

// String renders the whole list, used by `{SOsL}` and for diagnostics.
func (l List) String() string {
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// Iterator walks a List's arguments in order. Null/absent termination is
// modeled by Next's ok return rather than a sentinel pointer.
type Iterator struct {
	list List
	pos  int
}

// NewIterator wraps list for sequential reading.
func NewIterator(list List) *Iterator { return &Iterator{list: list} }

// Next returns the next argument, or ok=false once the list is exhausted.
// This is just "return list[pos]; pos++" since the underlying
// representation is already an array of independent strings — on Windows
// the flat-command-line walk happens earlier, in ParseWindowsCommandLine
// (windows_cmdline.go).
func (it *Iterator) Next() (ustr.StringOs, bool) {
	if it.pos >= len(it.list) {
		return nil, false
	}
	arg := it.list[it.pos]
	it.pos++
	return arg, true
}

// Builder accumulates arguments into an arena and produces a
// platform-correct List.
type Builder struct {
	a    *arena.Arena
	args List
}

// NewBuilder creates a builder backed by a.
func NewBuilder(a *arena.Arena) *Builder { return &Builder{a: a} }

// Add duplicates arg into the builder's arena and appends it.
func (b *Builder) Add(arg ustr.StringOs) error {
	dup, err := ustr.DuplicateArenaOs(b.a, arg, true)
	if err != nil {
		return err
	}
	b.args = append(b.args, dup)
	return nil
}

// AddString is a convenience wrapper for callers holding plain Go strings.
func (b *Builder) AddString(arg string) error {
	return b.Add(ustr.StringOs(arg))
}

// Build returns the accumulated argv. On POSIX this is the array of
// duplicated argument buffers, trailing-null-terminated conceptually by
// List's own length (Go slices are self-describing, so no sentinel
// element is appended — BuildWindowsCommandLine in windows_cmdline.go
// produces the flat Windows command-line form).
func (b *Builder) Build() List {
	return b.args
}

// DuplicateAndSubstituteFirst produces a new List where the first element
// of existing is replaced by first and any extras are appended after the
// rest of existing — used to re-spawn a process with a different argv[0]
// (e.g. substituting the real executable path for a build driver re-exec).
func DuplicateAndSubstituteFirst(a *arena.Arena, existing List, first ustr.StringOs, extras ...ustr.StringOs) (List, error) {
	b := NewBuilder(a)
	if err := b.Add(first); err != nil {
		return nil, err
	}
	for i := 1; i < len(existing); i++ {
		if err := b.Add(existing[i]); err != nil {
			return nil, err
		}
	}
	for _, e := range extras {
		if err := b.Add(e); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// FromStrings wraps plain Go strings as a List without going through an
// arena — used for cheap one-off spawns (compile-commands emission,
// tests) where the caller doesn't otherwise need arena-owned memory.
func FromStrings(args ...string) List {
	l := make(List, len(args))
	for i, s := range args {
		l[i] = ustr.StringOs(s)
	}
	return l
}

// Strings renders l as []string for handing to osx.Spawn.
func (l List) Strings() []string {
	out := make([]string, len(l))
	for i, s := range l {
		out[i] = s.String()
	}
	return out
}
