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

// Package printx is the `{…}`-placeholder formatter that writes to
// standard output, built on top of package ustr's template engine.
package printx

import (
	"sync"

	"github.com/buster-os/builder/internal/arena"
	"github.com/buster-os/builder/internal/osx"
	"github.com/buster-os/builder/internal/ustr"
)

// stackBufferSize is the minimum per-call scratch size the C original
// requires (">= 8 KiB").
const stackBufferSize = 8 << 10

var (
	mu      sync.Mutex
	scratch *arena.Arena
)

func ensureInit() {
	if scratch != nil {
		return
	}
	a, err := arena.Create(arena.Options{ReservedSize: 1 << 20, InitialSize: stackBufferSize})
	if err != nil {
		panic(err) // arena creation failure is the one fatal condition here, matching §4.B
	}
	scratch = a
}

// Print expands format against args and writes the result to standard
// output in a single buffered write, serialized across goroutines so
// concurrent callers (e.g. the two-phase parallel scheduler logging
// progress) never interleave partial lines.
func Print(format ustr.String8, args ...interface{}) error {
	mu.Lock()
	defer mu.Unlock()
	ensureInit()

	pos := scratch.Position()
	defer scratch.SetPosition(pos)

	out, err := ustr.FormatArena(scratch, format, args...)
	if err != nil {
		return err
	}
	return osx.FileWrite(osx.Stdout(), out)
}
