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

// Package assertx is the test & assertion harness (component H): a
// debugger-aware assertion trap plus a running-result test recorder used
// by library `*_tests` entry points.
package assertx

import (
	"fmt"
	"runtime"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/buster-os/builder/internal/arena"
	"github.com/buster-os/builder/internal/osx"
)

var dmp = diffmatchpatch.New()

// Check traps via assertFailed when cond is false.
func Check(cond bool) {
	if cond {
		return
	}
	assertFailed(caller(1))
}

type location struct {
	file     string
	line     int
	function string
}

func caller(skip int) location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return location{file: "?", line: 0, function: "?"}
	}
	fn := runtime.FuncForPC(pc)
	name := "?"
	if fn != nil {
		name = fn.Name()
	}
	return location{file: file, line: line, function: name}
}

// assertFailed prints the fixed-format diagnostic and fails the process.
func assertFailed(loc location) {
	writeStderr(fmt.Sprintf("assertion failed at %s:%d in %s\n", loc.file, loc.line, loc.function))
	osx.Fail()
}

func writeStderr(s string) {
	_ = osx.FileWrite(osx.Stderr(), []byte(s))
}

// Test records cond into *result (AND-accumulated across calls) and, on
// failure, prints a diagnostic naming the condition's source text and
// traps into the debugger if one is attached. condStr is the caller's own
// stringification of the expression under test, since Go cannot recover
// source text for an arbitrary boolean the way the C original's macro can.
func Test(result *bool, cond bool, condStr string) {
	*result = *result && cond
	if cond {
		return
	}
	loc := caller(1)
	writeStderr(fmt.Sprintf("test failed at %s:%d in %s: %s\n", loc.file, loc.line, loc.function, condStr))
	if osx.IsDebuggerPresent() {
		osx.Fail()
	}
}

// TestEqual is Test specialized for string comparisons: on mismatch it
// reports a readable diff of got vs want instead of just "false", rendered
// with go-diff's diffmatchpatch.
func TestEqual(result *bool, got, want, label string) {
	if got == want {
		*result = *result && true
		return
	}
	*result = false
	loc := caller(1)
	diffs := dmp.DiffMain(want, got, false)
	writeStderr(fmt.Sprintf("test failed at %s:%d in %s: %s mismatch\n%s\n",
		loc.file, loc.line, loc.function, label, dmp.DiffPrettyText(diffs)))
	if osx.IsDebuggerPresent() {
		osx.Fail()
	}
}

// TestArguments bundles the scratch arena and verbosity flag a library's
// `*_tests` entry point receives.
type TestArguments struct {
	Arena *arena.Arena
	Show  bool
}

// Snapshot captures the arena position so a test run can be made
// allocation-transparent by resetting to it afterward (see Restore).
func (a TestArguments) Snapshot() uint64 {
	return a.Arena.Position()
}

// Restore resets the arena back to a position obtained from Snapshot,
// discarding everything a test run allocated.
func (a TestArguments) Restore(pos uint64) {
	a.Arena.SetPosition(pos)
}

// Run wraps a library's `*_tests` function: it snapshots the arena before
// calling fn and restores it afterward regardless of fn's result, matching
// "arenas passed in are snapshotted and reset on exit so tests are
// allocation-transparent."
func Run(args TestArguments, fn func(TestArguments) bool) bool {
	pos := args.Snapshot()
	defer args.Restore(pos)
	return fn(args)
}
