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

package osx

import "os"

// OsErrorBufferMax bounds the caller-owned buffer ErrorWriteMessage needs.
const OsErrorBufferMax = 256

// OsError is a raw platform error code, wrapping whatever errno/GetLastError
// value last_error() observed. It implements ustr.Stringer so it can be
// dropped straight into a `{EOs}` format placeholder without package ustr
// importing package osx.
type OsError struct {
	code int
	msg  string
}

func (e OsError) String() string { return e.msg }

// ErrorWriteMessage formats err's platform message into buffer (which must
// be at least OsErrorBufferMax bytes) and returns the written sub-slice.
func ErrorWriteMessage(buffer []byte, err OsError) string {
	msg := err.msg
	if len(msg) > len(buffer) {
		msg = msg[:len(buffer)]
	}
	n := copy(buffer, msg)
	return string(buffer[:n])
}

// Exit terminates the process; never returns.
func Exit(code int) { os.Exit(code) }

var debuggerProbed = -1 // -1 = not yet probed, 0/1 = cached result

// IsDebuggerPresent is a one-shot probe cached in the calling program's
// state (the cache lives here as a package var rather than requiring every
// caller to thread a flag through, matching the "debugger-probed-flag"
// field of the C original's program_state).
func IsDebuggerPresent() bool {
	if debuggerProbed >= 0 {
		return debuggerProbed == 1
	}
	present := probeDebugger()
	if present {
		debuggerProbed = 1
	} else {
		debuggerProbed = 0
	}
	return present
}

// Fail traps into the debugger if one is attached, otherwise exits with
// code 1. Used by the assertion harness (package assertx).
func Fail() {
	if IsDebuggerPresent() {
		trapDebugger()
		return
	}
	os.Exit(1)
}
