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

//go:build windows

package osx

import (
	"golang.org/x/sys/windows"
)

// LastError wraps a Go error as an OsError, extracting the Win32 error
// code where possible.
func LastError(err error) OsError {
	if err == nil {
		return OsError{}
	}
	if errno, ok := err.(windows.Errno); ok {
		return OsError{code: int(errno), msg: errno.Error()}
	}
	return OsError{code: -1, msg: err.Error()}
}

// IsTTY reports whether fd refers to an interactive console.
func IsTTY(fd *FileDescriptor) bool {
	if fd == nil || fd.f == nil {
		return false
	}
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(fd.f.Fd()), &mode) == nil
}

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procIsDebuggerPresent = kernel32.NewProc("IsDebuggerPresent")
	procDebugBreak        = kernel32.NewProc("DebugBreak")
)

func probeDebugger() bool {
	r, _, _ := procIsDebuggerPresent.Call()
	return r != 0
}

func trapDebugger() {
	procDebugBreak.Call()
}
