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

//go:build linux || darwin

package osx

import (
	"os"
	"runtime"

	"golang.org/x/sys/unix"
)

// LastError wraps a Go error (typically from a failed osx call) as an
// OsError, extracting the platform errno where possible.
func LastError(err error) OsError {
	if err == nil {
		return OsError{}
	}
	if errno, ok := err.(unix.Errno); ok {
		return OsError{code: int(errno), msg: errno.Error()}
	}
	return OsError{code: -1, msg: err.Error()}
}

// IsTTY reports whether fd refers to an interactive terminal.
func IsTTY(fd *FileDescriptor) bool {
	if fd == nil || fd.f == nil {
		return false
	}
	_, err := unix.IoctlGetTermios(int(fd.f.Fd()), termiosIoctl())
	return err == nil
}

func termiosIoctl() uint {
	if runtime.GOOS == "darwin" {
		return unix.TIOCGETA
	}
	return unix.TCGETS
}

func probeDebugger() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	data, err := os.ReadFile("/proc/self/status")
	if err != nil {
		return false
	}
	const key = "TracerPid:"
	for i := 0; i+len(key) <= len(data); i++ {
		if string(data[i:i+len(key)]) == key {
			j := i + len(key)
			for j < len(data) && (data[j] == ' ' || data[j] == '\t') {
				j++
			}
			return j < len(data) && data[j] != '0'
		}
	}
	return false
}

func trapDebugger() {
	_ = unix.Kill(os.Getpid(), unix.SIGTRAP)
}
