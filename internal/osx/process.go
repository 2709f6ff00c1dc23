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

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/golang/glog"
)

// ProcessResult is the closed enum described in the GLOSSARY.
type ProcessResult int

const (
	Success ProcessResult = iota
	Failed
	FailedTryAgain
	Crash
	NotExistent
	Running
	Unknown
)

func (r ProcessResult) String() string {
	switch r {
	case Success:
		return "Success"
	case Failed:
		return "Failed"
	case FailedTryAgain:
		return "FailedTryAgain"
	case Crash:
		return "Crash"
	case NotExistent:
		return "NotExistent"
	case Running:
		return "Running"
	default:
		return "Unknown"
	}
}

// ExitCode maps a ProcessResult to the process exit code scheme from §6.
func (r ProcessResult) ExitCode() int {
	switch r {
	case Success:
		return 0
	case Failed:
		return 1
	case FailedTryAgain:
		return 2
	case Crash:
		return 3
	case NotExistent:
		return 4
	case Running:
		return 5
	default:
		return 6
	}
}

// Capture selects which of the child's standard streams get piped back to
// the parent and drained by WaitSync.
type Capture struct {
	Stdin  bool
	Stdout bool
	Stderr bool
}

// ProcessHandle is a running (or already-waited) child process.
type ProcessHandle struct {
	cmd     *exec.Cmd
	capture Capture
	outBuf  *bytes.Buffer
	errBuf  *bytes.Buffer
	inPipe  io.WriteCloser
}

// Spawn starts firstArg with argv and envp (nil envp inherits the current
// environment untouched, per §6 "Environment"). Captured streams are
// piped; streams not captured are connected straight to the parent's own
// stdio so interactive/verbose passthrough still works.
func Spawn(firstArg string, argv []string, envp []string, capture Capture) (*ProcessHandle, error) {
	cmd := exec.Command(firstArg, argv...)
	if envp != nil {
		cmd.Env = envp
	}

	h := &ProcessHandle{cmd: cmd, capture: capture}
	if capture.Stdout {
		h.outBuf = &bytes.Buffer{}
		cmd.Stdout = h.outBuf
	} else {
		cmd.Stdout = os.Stdout
	}
	if capture.Stderr {
		h.errBuf = &bytes.Buffer{}
		cmd.Stderr = h.errBuf
	} else {
		cmd.Stderr = os.Stderr
	}
	if capture.Stdin {
		w, err := cmd.StdinPipe()
		if err != nil {
			return nil, fmt.Errorf("osx: spawn %q: stdin pipe: %w", firstArg, err)
		}
		h.inPipe = w
	} else {
		cmd.Stdin = os.Stdin
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("osx: spawn %q: %w", firstArg, err)
	}
	glog.V(1).Infof("osx: spawned pid=%d argv=%v", cmd.Process.Pid, cmd.Args)
	return h, nil
}

// Streams is what WaitSync hands back: the fully-drained contents of
// whichever streams were captured at Spawn time. Index 0 is stdin (always
// empty — nothing is ever captured from a write-only pipe), 1 is stdout,
// 2 is stderr, matching the C original's streams[3] layout.
type Streams [3][]byte

// WaitResult bundles the mapped exit status with drained output.
type WaitResult struct {
	Result  ProcessResult
	Streams Streams
}

// WaitSync drains any captured pipes — already happening via cmd.Stdout/
// cmd.Stderr being in-memory buffers populated as the child runs — then
// waits for the process and maps its exit status. On POSIX a signaled
// child maps to Crash; any other wait failure maps to Unknown.
func WaitSync(h *ProcessHandle) (WaitResult, error) {
	if h.inPipe != nil {
		_ = h.inPipe.Close()
	}
	err := h.cmd.Wait()

	var res WaitResult
	if h.outBuf != nil {
		res.Streams[1] = h.outBuf.Bytes()
	}
	if h.errBuf != nil {
		res.Streams[2] = h.errBuf.Bytes()
	}

	if err == nil {
		res.Result = Success
		return res, nil
	}

	var exitErr *exec.ExitError
	if ok := asExitError(err, &exitErr); ok {
		status, ok := exitErr.Sys().(syscall.WaitStatus)
		if ok && status.Signaled() {
			res.Result = Crash
			return res, nil
		}
		res.Result = Failed
		return res, nil
	}

	glog.Errorf("osx: wait_sync: %v", err)
	res.Result = Unknown
	return res, nil
}

func asExitError(err error, target **exec.ExitError) bool {
	if ee, ok := err.(*exec.ExitError); ok {
		*target = ee
		return true
	}
	return false
}

// ExitCodeOf returns the raw exit code carried by a Failed result, or -1
// if h hasn't been waited on or didn't exit normally.
func ExitCodeOf(h *ProcessHandle) int {
	if h.cmd.ProcessState == nil {
		return -1
	}
	return h.cmd.ProcessState.ExitCode()
}
