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
	"github.com/golang/glog"

	"github.com/buster-os/builder/internal/arena"
)

// ThreadHandle is the join handle for a spawned worker thread.
type ThreadHandle struct {
	done chan uint32
}

// ThreadMain is what entryPoint returns: an exit code, the same shape the
// C thread stub casts a ProcessResult down to.
type ThreadMain func() uint32

// ThreadCreate starts a goroutine-backed "thread" that first creates its
// own private arena (per §5 "each arena has a single owning thread"),
// then calls entryPoint, and finally makes the exit code available to
// ThreadJoin. perThreadArena receives the private arena so entryPoint can
// thread it through without a package-level global.
func ThreadCreate(entryPoint func(perThreadArena *arena.Arena) uint32) (*ThreadHandle, error) {
	threadArena, err := arena.Create(arena.Options{})
	if err != nil {
		return nil, err
	}
	h := &ThreadHandle{done: make(chan uint32, 1)}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				glog.Errorf("osx: worker thread panicked: %v", r)
				h.done <- 1
			}
		}()
		code := entryPoint(threadArena)
		h.done <- code
	}()
	return h, nil
}

// ThreadJoin blocks until the thread's entry point returns and yields its
// exit code.
func ThreadJoin(h *ThreadHandle) uint32 {
	return <-h.done
}
