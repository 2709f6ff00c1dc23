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

// Package vmx is the virtual-memory slice of the OS abstraction layer
// (component D): reserve/commit/unreserve over POSIX mmap/mprotect/munmap
// or Win32 VirtualAlloc/VirtualFree. It is kept separate from package osx
// itself because the arena allocator (component B) is the only consumer
// and sits below osx's file/process/thread surface, which in turn takes
// arena-typed parameters; folding VM into osx would make osx and arena
// import each other.
package vmx

import "github.com/golang/glog"

// Protection is the subset of page protection flags the arena and file
// mapping code needs.
type Protection int

const (
	ProtNone Protection = iota
	ProtRead
	ProtReadWrite
	ProtReadExec
)

// Region is a reserved (and possibly partially committed) virtual address
// range returned by Reserve.
type Region struct {
	Addr uintptr
	Size uintptr
}

// Reserve reserves size bytes of virtual address space with the given
// protection. It does not commit physical storage. Returns a zero-value
// region and an error on OS reservation failure.
func Reserve(size uintptr, prot Protection) (Region, error) {
	r, err := osReserve(size, prot)
	if err != nil {
		glog.Errorf("vmx: reserve %d bytes: %v", size, err)
	}
	return r, err
}

// Commit makes the sub-range [addr, addr+size) of a previously reserved
// region accessible with prot. If lock is true, Commit makes a best-effort
// attempt to fault the pages in immediately (lock then unlock); failure to
// do so is not reported, since it is purely an eagerness hint. Idempotent.
func Commit(addr, size uintptr, prot Protection, lock bool) error {
	if err := osCommit(addr, size, prot); err != nil {
		return err
	}
	if lock {
		_ = osTouchPages(addr, size)
	}
	return nil
}

// Unreserve releases an entire region previously returned by Reserve. The
// addr/size pair must match the original reservation exactly.
func Unreserve(addr, size uintptr) error {
	return osUnreserve(addr, size)
}
