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

package vmx

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

func protToUnix(p Protection) int {
	switch p {
	case ProtRead:
		return unix.PROT_READ
	case ProtReadWrite:
		return unix.PROT_READ | unix.PROT_WRITE
	case ProtReadExec:
		return unix.PROT_READ | unix.PROT_EXEC
	default:
		return unix.PROT_NONE
	}
}

func osReserve(size uintptr, prot Protection) (Region, error) {
	b, err := unix.Mmap(-1, 0, int(size), protToUnix(prot), unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return Region{}, fmt.Errorf("vmx: mmap reserve %d bytes: %w", size, err)
	}
	return Region{Addr: uintptr(unsafe.Pointer(&b[0])), Size: size}, nil
}

func osCommit(addr, size uintptr, prot Protection) error {
	b := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	if err := unix.Mprotect(b, protToUnix(prot)); err != nil {
		return fmt.Errorf("vmx: mprotect commit %d bytes at %#x: %w", size, addr, err)
	}
	return nil
}

func osTouchPages(addr, size uintptr) error {
	b := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	if err := unix.Mlock(b); err != nil {
		return err
	}
	return unix.Munlock(b)
}

func osUnreserve(addr, size uintptr) error {
	b := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	if err := unix.Munmap(b); err != nil {
		return fmt.Errorf("vmx: munmap %d bytes at %#x: %w", size, addr, err)
	}
	return nil
}
