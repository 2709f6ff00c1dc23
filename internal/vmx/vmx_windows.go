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

package vmx

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func protToWindows(p Protection) uint32 {
	switch p {
	case ProtRead:
		return windows.PAGE_READONLY
	case ProtReadWrite:
		return windows.PAGE_READWRITE
	case ProtReadExec:
		return windows.PAGE_EXECUTE_READ
	default:
		return windows.PAGE_NOACCESS
	}
}

func osReserve(size uintptr, prot Protection) (Region, error) {
	addr, err := windows.VirtualAlloc(0, size, windows.MEM_RESERVE, protToWindows(prot))
	if err != nil {
		return Region{}, fmt.Errorf("vmx: VirtualAlloc reserve %d bytes: %w", size, err)
	}
	return Region{Addr: addr, Size: size}, nil
}

func osCommit(addr, size uintptr, prot Protection) error {
	if _, err := windows.VirtualAlloc(addr, size, windows.MEM_COMMIT, protToWindows(prot)); err != nil {
		return fmt.Errorf("vmx: VirtualAlloc commit %d bytes at %#x: %w", size, addr, err)
	}
	return nil
}

func osTouchPages(addr, size uintptr) error {
	if err := windows.VirtualLock(addr, size); err != nil {
		return err
	}
	return windows.VirtualUnlock(addr, size)
}

func osUnreserve(addr, size uintptr) error {
	if err := windows.VirtualFree(addr, 0, windows.MEM_RELEASE); err != nil {
		return fmt.Errorf("vmx: VirtualFree %#x: %w", addr, err)
	}
	return nil
}
