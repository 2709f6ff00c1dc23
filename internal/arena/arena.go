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

// Package arena implements the process-wide memory substrate: an
// allocator that reserves a huge virtual region up front, commits on
// demand in Granularity-sized steps, and hands out bump-pointer
// allocations. Every heap allocation in the rest of the tree that needs to
// outlive a single function call goes through one of these.
package arena

import (
	"fmt"
	"unsafe"

	"github.com/golang/glog"

	"github.com/buster-os/builder/internal/bytesx"
	"github.com/buster-os/builder/internal/vmx"
)

const (
	// DefaultReserveSize is the default virtual reservation per arena.
	DefaultReserveSize = 4 << 30 // 4 GiB
	// DefaultGranularity is the default commit growth step.
	DefaultGranularity = 2 << 20 // 2 MiB
	// headerSize is sizeof({reserved_size, position, os_position,
	// granularity}) — four uint64s, matching the C header layout.
	headerSize = 32
)

// Arena is a contiguous virtual reservation whose first bytes hold its own
// header. position is the next free offset; osPosition is the committed
// high-water mark; granularity controls commit growth.
//
// Invariant: headerSize <= position <= osPosition <= reservedSize.
// osPosition is a multiple of granularity, except that it is capped at
// reservedSize when reservedSize itself is not one.
type Arena struct {
	region      vmx.Region
	reservedSize uint64
	position     uint64
	osPosition   uint64
	granularity  uint64
	lockPages    bool
}

// Options configures Create.
type Options struct {
	ReservedSize uint64 // default DefaultReserveSize
	InitialSize  uint64 // bytes committed up front, default Granularity
	Granularity  uint64 // default DefaultGranularity
	LockPages    bool   // best-effort eager physical commit
}

// Create reserves ReservedSize bytes of address space, commits InitialSize
// of it, and initializes the header so the first allocation begins right
// after it. Create fails only when the underlying OS reservation fails.
func Create(opts Options) (*Arena, error) {
	reserved := opts.ReservedSize
	if reserved == 0 {
		reserved = DefaultReserveSize
	}
	gran := opts.Granularity
	if gran == 0 {
		gran = DefaultGranularity
	}
	initial := opts.InitialSize
	if initial == 0 {
		initial = gran
	}

	region, err := vmx.Reserve(uintptr(reserved), vmx.ProtNone)
	if err != nil {
		return nil, fmt.Errorf("arena: create: %w", err)
	}

	osPosition := bytesx.AlignForward(initial, gran)
	if osPosition > reserved {
		osPosition = reserved
	}
	if err := vmx.Commit(region.Addr, uintptr(osPosition), vmx.ProtReadWrite, opts.LockPages); err != nil {
		_ = vmx.Unreserve(region.Addr, region.Size)
		return nil, fmt.Errorf("arena: create: initial commit: %w", err)
	}

	a := &Arena{
		region:       region,
		reservedSize: reserved,
		position:     headerSize,
		osPosition:   osPosition,
		granularity:  gran,
		lockPages:    opts.LockPages,
	}
	glog.V(2).Infof("arena: created reserved=%d initial=%d granularity=%d", reserved, osPosition, gran)
	return a, nil
}

// CreateMany reserves count arenas contiguously, each of reservedSize (or
// DefaultReserveSize if opts.ReservedSize is zero). Matches the C
// "count > 1" bulk-allocation mode used by the per-thread arena pool.
func CreateMany(count int, opts Options) ([]*Arena, error) {
	arenas := make([]*Arena, 0, count)
	for i := 0; i < count; i++ {
		a, err := Create(opts)
		if err != nil {
			for _, prev := range arenas {
				_ = prev.Destroy()
			}
			return nil, err
		}
		arenas = append(arenas, a)
	}
	return arenas, nil
}

// Destroy unreserves the whole region. The arena must not be used again.
func (a *Arena) Destroy() error {
	return vmx.Unreserve(a.region.Addr, a.region.Size)
}

func (a *Arena) basePtr() uintptr { return a.region.Addr }

// Allocate returns size bytes aligned to align (a power of two), bumping
// position forward and committing more pages if position would exceed the
// committed high-water mark. It fails only when the allocation would
// exceed the reserved size ("out of virtual address space") — callers
// outside tests are expected to treat that as fatal, per the arena's
// failure model.
func (a *Arena) Allocate(size uint64, align uint64) ([]byte, error) {
	aligned := bytesx.AlignForward(a.position, align)
	end := aligned + size
	if end > a.reservedSize {
		return nil, fmt.Errorf("arena: out of virtual address space (need %d, have %d)", end, a.reservedSize)
	}
	if end > a.osPosition {
		newOS := bytesx.AlignForward(end, a.granularity)
		if newOS > a.reservedSize {
			newOS = a.reservedSize
		}
		grow := newOS - a.osPosition
		if err := vmx.Commit(a.basePtr()+uintptr(a.osPosition), uintptr(grow), vmx.ProtReadWrite, a.lockPages); err != nil {
			return nil, fmt.Errorf("arena: commit growth: %w", err)
		}
		a.osPosition += grow
	}
	a.position = end
	return unsafe.Slice((*byte)(unsafe.Pointer(a.basePtr()+uintptr(aligned))), size), nil
}

// MustAllocate is Allocate but treats out-of-VM as fatal, matching the C
// original's "Failure model: out-of-VM is fatal." Use this in all non-test
// call sites; Allocate itself stays fallible so tests can exercise the
// error path (see TestOutOfVirtualAddressSpace).
func (a *Arena) MustAllocate(size, align uint64) []byte {
	b, err := a.Allocate(size, align)
	if err != nil {
		glog.Fatalf("arena: %v", err)
	}
	return b
}

// Position returns the current bump offset, suitable for later restoring
// via SetPosition (scoped/"stack" allocation).
func (a *Arena) Position() uint64 { return a.position }

// SetPosition rewinds (or fast-forwards, though callers only ever rewind)
// the bump pointer. p must be within [headerSize, osPosition].
func (a *Arena) SetPosition(p uint64) error {
	if p < headerSize || p > a.osPosition {
		return fmt.Errorf("arena: set_position(%d) out of range [%d,%d]", p, headerSize, a.osPosition)
	}
	a.position = p
	return nil
}

// Reset rewinds the arena to just past its header, freeing everything.
func (a *Arena) Reset() { a.position = headerSize }

// CurrentPointer returns the address a subsequent Allocate(size, align)
// would return, without advancing position.
func (a *Arena) CurrentPointer(align uint64) uintptr {
	aligned := bytesx.AlignForward(a.position, align)
	return a.basePtr() + uintptr(aligned)
}

// OSPosition exposes the committed high-water mark, for tests checking
// that restoring position never uncommits.
func (a *Arena) OSPosition() uint64 { return a.osPosition }

// ReservedSize exposes the total virtual reservation.
func (a *Arena) ReservedSize() uint64 { return a.reservedSize }

// Granularity exposes the commit growth step.
func (a *Arena) Granularity() uint64 { return a.granularity }
