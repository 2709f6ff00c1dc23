package arena

import (
	"testing"
	"unsafe"
)

func TestMonotonicity(t *testing.T) {
	a, err := Create(Options{ReservedSize: 16 << 20, Granularity: 64 << 10})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Destroy()

	var lastPos uint64
	for i := 0; i < 200; i++ {
		pos := a.Position()
		if pos < lastPos {
			t.Fatalf("position went backwards: %d -> %d", lastPos, pos)
		}
		lastPos = pos
		if _, err := a.Allocate(37, 8); err != nil {
			t.Fatal(err)
		}
		if a.OSPosition()%a.Granularity() != 0 {
			t.Fatalf("os_position %d not a multiple of granularity %d", a.OSPosition(), a.Granularity())
		}
		if a.OSPosition() < a.Position() {
			t.Fatalf("os_position %d < position %d", a.OSPosition(), a.Position())
		}
	}
}

func TestScopedReset(t *testing.T) {
	a, err := Create(Options{ReservedSize: 256 << 20, Granularity: 2 << 20})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Destroy()

	for i := 0; i < 50; i++ {
		if _, err := a.Allocate(4096, 8); err != nil {
			t.Fatal(err)
		}
	}
	snapshot := a.Position()
	snapshotOS := a.OSPosition()

	for i := 0; i < 50; i++ {
		if _, err := a.Allocate(1<<20, 8); err != nil {
			t.Fatal(err)
		}
	}

	if err := a.SetPosition(snapshot); err != nil {
		t.Fatal(err)
	}
	if a.OSPosition() < snapshotOS {
		t.Fatalf("os_position shrank after restore: %d < %d", a.OSPosition(), snapshotOS)
	}

	want := a.CurrentPointer(1)
	got, err := a.Allocate(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if uintptr(unsafe.Pointer(&got[0])) != want {
		t.Fatalf("post-restore allocation pointer mismatch: got %#x want %#x", unsafe.Pointer(&got[0]), want)
	}
}

func TestOutOfVirtualAddressSpace(t *testing.T) {
	a, err := Create(Options{ReservedSize: 64 << 10, Granularity: 64 << 10})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Destroy()

	if _, err := a.Allocate(1<<20, 8); err == nil {
		t.Fatal("expected out-of-VM error")
	}
}

func TestResetGoesToHeader(t *testing.T) {
	a, err := Create(Options{ReservedSize: 16 << 20})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Destroy()
	if _, err := a.Allocate(1024, 8); err != nil {
		t.Fatal(err)
	}
	a.Reset()
	if a.Position() != headerSize {
		t.Fatalf("reset did not return to header: %d", a.Position())
	}
}
