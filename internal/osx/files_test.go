package osx

import (
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/buster-os/builder/internal/arena"
)

func TestReadWholeFileEndAlignment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payload.bin")
	content := []byte("hello, buffer")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := arena.Create(arena.Options{ReservedSize: 1 << 20, InitialSize: 1 << 16})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Destroy()

	buf, err := ReadWholeFile(a, path, ReadWholeFileOpts{
		StartPadding: 4,
		EndPadding:   4,
		EndAlignment: 16,
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := buf[4 : 4+len(content)]; string(got) != string(content) {
		t.Fatalf("contents = %q, want %q", got, content)
	}

	endAddr := uintptr(unsafe.Pointer(&buf[0])) + uintptr(len(buf))
	if endAddr%16 != 0 {
		t.Fatalf("end address %#x not aligned to 16", endAddr)
	}

	// The returned buffer must stay inside the arena's reserved region, not
	// have been silently reallocated onto the Go heap by append: a second
	// allocation from the same arena must land within ReservedSize of it.
	probe, err := a.Allocate(8, 1)
	if err != nil {
		t.Fatal(err)
	}
	bufAddr := int64(uintptr(unsafe.Pointer(&buf[0])))
	probeAddr := int64(uintptr(unsafe.Pointer(&probe[0])))
	diff := bufAddr - probeAddr
	if diff < 0 {
		diff = -diff
	}
	if uint64(diff) > a.ReservedSize() {
		t.Fatalf("buffer address %#x is not within the arena's reserved region (probe at %#x)", bufAddr, probeAddr)
	}
}
