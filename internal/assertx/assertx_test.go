package assertx

import (
	"testing"

	"github.com/buster-os/builder/internal/arena"
)

func TestTestAccumulatesResult(t *testing.T) {
	result := true
	Test(&result, true, "1 == 1")
	if !result {
		t.Fatal("result went false after a passing Test call")
	}
	Test(&result, false, "1 == 2")
	if result {
		t.Fatal("result stayed true after a failing Test call")
	}
}

func TestTestEqualDetectsMismatch(t *testing.T) {
	result := true
	TestEqual(&result, "got", "got", "label")
	if !result {
		t.Fatal("result went false on an equal comparison")
	}
	TestEqual(&result, "got", "want", "label")
	if result {
		t.Fatal("result stayed true on a mismatched comparison")
	}
}

func TestRunRestoresArenaPosition(t *testing.T) {
	a, err := arena.Create(arena.Options{ReservedSize: 1 << 16, InitialSize: 1 << 12})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Destroy()

	before := a.Position()
	ok := Run(TestArguments{Arena: a, Show: false}, func(args TestArguments) bool {
		_, err := args.Arena.Allocate(64, 8)
		if err != nil {
			t.Fatal(err)
		}
		return true
	})
	if !ok {
		t.Fatal("Run returned false for a passing fn")
	}
	if a.Position() != before {
		t.Fatalf("arena position not restored: got %d, want %d", a.Position(), before)
	}
}
