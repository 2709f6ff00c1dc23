package printx

import "testing"

func TestPrintDoesNotError(t *testing.T) {
	if err := Print([]byte("hello {u32}\n"), uint32(7)); err != nil {
		t.Fatal(err)
	}
}
