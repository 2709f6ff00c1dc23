package ustr

import (
	"testing"

	"github.com/buster-os/builder/internal/arena"
	"github.com/buster-os/builder/internal/bytesx"
)

func newArena(t *testing.T) *arena.Arena {
	t.Helper()
	a, err := arena.Create(arena.Options{ReservedSize: 16 << 20})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { a.Destroy() })
	return a
}

func TestEqual(t *testing.T) {
	a := String8("hello")
	b := String8("hello")
	c := String8("world")
	if !a.Equal(b) {
		t.Error("want equal")
	}
	if a.Equal(c) {
		t.Error("want not equal")
	}
}

func TestFirstSequence(t *testing.T) {
	s := String8("the quick brown fox")
	cases := []struct {
		needle String8
		want   uint64
	}{
		{String8("quick"), 4},
		{String8("fox"), 16},
		{String8("nope"), bytesx.SentinelNoMatch},
	}
	for _, c := range cases {
		got := s.FirstSequence(c.needle)
		if got != c.want {
			t.Errorf("FirstSequence(%q) = %d, want %d", c.needle, got, c.want)
		}
	}
}

func TestStartsEndsWith(t *testing.T) {
	s := String8("build/compile_commands.json")
	if !s.StartsWith(String8("build/")) {
		t.Error("expected prefix match")
	}
	if !s.EndsWith(String8(".json")) {
		t.Error("expected suffix match")
	}
}

func TestDuplicateArenaNulTerminate(t *testing.T) {
	a := newArena(t)
	s := String8("/tmp/foo")
	dup, err := s.DuplicateArena(a, true)
	if err != nil {
		t.Fatal(err)
	}
	if !dup.Equal(s) {
		t.Fatalf("dup %q != original %q", dup, s)
	}
}

func TestJoinArena(t *testing.T) {
	a := newArena(t)
	parts := []String8{String8("-Isrc"), String8("-std=gnu2x"), String8("-O2")}
	got, err := JoinArena(a, parts, String8(" "), false)
	if err != nil {
		t.Fatal(err)
	}
	want := "-Isrc -std=gnu2x -O2"
	if string(got) != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestToWideToNarrowASCII(t *testing.T) {
	a := newArena(t)
	s := String8("hello world")
	wide, err := ToWide(a, s)
	if err != nil {
		t.Fatal(err)
	}
	narrow, err := ToNarrow(a, wide)
	if err != nil {
		t.Fatal(err)
	}
	if !narrow.Equal(s) {
		t.Fatalf("round trip mismatch: %q != %q", narrow, s)
	}
}

func TestToWideToNarrowNonASCII(t *testing.T) {
	a := newArena(t)
	s := String8("café \U0001F600") // "café 😀" — BMP + astral (surrogate pair)
	wide, err := ToWide(a, s)
	if err != nil {
		t.Fatal(err)
	}
	narrow, err := ToNarrow(a, wide)
	if err != nil {
		t.Fatal(err)
	}
	if !narrow.Equal(s) {
		t.Fatalf("round trip mismatch: %q != %q", narrow, s)
	}
}

func TestFormatArena(t *testing.T) {
	a := newArena(t)
	out, err := FormatArena(a, String8("value={u32} hex={u64:x} str={S8}"), uint32(42), uint64(255), String8("hi"))
	if err != nil {
		t.Fatal(err)
	}
	// {T:K} only overrides the base, not prefixing, so hex comes back bare.
	want := "value=42 hex=ff str=hi"
	if string(out) != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestFormatArenaUnknownPlaceholderVerbatim(t *testing.T) {
	a := newArena(t)
	out, err := FormatArena(a, String8("{nonsense}"))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "{nonsense}" {
		t.Fatalf("got %q", out)
	}
}
