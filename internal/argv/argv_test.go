package argv

import (
	"testing"

	"github.com/buster-os/builder/internal/arena"
	"github.com/buster-os/builder/internal/ustr"
)

func TestParseWindowsCommandLine(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{`clang -o out.o foo.c`, []string{"clang", "-o", "out.o", "foo.c"}},
		{`clang "-o" "out file.o"  foo.c`, []string{"clang", "-o", "out file.o", "foo.c"}},
		{`  leading  spaces `, []string{"leading", "spaces"}},
		{`"quoted only"`, []string{"quoted only"}},
	}
	for _, c := range cases {
		got := ParseWindowsCommandLine(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("ParseWindowsCommandLine(%q) = %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("ParseWindowsCommandLine(%q)[%d] = %q, want %q", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestIteratorMatchesList(t *testing.T) {
	l := FromStrings("build", "--optimize=1", "--fuzz-duration=0xff")
	it := NewIterator(l)
	var got []string
	for {
		arg, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, string(arg))
	}
	if len(got) != len(l) {
		t.Fatalf("iterator produced %d args, want %d", len(got), len(l))
	}
	for i := range got {
		if got[i] != string(l[i]) {
			t.Fatalf("arg %d = %q, want %q", i, got[i], l[i])
		}
	}
}

func TestBuilderRoundTrip(t *testing.T) {
	a, err := arena.Create(arena.Options{ReservedSize: 4 << 20})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Destroy()

	want := []string{"clang", "-O2", "-o", "a.out", "a.c"}
	b := NewBuilder(a)
	for _, w := range want {
		if err := b.AddString(w); err != nil {
			t.Fatal(err)
		}
	}
	built := b.Build()
	it := NewIterator(built)
	for i := 0; ; i++ {
		arg, ok := it.Next()
		if !ok {
			if i != len(want) {
				t.Fatalf("got %d args, want %d", i, len(want))
			}
			break
		}
		if string(arg) != want[i] {
			t.Fatalf("arg %d = %q, want %q", i, arg, want[i])
		}
	}
}

func TestDuplicateAndSubstituteFirst(t *testing.T) {
	a, err := arena.Create(arena.Options{ReservedSize: 4 << 20})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Destroy()

	existing := FromStrings("old-argv0", "--flag")
	replaced, err := DuplicateAndSubstituteFirst(a, existing, ustr.StringOs("new-argv0"), ustr.StringOs("--extra"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"new-argv0", "--flag", "--extra"}
	if len(replaced) != len(want) {
		t.Fatalf("got %v want %v", replaced, want)
	}
	for i := range replaced {
		if string(replaced[i]) != want[i] {
			t.Fatalf("arg %d = %q, want %q", i, replaced[i], want[i])
		}
	}
}

func TestBuildWindowsCommandLineRoundTrips(t *testing.T) {
	args := []string{"a", "b", "c"}
	cmdline := BuildWindowsCommandLine(args)
	got := ParseWindowsCommandLine(cmdline)
	if len(got) != len(args) {
		t.Fatalf("got %v want %v", got, args)
	}
	for i := range got {
		if got[i] != args[i] {
			t.Fatalf("got %v want %v", got, args)
		}
	}
}
