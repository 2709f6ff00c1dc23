package bytesx

import "testing"

func TestParseFormatRoundTrip(t *testing.T) {
	vals := []uint64{0, 1, 42, 255, 65535, 1 << 32, ^uint64(0)}
	bases := []Base{Binary, Octal, Decimal, Hex}
	buf := make([]byte, FormatBufferSize())
	for _, v := range vals {
		for _, b := range bases {
			out := FormatU64(buf, v, FormatOpts{Base: b})
			var got ParseResult
			switch b {
			case Binary:
				got = ParseU64Bin(out)
			case Octal:
				got = ParseU64Oct(out)
			case Decimal:
				got = ParseU64Dec(out)
			case Hex:
				got = ParseU64Hex(out)
			}
			if got.Value != v || got.Consumed != len(out) {
				t.Errorf("base %v: round trip of %d via %q = {%d,%d}", b, v, out, got.Value, got.Consumed)
			}
		}
	}
}

func TestFormatSignedDecimal(t *testing.T) {
	buf := make([]byte, FormatBufferSize())
	out := FormatU64(buf, uint64(int64(-42)), FormatOpts{Base: Decimal, Signed: true})
	if string(out) != "-42" {
		t.Errorf("got %q, want -42", out)
	}
}

func TestFormatPrefix(t *testing.T) {
	buf := make([]byte, FormatBufferSize())
	cases := []struct {
		base Base
		want string
	}{
		{Hex, "0xff"},
		{Octal, "0o377"},
		{Binary, "0b11111111"},
		{Decimal, "0d255"},
	}
	for _, c := range cases {
		out := FormatU64(buf, 255, FormatOpts{Base: c.base, Prefix: true})
		if string(out) != c.want {
			t.Errorf("base %v: got %q want %q", c.base, out, c.want)
		}
	}
}

func TestAlignForward(t *testing.T) {
	cases := []struct{ n, a, want uint64 }{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{4095, 4096, 4096},
	}
	for _, c := range cases {
		got := AlignForward(c.n, c.a)
		if got != c.want {
			t.Errorf("AlignForward(%d,%d)=%d want %d", c.n, c.a, got, c.want)
		}
		if AlignForward(got, c.a) != got {
			t.Errorf("AlignForward not idempotent for %d", got)
		}
		if got < c.n || got%c.a != 0 {
			t.Errorf("AlignForward invariant broken for %d,%d", c.n, c.a)
		}
	}
}

func TestEqual(t *testing.T) {
	a := []byte("hello")
	b := []byte("hello")
	c := []byte("world")
	if !Equal(a, b) {
		t.Error("expected equal")
	}
	if Equal(a, c) {
		t.Error("expected not equal")
	}
	if !Equal(a, a) {
		t.Error("identical slice should be equal")
	}
}
