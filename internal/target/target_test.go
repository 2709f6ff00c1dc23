package target

import "testing"

func TestTripleFormat(t *testing.T) {
	tg := Target{Arch: ArchX86_64, Model: ModelSkylake, OS: OSLinux}
	if got, want := tg.Triple(), "x86_64-linux-skylake"; got != want {
		t.Errorf("Triple() = %q, want %q", got, want)
	}
}

func TestMarchStringPerArch(t *testing.T) {
	x86 := Target{Arch: ArchX86_64, Model: ModelZen3}
	if got, want := x86.MarchString(), "-march=znver3"; got != want {
		t.Errorf("x86 MarchString() = %q, want %q", got, want)
	}

	arm := Target{Arch: ArchAArch64, Model: ModelAppleM2}
	if got, want := arm.MarchString(), "-mcpu=apple-m2"; got != want {
		t.Errorf("arm MarchString() = %q, want %q", got, want)
	}
}

func TestModelStringTotalMapping(t *testing.T) {
	// An out-of-range Model value must still resolve, never panic or
	// return the empty string.
	if got := Model(9999).String(); got == "" {
		t.Errorf("Model(9999).String() returned empty string")
	}
}

func TestDetectHostReturnsKnownEnumMembers(t *testing.T) {
	tg := DetectHost()
	switch tg.Arch {
	case ArchX86_64, ArchAArch64:
	default:
		t.Errorf("DetectHost().Arch = %v, not a known Arch", tg.Arch)
	}
	switch tg.OS {
	case OSLinux, OSMacOS, OSWindows, OSUEFI, OSAndroid, OSIOS, OSFreestanding:
	default:
		t.Errorf("DetectHost().OS = %v, not a known OS", tg.OS)
	}
	if tg.Triple() == "" {
		t.Errorf("DetectHost().Triple() returned empty string")
	}
}
