package osx

import "testing"

func TestSpawnWaitCaptureStdout(t *testing.T) {
	h, err := Spawn("/bin/echo", []string{"hello"}, nil, Capture{Stdout: true})
	if err != nil {
		t.Fatal(err)
	}
	res, err := WaitSync(h)
	if err != nil {
		t.Fatal(err)
	}
	if res.Result != Success {
		t.Fatalf("result = %v, want Success", res.Result)
	}
	if string(res.Streams[1]) != "hello\n" {
		t.Fatalf("stdout = %q, want %q", res.Streams[1], "hello\n")
	}
	if len(res.Streams[0]) != 0 || len(res.Streams[2]) != 0 {
		t.Fatalf("expected empty stdin/stderr streams, got %q / %q", res.Streams[0], res.Streams[2])
	}
}

func TestSpawnNonZeroExit(t *testing.T) {
	h, err := Spawn("/bin/sh", []string{"-c", "exit 7"}, nil, Capture{})
	if err != nil {
		t.Fatal(err)
	}
	res, err := WaitSync(h)
	if err != nil {
		t.Fatal(err)
	}
	if res.Result != Failed {
		t.Fatalf("result = %v, want Failed", res.Result)
	}
	if ExitCodeOf(h) != 7 {
		t.Fatalf("exit code = %d, want 7", ExitCodeOf(h))
	}
}
