package executil

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRun_CapturesStdoutAndPassesStderr(t *testing.T) {
	requireSh(t)
	var errb bytes.Buffer
	res, err := Run(context.Background(), Command{
		Name:   "sh",
		Args:   []string{"-c", "echo out; echo warn >&2; exit 3"},
		Stderr: &errb,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if string(res.Stdout) != "out\n" {
		t.Fatalf("stdout = %q", res.Stdout)
	}
	if errb.String() != "warn\n" {
		t.Fatalf("stderr = %q", errb.String())
	}
	if res.Code != 3 || res.Success() {
		t.Fatalf("code = %d", res.Code)
	}
}

func TestRun_SignalKilledHasNoCode(t *testing.T) {
	requireSh(t)
	res, err := Run(context.Background(), Command{
		Name:   "sh",
		Args:   []string{"-c", "echo partial; kill -9 $$"},
		Stderr: &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Code != -1 || res.Success() {
		t.Fatalf("code = %d, want -1", res.Code)
	}
	if string(res.Stdout) != "partial\n" {
		t.Fatalf("stdout = %q", res.Stdout)
	}
}

func TestRun_MissingBinary(t *testing.T) {
	_, err := Run(context.Background(), Command{Name: "/nonexistent/pkgq-engine"})
	if err == nil {
		t.Fatalf("expected error for missing binary")
	}
}

func TestCommandString(t *testing.T) {
	c := Command{Name: "pkgdb", Args: []string{"search", "--quiet"}}
	if c.String() != "pkgdb search --quiet" {
		t.Fatalf("String() = %q", c.String())
	}
}
