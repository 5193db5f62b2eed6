package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var errOut bytes.Buffer
	SetOutput(&errOut)
	text.DisableColors()
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
		text.EnableColors()
	})
	return &errOut
}

func TestErrorGoesToStderr(t *testing.T) {
	errOut := capture(t)
	Error("boom")
	if errOut.String() != "boom\n" {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestDebugOnlyWhenVerbose(t *testing.T) {
	errOut := capture(t)
	Debug("hidden")
	if errOut.Len() != 0 {
		t.Fatalf("expected no output, got %q", errOut.String())
	}
	SetVerbose(true)
	Debugf("shown %d", 1)
	if errOut.String() != "shown 1\n" {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestInitMirrorsToFile(t *testing.T) {
	errOut := capture(t)
	dir := t.TempDir()
	Init(dir)
	defer Close()
	Error("hello")
	if errOut.String() != "hello\n" {
		t.Fatalf("stderr = %q", errOut.String())
	}
	Close()
	b, err := os.ReadFile(filepath.Join(dir, "logs", "pkgq.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "hello") {
		t.Fatalf("log file missing message: %q", string(b))
	}
}
