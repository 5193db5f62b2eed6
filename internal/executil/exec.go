package executil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Result holds the captured stdout of a finished process and its exit code.
// Code is -1 when the process was terminated without one (e.g. by a signal).
type Result struct {
	Stdout []byte
	Code   int
}

func (r Result) Success() bool { return r.Code == 0 }

// Command is a program invocation. Stderr defaults to the caller's stderr so
// warnings from the tool reach the user untouched.
type Command struct {
	Name   string
	Args   []string
	Stderr io.Writer
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Run executes c and waits for it. A non-zero exit is reported through
// Result.Code, not as an error; errors mean the process could not be run.
func Run(ctx context.Context, c Command) (Result, error) {
	if c.Name == "" {
		return Result{}, errors.New("empty command")
	}
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = c.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	err := cmd.Run()
	if err == nil {
		return Result{Stdout: out.Bytes(), Code: 0}, nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return Result{Stdout: out.Bytes(), Code: ee.ExitCode()}, nil
	}
	return Result{}, fmt.Errorf("run %s: %w", c.Name, err)
}
