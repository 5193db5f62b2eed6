package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	mu      sync.Mutex
	logfile *os.File
	verbose bool
	stderr  io.Writer = os.Stderr
	mirror            = log.New(io.Discard, "", log.LstdFlags)
)

// Init mirrors every message to <dir>/logs/pkgq.log. Failures to open the file
// leave file logging disabled.
func Init(dir string) {
	p := filepath.Join(dir, "logs")
	_ = os.MkdirAll(p, 0o755)
	f, err := os.OpenFile(filepath.Join(p, "pkgq.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	logfile = f
	mirror.SetOutput(f)
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
	}
	mirror.SetOutput(io.Discard)
}

// SetOutput redirects console output; used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	stderr = w
}

func emit(w io.Writer, colors text.Colors, msg, prefix string) {
	mu.Lock()
	defer mu.Unlock()
	if colors != nil {
		msg = colors.Sprint(msg)
	}
	_, _ = fmt.Fprintln(w, msg)
	mirror.Println(prefix + msg)
}

// Error writes a single line to stderr.
func Error(msg string) { emit(stderr, text.Colors{text.FgRed}, msg, "[ERROR] ") }

// SetVerbose toggles debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// Debug prints to stderr only when verbose mode is enabled, so it never mixes
// with search output on stdout.
func Debug(msg string) {
	if !IsVerbose() {
		return
	}
	emit(stderr, text.Colors{text.FgHiBlack}, msg, "[DEBUG] ")
}

// Debugf is Debug with formatting.
func Debugf(format string, args ...any) {
	if !IsVerbose() {
		return
	}
	Debug(fmt.Sprintf(format, args...))
}
