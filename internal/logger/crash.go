package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// CrashContext stores context for crash reports.
type CrashContext struct {
	mu        sync.RWMutex
	version   string
	command   string
	lastTopic string
	log       *Logger
}

// globalContext is the singleton crash context.
var globalContext = &CrashContext{}

// exit and stderr are swapped in tests.
var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// SetVersion sets the application version for crash reports.
func SetVersion(version string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.version = version
}

// SetCommand sets the current command being executed.
func SetCommand(cmd string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.command = cmd
}

// SetLastTopic records the most recent roadmap topic submitted.
func SetLastTopic(topic string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.lastTopic = Truncate(strings.TrimSpace(topic), 500)
}

// SetCrashLogger sets the logger HandlePanic falls back to when called with nil.
func SetCrashLogger(l *Logger) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.log = l
}

// HandlePanic recovers from a panic, writes it through l and exits non-zero.
// Usage: defer logger.HandlePanic(log)
func HandlePanic(l *Logger) {
	r := recover()
	if r == nil {
		return
	}

	globalContext.mu.RLock()
	fields := []any{
		"panic", fmt.Sprintf("%v", r),
		"version", globalContext.version,
		"command", globalContext.command,
		"last_topic", globalContext.lastTopic,
		"go_version", runtime.Version(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"stack", string(debug.Stack()),
	}
	if l == nil {
		l = globalContext.log
	}
	globalContext.mu.RUnlock()

	if l != nil {
		l.Error("unexpected panic", fields...)
		l.Sync()
	}

	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "╭──────────────────────────────────────────────────────╮\n")
	fmt.Fprintf(stderr, "│ roadmapper encountered an unexpected error           │\n")
	fmt.Fprintf(stderr, "╰──────────────────────────────────────────────────────╯\n")
	fmt.Fprintf(stderr, "\nPanic: %v\n", r)
	fmt.Fprintf(stderr, "Details were written to the log.\n\n")

	exit(1)
}
