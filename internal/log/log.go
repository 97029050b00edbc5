// ABOUTME: Leveled logging wrapper using slog levels for popup debug output
// ABOUTME: Writes to stderr by default; the CLI redirects to a file so lines never land in a popup frame

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level atomic.Int64

	mu  sync.Mutex
	out io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects all log lines to w. A nil w restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	out = w
}

// OpenFile appends log lines to path, creating it if needed. The returned
// close function restores stderr and closes the file.
func OpenFile(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	SetOutput(f)
	return func() error {
		SetOutput(nil)
		return f.Close()
	}, nil
}

func emit(l slog.Level, format string, args ...any) {
	if l < GetLevel() {
		return
	}
	mu.Lock()
	defer mu.Unlock()

	fmt.Fprintf(out, "["+l.String()+"] "+format+"\n", args...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	emit(LevelDebug, format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	emit(LevelInfo, format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	emit(LevelWarn, format, args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	fmt.Fprintf(out, "[ERROR] "+format+"\n", args...)
}
