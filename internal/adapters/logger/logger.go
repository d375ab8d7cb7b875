// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/vulcan/internal/core/ports"
)

// zerrLayer matches the accessors of zerr.Error, which report one layer of the
// chain without its causes.
type zerrLayer interface {
	Message() string
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing human-readable text to stderr.
func New() *Logger {
	return NewWithOutput(os.Stderr)
}

// NewWithOutput creates a new Logger writing human-readable text to w.
func NewWithOutput(w io.Writer) *Logger {
	l := &Logger{}
	l.SetOutput(w)
	return l
}

// SetOutput updates the logger's output destination, keeping the current mode.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.handler())
}

// SetJSON switches between JSON and text logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.handler())
}

// handler must be called with l.mu held.
func (l *Logger) handler() slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		return slog.NewJSONHandler(l.output, opts)
	}
	return slog.NewTextHandler(l.output, opts)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error. In text mode every layer of the error chain is rendered
// with its metadata, so captured subprocess output is shown verbatim.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err.Error(), "details", collectMetadata(err))
		return
	}

	l.logger.Error("operation failed\n" + FormatError(err))
}

// FormatError renders the error chain hierarchically, one layer per line,
// followed by each layer's metadata.
func FormatError(err error) string {
	var b strings.Builder
	depth := 0

	for current := err; current != nil; {
		layer, ok := current.(zerrLayer)
		if !ok {
			writeLine(&b, depth, current.Error())
			break
		}

		if msg := layer.Message(); msg != "" {
			writeLine(&b, depth, msg)
			depth++
		}
		meta := layer.Metadata()
		for _, key := range slices.Sorted(maps.Keys(meta)) {
			writeMetadata(&b, depth, key, meta[key])
		}
		current = errors.Unwrap(current)
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeLine(b *strings.Builder, depth int, msg string) {
	prefix := "Error: "
	if depth > 0 {
		prefix = strings.Repeat("  ", depth) + "→ "
	}
	lines := strings.Split(msg, "\n")
	b.WriteString(prefix + lines[0] + "\n")
	for _, line := range lines[1:] {
		b.WriteString(strings.Repeat(" ", len(prefix)) + line + "\n")
	}
}

func writeMetadata(b *strings.Builder, depth int, key string, value any) {
	indent := strings.Repeat("  ", depth+1)
	text := strings.TrimRight(fmt.Sprint(value), "\n")
	if !strings.Contains(text, "\n") {
		b.WriteString(fmt.Sprintf("%s%s: %s\n", indent, key, text))
		return
	}

	b.WriteString(indent + key + ":\n")
	for _, line := range strings.Split(text, "\n") {
		b.WriteString(indent + "  | " + line + "\n")
	}
}

func collectMetadata(err error) map[string]any {
	details := make(map[string]any)
	for current := err; current != nil; current = errors.Unwrap(current) {
		if layer, ok := current.(zerrLayer); ok {
			for k, v := range layer.Metadata() {
				if _, exists := details[k]; !exists {
					details[k] = v
				}
			}
		}
	}
	return details
}

var _ ports.Logger = (*Logger)(nil)
