// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/kiln/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured key-value metadata.
type metadataer interface {
	Metadata() map[string]any
}

// errorEntry is one level of an error chain.
type errorEntry struct {
	message  string
	metadata map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger instance.
func New() ports.Logger {
	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		logger: slog.New(handler),
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination.
// It preserves the current JSON mode setting.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(newHandler(w, l.jsonMode))
}

// SetJSON switches between JSON and pretty logging.
// The output destination is preserved from SetOutput calls.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable

	w := l.output
	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(newHandler(w, enable))
}

func newHandler(w io.Writer, jsonMode bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
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

// Error logs an error message.
// In pretty mode the error chain is rendered as a headline followed by its causes.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// collectErrorEntries flattens err into one entry per chain level.
// zerr errors contribute their own message and metadata; joined errors are
// expanded in order; any other error contributes its full text and ends the walk.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry

	current := err
	for current != nil {
		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				entries = append(entries, collectErrorEntries(e)...)
			}
			break
		}

		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error()})
			break
		}

		entry := errorEntry{message: m.Message(), metadata: map[string]any{}}
		if md, ok := current.(metadataer); ok {
			for k, v := range md.Metadata() {
				entry.metadata[k] = v
			}
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as:
//
//	Error: <first>
//	       key=value
//
//	  Caused by:
//	    → <next>
//	      key=value
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = append(lines, formatMetadata(entry.metadata, "       ")...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = append(lines, formatMetadata(entry.metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(metadata map[string]any, indent string) []string {
	if len(metadata) == 0 {
		return nil
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s%s=%v", indent, k, metadata[k]))
	}
	return lines
}
