// Package logger builds the structured logger used by the survey binaries.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Entry is a captured WARN or ERROR record.
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string
}

// Format renders the entry for the on-screen log panel.
func (e Entry) Format() string {
	return fmt.Sprintf("%s %-5s %s", e.Time.Format("15:04:05"), e.Level.String(), e.Message)
}

// ringBuffer is a fixed-size circular buffer for log entries.
type ringBuffer struct {
	mu      sync.RWMutex
	entries []Entry
	head    int
	count   int

	warnCount  int
	errorCount int
}

func newRingBuffer(size int) *ringBuffer {
	if size < 1 {
		size = 1
	}
	return &ringBuffer{entries: make([]Entry, size)}
}

func (rb *ringBuffer) add(e Entry) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	size := len(rb.entries)
	rb.entries[rb.head] = e
	rb.head = (rb.head + 1) % size
	if rb.count < size {
		rb.count++
	}

	if e.Level >= slog.LevelError {
		rb.errorCount++
	} else if e.Level >= slog.LevelWarn {
		rb.warnCount++
	}
}

func (rb *ringBuffer) all() []Entry {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	size := len(rb.entries)
	out := make([]Entry, rb.count)
	for i := 0; i < rb.count; i++ {
		out[i] = rb.entries[(rb.head-rb.count+i+size)%size]
	}
	return out
}

func (rb *ringBuffer) counts() (warn, err int) {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.warnCount, rb.errorCount
}

// captureHandler wraps another handler and copies WARN+ records into a ring buffer.
type captureHandler struct {
	inner  slog.Handler
	buffer *ringBuffer
}

func (h *captureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *captureHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.buffer.add(Entry{Time: r.Time, Level: r.Level, Message: r.Message})
	}
	return h.inner.Handle(ctx, r)
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &captureHandler{inner: h.inner.WithAttrs(attrs), buffer: h.buffer}
}

func (h *captureHandler) WithGroup(name string) slog.Handler {
	return &captureHandler{inner: h.inner.WithGroup(name), buffer: h.buffer}
}

// Options configures New.
type Options struct {
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string
	// Path, when set, sends JSON records to a rotating file instead of Writer.
	Path string
	// Writer receives text records when Path is empty. Defaults to os.Stderr.
	Writer io.Writer
	// Capacity of the WARN/ERROR capture buffer. Defaults to 100.
	Capacity int
}

// Logger owns the slog logger, its optional log file and the capture buffer.
type Logger struct {
	*slog.Logger
	file   *lumberjack.Logger
	buffer *ringBuffer
}

// ParseLevel maps a config string to a slog level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a Logger. It does not replace slog's default logger.
func New(opts Options) *Logger {
	hopts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	capacity := opts.Capacity
	if capacity == 0 {
		capacity = 100
	}
	l := &Logger{buffer: newRingBuffer(capacity)}

	var inner slog.Handler
	if opts.Path != "" {
		l.file = &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		}
		inner = slog.NewJSONHandler(l.file, hopts)
	} else {
		w := opts.Writer
		if w == nil {
			w = os.Stderr
		}
		inner = slog.NewTextHandler(w, hopts)
	}

	l.Logger = slog.New(&captureHandler{inner: inner, buffer: l.buffer})
	return l
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Entries returns captured WARN/ERROR records, oldest first.
func (l *Logger) Entries() []Entry {
	return l.buffer.all()
}

// Counts returns how many warnings and errors were logged.
func (l *Logger) Counts() (warn, err int) {
	return l.buffer.counts()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
