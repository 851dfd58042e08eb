package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const (
	initialBufferCapacity = 256

	// TimeFormat is the timestamp layout of every entry.
	TimeFormat = "15:04:05.000"
)

// CustomHandler writes logfmt entries to an io.Writer:
//
//	time=15:04:05.000 level=DEBUG msg="tsconfig loaded" path=tsconfig.json
type CustomHandler struct {
	writer io.Writer
	mu     *sync.Mutex
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
	now    func() time.Time
}

// NewWriterHandler creates a handler writing entries at or above level to w.
func NewWriterHandler(w io.Writer, level Level) *CustomHandler {
	return &CustomHandler{
		writer: w,
		mu:     &sync.Mutex{},
		level:  level.ToSlogLevel(),
		now:    time.Now,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle handles the log record.
func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = h.now()
	}

	buf := make([]byte, 0, initialBufferCapacity)

	buf = append(buf, "time="...)
	buf = append(buf, ts.Format(TimeFormat)...)
	buf = append(buf, " level="...)
	buf = append(buf, r.Level.String()...)
	buf = append(buf, " msg="...)
	buf = appendValue(buf, r.Message)

	for _, a := range h.attrs {
		buf = h.appendAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, a)

		return true
	})

	buf = append(buf, '\n')

	// Handlers derived via WithAttrs share the mutex, so lines never interleave.
	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.writer.Write(buf)

	return err
}

// appendAttr appends an attribute to the buffer.
func (h *CustomHandler) appendAttr(buf []byte, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return buf
	}

	buf = append(buf, ' ')

	if len(h.groups) > 0 {
		buf = append(buf, strings.Join(h.groups, ".")...)
		buf = append(buf, '.')
	}

	buf = append(buf, a.Key...)
	buf = append(buf, '=')

	return appendValue(buf, a.Value.String())
}

func appendValue(buf []byte, val string) []byte {
	if val == "" || needsQuoting(val) {
		return append(buf, quoteValue(val)...)
	}

	return append(buf, val...)
}

// needsQuoting returns true if the string value needs to be quoted.
func needsQuoting(s string) bool {
	return strings.ContainsAny(s, " \t\n\r\"=")
}

// quoteValue escapes and quotes a string value.
func quoteValue(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		"\"", "\\\"",
		"\n", "\\n",
		"\r", "\\r",
		"\t", "\\t",
	)

	return "\"" + r.Replace(s) + "\""
}

// WithAttrs returns a new handler with the given attributes added.
func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)

	return &clone
}

// WithGroup returns a new handler with the given group name added.
func (h *CustomHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)

	return &clone
}
