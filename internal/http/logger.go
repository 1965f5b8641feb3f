package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ContextFieldsFunc extracts request scoped log fields from a context.
type ContextFieldsFunc func(context.Context) []zap.Field

// FormatterOption configures a ZapLogFormatter.
type FormatterOption func(*ZapLogFormatter)

// WithContextFields adds the fields fn extracts from each request's context to
// that request's log entry.
func WithContextFields(fn ContextFieldsFunc) FormatterOption {
	return func(f *ZapLogFormatter) { f.contextFields = fn }
}

// NewZapLogFormatter creates a chi middleware.LogFormatter writing to logger.
func NewZapLogFormatter(logger *zap.Logger, opts ...FormatterOption) *ZapLogFormatter {
	f := &ZapLogFormatter{
		logger: logger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type ZapLogFormatter struct {
	logger        *zap.Logger
	contextFields ContextFieldsFunc
}

func (f ZapLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if f.contextFields != nil {
		fields = append(fields, f.contextFields(r.Context())...)
	}
	return logEntry{logger: f.logger.With(fields...)}
}

type logEntry struct{ logger *zap.Logger }

func (e logEntry) Write(
	status, bytes int,
	_ http.Header,
	elapsed time.Duration,
	_ interface{},
) {

	var level func(string, ...zap.Field)
	switch {
	case status < http.StatusBadRequest:
		level = e.logger.Debug
	case status < http.StatusInternalServerError:
		level = e.logger.Warn
	default:
		level = e.logger.Error
	}

	level(
		"[HTTP Request]",
		zap.Int("status", status),
		zap.Int("bytes", bytes),
		zap.Duration("elapsed", elapsed),
	)
}

func (e logEntry) Panic(v interface{}, stack []byte) {
	e.logger.Error(
		"[HTTP Panic]",
		zap.Any("panic", v),
		zap.ByteString("stack", stack),
	)
}
