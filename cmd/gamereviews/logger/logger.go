package logger

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// key is a key used to store and retrieve logging values from the context.
// SA1029: should not use built-in type string as key for value; define your
// own type to avoid collisions.
type key string

var requestIDCtxKey key = "request_id_context_key"

// WithRequestID creates a new context holding requestID.
func WithRequestID(ctx context.Context, requestID uuid.UUID) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, requestID)
}

// RequestID retrieves the request ID from the context if it exists.
func RequestID(ctx context.Context) (uuid.UUID, bool) {
	val, ok := ctx.Value(requestIDCtxKey).(uuid.UUID)
	return val, ok
}

// ContextFields checks the context for a set of fields and returns them for
// use in a zap.Logger if they are available.
func ContextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 1)
	if requestID, ok := RequestID(ctx); ok {
		fields = append(fields, zap.String("request_id", requestID.String()))
	}
	return fields
}

// Middleware extends the incoming request's context with a request ID, and
// echoes it to the client in the X-Request-Id header.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.New()
			w.Header().Set(RequestIDHeader, requestID.String())
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), requestID)))
		})
	}
}

// RequestIDHeader is the response header carrying the request ID.
const RequestIDHeader = "X-Request-Id"
