package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/onetechcm/website/pkg/logger"
)

// requestIDKey is the context key for storing the request ID.
type requestIDKey struct{}

// requestIDHeaders are the headers checked (in order) for an existing
// request ID, so upstream tracing IDs are preserved.
var requestIDHeaders = []string{"X-Request-ID", "X-Request-Id", "X-Correlation-ID"}

// RequestID assigns a unique request ID to each request. The ID is taken
// from request headers if present, generated otherwise, stored in the
// context, and echoed back in the X-Request-ID response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqID string
		for _, header := range requestIDHeaders {
			if v := r.Header.Get(header); v != "" {
				reqID = v
				break
			}
		}
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extracts the request ID from the context.
// Returns an empty string if no request ID is set.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// RequestIDExtractor returns a logger.ContextExtractor that adds
// "request_id" to all log entries carrying a request context.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := GetRequestID(ctx); v != "" {
			return slog.String("request_id", v), true
		}
		return slog.Attr{}, false
	}
}

// recoverStackSize is the maximum captured stack trace size in bytes.
const recoverStackSize = 4096

// Recover returns middleware that recovers from handler panics, logs the
// panic with its stack trace, and responds with 500.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					stack := make([]byte, recoverStackSize)
					n := runtime.Stack(stack, false)

					log.ErrorContext(r.Context(), "panic recovered",
						slog.Any("panic", rec),
						slog.String("stack", string(stack[:n])),
					)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs one line per request with method, path, status, and
// duration.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "request served",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
