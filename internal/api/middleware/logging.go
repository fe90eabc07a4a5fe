package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

type logContextKey string

const LoggerKey = logContextKey("logger")

const requestIDHeader = "X-Request-ID"

// statusRecorder remembers what the handler wrote so the access log can
// report it after the fact.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}

	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n

	return n, err
}

// Flush keeps the order event stream working through the recorder.
func (sr *statusRecorder) Flush() {
	if f, ok := sr.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

// quietPaths are polled by health checks and scrapers; their access lines go to debug.
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// Logging attaches a request-scoped logger to the context and writes one
// access line per request once the handler returns.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)

		attrs := []any{
			slog.String("correlation_id", requestID),
			slog.String("http_method", r.Method),
			slog.String("http_path", r.URL.Path),
		}

		if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
			attrs = append(attrs, slog.String("trace_id", sc.TraceID().String()))
		}

		requestLogger := slog.Default().With(attrs...)

		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), LoggerKey, requestLogger)))

		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		requestLogger.Log(r.Context(), accessLevel(r.URL.Path, rec.status), "Request completed",
			slog.Int("http_status", rec.status),
			slog.Int("bytes", rec.bytes),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("user_agent", r.UserAgent()),
		)
	})
}

func accessLevel(path string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	}

	if _, ok := quietPaths[path]; ok {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*slog.Logger); ok {
		return logger
	}

	return slog.Default()
}
