package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-deed-keeper/internal/logger"
)

// withLogging writes one access log line per request using the request
// scoped logger, so the line carries the trace ID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &loggingResponseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		event := logger.FromRequest(r).Info()
		if lw.status >= http.StatusInternalServerError {
			event = logger.FromRequest(r).Warn()
		}
		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote", r.RemoteAddr).
			Int("status", lw.statusOrOK()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

// loggingResponseWriter records the status code and body size of a response.
// WriteHeader is forwarded once; later calls are ignored.
type loggingResponseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// statusOrOK reports 200 for handlers that never wrote anything.
func (w *loggingResponseWriter) statusOrOK() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
