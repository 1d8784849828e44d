package http

import (
	"net/http"

	"github.com/MKhiriev/go-deed-keeper/internal/utils"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength bounds a caller-supplied trace ID before it is echoed
	// back and written to every log line.
	maxTraceIDLength = 128
)

// withTraceID tags the request with a trace ID, reusing a sane X-Trace-ID
// from the caller or generating a UUID v7. The ID is set on the response and
// on a child logger stored in the request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = h.traceID.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(utils.WithTraceID(l.WithContext(r.Context()), traceID))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

// validTraceID accepts non-empty printable ASCII up to maxTraceIDLength.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
