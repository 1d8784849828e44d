package http

import (
	"bytes"
	"crypto/hmac"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/internal/utils"
)

const hashHeader = "HashSHA256"

// withHashing verifies the HashSHA256 header of incoming bodies and signs
// outgoing ones. It is a no-op when no hash key is configured. Requests
// without the header pass unchecked.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		if hashFromRequest := r.Header.Get(hashHeader); hashFromRequest != "" {
			// read bytes from body, never more than an upload may carry
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadSize))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					writeError(w, r, fmt.Errorf("%w: %w", ErrBodyTooLarge, err), "*Handler.withHashing")
					return
				}
				log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			// restore request body
			r.Body = io.NopCloser(bytes.NewReader(body))

			hashedBody := utils.HashHex(body)
			if !hmac.Equal([]byte(hashedBody), []byte(hashFromRequest)) {
				log.Error().Str("func", "*Handler.withHashing").
					Str("hash from request", hashFromRequest).
					Str("hashed body", hashedBody).
					Msg("hashes are not equal")
				writeError(w, r, ErrIntegrityCheckFailed, "*Handler.withHashing")
				return
			}

			log.Debug().Str("func", "*Handler.withHashing").Msg("hashes are equal")
		}

		hw := &hashingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(hw, r)
		hw.flush()
	})
}

// hashingResponseWriter buffers the response so that its hash can be sent as
// a header before the body.
type hashingResponseWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

func (w *hashingResponseWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *hashingResponseWriter) flush() {
	if w.body.Len() > 0 {
		w.Header().Set(hashHeader, utils.HashHex(w.body.Bytes()))
	}
	w.ResponseWriter.WriteHeader(w.status)
	_, _ = w.ResponseWriter.Write(w.body.Bytes())
}
