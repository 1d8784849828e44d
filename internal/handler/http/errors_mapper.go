package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-deed-keeper/internal/adapter"
	"github.com/MKhiriev/go-deed-keeper/internal/crypto"
	"github.com/MKhiriev/go-deed-keeper/internal/identifier"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/internal/service"
	"github.com/MKhiriev/go-deed-keeper/internal/store"
	"github.com/MKhiriev/go-deed-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:          http.StatusBadRequest,
	ErrInvalidQuery:         http.StatusBadRequest,
	ErrImageRequired:        http.StatusBadRequest,
	ErrImageTooLarge:        http.StatusRequestEntityTooLarge,
	ErrBodyTooLarge:         http.StatusRequestEntityTooLarge,
	ErrIntegrityCheckFailed: http.StatusBadRequest,

	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrIdentifierUnavailable: http.StatusServiceUnavailable,

	validators.ErrEmptyOwner:          http.StatusBadRequest,
	validators.ErrDelimiterInField:    http.StatusBadRequest,
	validators.ErrInvalidIDHex:        http.StatusBadRequest,
	validators.ErrInvalidTokenAddress: http.StatusBadRequest,
	validators.ErrEmptyPayload:        http.StatusBadRequest,
	validators.ErrEmptyImageReference: http.StatusBadRequest,

	identifier.ErrInvalidIdentifier: http.StatusBadRequest,
	identifier.ErrExhaustedKeyspace: http.StatusServiceUnavailable,

	crypto.ErrInvalidCiphertext: http.StatusBadRequest,
	crypto.ErrDecryptionFailed:  http.StatusUnprocessableEntity,
	crypto.ErrInvalidKey:        http.StatusInternalServerError,

	adapter.ErrExtractorNotConfigured: http.StatusServiceUnavailable,
	adapter.ErrEmptyDocument:          http.StatusBadRequest,
	adapter.ErrExtractionFailed:       http.StatusBadGateway,

	store.ErrPropertyNotFound: http.StatusNotFound,
	store.ErrIdentifierTaken:  http.StatusConflict,
	store.ErrRegistryCorrupt:  http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Client errors carry
// the error text; server errors only the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	http.Error(w, message, status)
}
