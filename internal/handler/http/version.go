package http

import (
	"net/http"

	"github.com/MKhiriev/go-deed-keeper/internal/logger"
)

// getServerVersion answers with the running version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(serverVersion)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing response")
	}
}
