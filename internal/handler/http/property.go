package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/internal/service"
	"github.com/MKhiriev/go-deed-keeper/internal/utils"
	"github.com/MKhiriev/go-deed-keeper/models"
	"github.com/go-chi/chi/v5"
)

// maxUploadSize caps a deed scan upload.
const maxUploadSize = 10 << 20

func (h *Handler) prepareFromFields(w http.ResponseWriter, r *http.Request) {
	var fields models.DeedFields
	if err := decodeJSON(r, &fields); err != nil {
		writeError(w, r, err, "*Handler.prepareFromFields")
		return
	}

	listing, err := h.services.ListingService.PrepareFromFields(r.Context(), fields)
	if err != nil {
		writeError(w, r, err, "*Handler.prepareFromFields")
		return
	}

	writeJSON(w, r, listing, http.StatusOK)
}

func (h *Handler) prepareFromDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, fmt.Errorf("%w: %w", ErrImageTooLarge, err), "*Handler.prepareFromDocument")
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "*Handler.prepareFromDocument")
		return
	}
	defer r.MultipartForm.RemoveAll()

	owner := r.FormValue("owner")

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrImageRequired, err), "*Handler.prepareFromDocument")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, fmt.Errorf("error reading uploaded image: %w", err), "*Handler.prepareFromDocument")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(content)
	}

	listing, err := h.services.ListingService.PrepareFromDocument(r.Context(), owner, models.Document{
		MimeType: mimeType,
		Content:  content,
	})
	if err != nil {
		writeError(w, r, err, "*Handler.prepareFromDocument")
		return
	}

	writeJSON(w, r, listing, http.StatusOK)
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req models.ConfirmRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.confirm")
		return
	}

	if err := h.services.PropertyService.Confirm(r.Context(), req); err != nil {
		writeError(w, r, err, "*Handler.confirm")
		return
	}

	writeJSON(w, r, models.OKResponse{OK: true}, http.StatusOK)
}

func (h *Handler) setToken(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.setToken")
		return
	}

	entry, err := h.services.PropertyService.SetToken(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.setToken")
		return
	}

	writeJSON(w, r, models.OKResponse{OK: true, Property: &entry}, http.StatusOK)
}

func (h *Handler) updateDetails(w http.ResponseWriter, r *http.Request) {
	var req models.DetailsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.updateDetails")
		return
	}
	req.IDHex = chi.URLParam(r, "idHex")

	entry, err := h.services.PropertyService.UpdateDetails(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.updateDetails")
		return
	}

	writeJSON(w, r, models.OKResponse{OK: true, Property: &entry}, http.StatusOK)
}

// listProperties answers with the confirmed entries. With ?reveal=true every
// payload is opened as well.
func (h *Handler) listProperties(w http.ResponseWriter, r *http.Request) {
	reveal := false
	if raw := r.URL.Query().Get("reveal"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: reveal=%q", ErrInvalidQuery, raw), "*Handler.listProperties")
			return
		}
		reveal = parsed
	}

	if reveal {
		revealed, err := h.services.PropertyService.ListRevealed(r.Context())
		if err != nil {
			writeError(w, r, err, "*Handler.listProperties")
			return
		}
		if revealed == nil {
			revealed = []models.RevealedProperty{}
		}
		writeJSON(w, r, models.RevealedPropertiesResponse{Properties: revealed}, http.StatusOK)
		return
	}

	entries, err := h.services.PropertyService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listProperties")
		return
	}
	if entries == nil {
		entries = []models.PropertyEntry{}
	}

	writeJSON(w, r, models.PropertiesResponse{Properties: entries}, http.StatusOK)
}

func (h *Handler) revealProperty(w http.ResponseWriter, r *http.Request) {
	revealed, err := h.services.PropertyService.Reveal(r.Context(), chi.URLParam(r, "idHex"))
	if err != nil {
		writeError(w, r, err, "*Handler.revealProperty")
		return
	}

	writeJSON(w, r, revealed, http.StatusOK)
}

func (h *Handler) openPayload(w http.ResponseWriter, r *http.Request) {
	var req models.OpenPayloadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.openPayload")
		return
	}

	resp, err := h.services.PropertyService.OpenPayload(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.openPayload")
		return
	}

	writeJSON(w, r, resp, http.StatusOK)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("error writing response")
	}
}
