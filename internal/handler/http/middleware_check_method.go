// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-deed-keeper/internal/logger"
)

// CheckHTTPMethod is registered through [chi.Mux.MethodNotAllowed].
//
// Chi calls it only after deciding the path is known but the method is not,
// for the root router and every sub-router it mounts. It answers 404 instead
// of 405 so callers using an unsupported method cannot tell which paths
// exist. It never hands the request back to the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("func", "CheckHTTPMethod").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method not registered for path")

	http.NotFound(w, r)
}
