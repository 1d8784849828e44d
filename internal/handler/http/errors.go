// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading requests, before the service layer
// is reached. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body is not the expected JSON.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidQuery is returned when a query parameter cannot be parsed.
	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrImageRequired is returned when a document upload has no "image" part.
	ErrImageRequired = errors.New("land deed image is required")

	// ErrImageTooLarge is returned when the multipart body exceeds maxUploadSize.
	ErrImageTooLarge = errors.New("land deed image is too large")

	// ErrBodyTooLarge is returned when a signed request body exceeds
	// maxUploadSize.
	ErrBodyTooLarge = errors.New("request body is too large")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")
)
