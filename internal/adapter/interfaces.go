// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations used by the service layer.
//
// The primary abstraction is [DeedExtractor], which turns a scanned strata
// title deed into structured [models.DeedFields]. The package ships a Gemini
// implementation ([NewGeminiExtractor]) that talks to the generative language
// REST API through resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of the upstream
// (e.g. [ErrRateLimited] for 429, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-deed-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/deed_extractor_mock.go -package=mock

// DeedExtractor reads the registry fields of a title deed from a document
// image. The Owner field of the result is always empty; ownership comes from
// the caller, never from the scan.
type DeedExtractor interface {
	// ExtractDeed returns the trimmed deed fields found in doc.
	// Returns [ErrExtractorNotConfigured] when no upstream credentials are set
	// and [ErrExtractionFailed] when nothing usable could be read.
	ExtractDeed(ctx context.Context, doc models.Document) (models.DeedFields, error)
}
