package adapter

import "errors"

var (
	ErrExtractorNotConfigured = errors.New("deed extractor is not configured")
	ErrExtractionFailed       = errors.New("deed extraction failed")
	ErrEmptyDocument          = errors.New("document is empty")

	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrRateLimited  = errors.New("rate limited")
	ErrUpstream     = errors.New("upstream error")
)
