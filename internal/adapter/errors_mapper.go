package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// apiError is the error envelope Google APIs answer with on failure.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// mapHTTPError turns a non-2xx response into a sentinel-wrapped error that
// carries the upstream message. 2xx responses map to nil.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(code)
	}

	var sentinel error
	switch {
	case code == http.StatusBadRequest:
		sentinel = ErrBadRequest
	case code == http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case code == http.StatusForbidden:
		sentinel = ErrForbidden
	case code == http.StatusNotFound:
		sentinel = ErrNotFound
	case code == http.StatusTooManyRequests:
		sentinel = ErrRateLimited
	case code >= http.StatusInternalServerError:
		sentinel = ErrUpstream
	default:
		return fmt.Errorf("http %d: %s", code, detail)
	}

	return fmt.Errorf("%w: %s", sentinel, detail)
}

// errorDetail prefers the "STATUS: message" pair of an API error envelope and
// falls back to the trimmed raw body.
func errorDetail(body []byte) string {
	var envelope apiError
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		if envelope.Error.Status != "" {
			return envelope.Error.Status + ": " + envelope.Error.Message
		}
		return envelope.Error.Message
	}
	return strings.TrimSpace(string(body))
}
