package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithTimeout(time.Minute))
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures the underlying resty.Client of an HTTPClient.
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the URL every relative request path is resolved against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds a single request attempt. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithRetries re-sends a request up to count more times when the transport
// fails, or the upstream answers 429 or 5xx. Waits start at wait and back off
// up to ten times that value.
func WithRetries(count int, wait time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if count <= 0 {
			return
		}
		c.SetRetryCount(count).
			SetRetryWaitTime(wait).
			SetRetryMaxWaitTime(10 * wait).
			AddRetryCondition(IsRetryableResponse)
	}
}

// IsRetryableResponse reports whether a response (or transport error) is worth
// another attempt: transport errors, 429 Too Many Requests and any 5xx.
func IsRetryableResponse(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. Options are applied in order.
//
// Example usage:
//
//	client := utils.NewHTTPClient(
//	    utils.WithBaseURL("https://api.example.com"),
//	    utils.WithRetries(2, 500*time.Millisecond),
//	)
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("/users")
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
