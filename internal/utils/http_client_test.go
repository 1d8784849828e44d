package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Options(t *testing.T) {
	client := NewHTTPClient(
		WithBaseURL("http://example.test"),
		WithTimeout(3*time.Second),
		WithRetries(2, 10*time.Millisecond),
	)

	assert.Equal(t, "http://example.test", client.BaseURL)
	assert.Equal(t, 2, client.RetryCount)
	assert.Equal(t, 10*time.Millisecond, client.RetryWaitTime)
}

func TestNewHTTPClient_NonPositiveValuesIgnored(t *testing.T) {
	client := NewHTTPClient(WithTimeout(0), WithRetries(0, time.Second))

	assert.Equal(t, 0, client.RetryCount)
}

func TestIsRetryableResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/429":
			w.WriteHeader(http.StatusTooManyRequests)
		case "/503":
			w.WriteHeader(http.StatusServiceUnavailable)
		case "/400":
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	client := NewHTTPClient(WithBaseURL(srv.URL))
	get := func(path string) *resty.Response {
		resp, err := client.R().Get(path)
		require.NoError(t, err)
		return resp
	}

	assert.True(t, IsRetryableResponse(get("/429"), nil))
	assert.True(t, IsRetryableResponse(get("/503"), nil))
	assert.False(t, IsRetryableResponse(get("/400"), nil))
	assert.False(t, IsRetryableResponse(get("/ok"), nil))
	assert.True(t, IsRetryableResponse(nil, errors.New("connection reset")))
	assert.False(t, IsRetryableResponse(nil, nil))
}

func TestHTTPClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(WithBaseURL(srv.URL), WithRetries(3, time.Millisecond))
	resp, err := client.R().Get("/")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, int32(3), calls.Load())
}
