package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	httpRetryCount   = 2
	httpRetryWait    = 200 * time.Millisecond
	httpRetryMaxWait = 2 * time.Second
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().Get("/api/board")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL. Every request is limited
// by timeout. GET requests are retried when the server answers 503 Service
// Unavailable; writes are never repeated.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(httpRetryCount).
		SetRetryWaitTime(httpRetryWait).
		SetRetryMaxWaitTime(httpRetryMaxWait).
		AddRetryCondition(retryUnavailableReads)

	return &HTTPClient{Client: client}
}

func retryUnavailableReads(resp *resty.Response, _ error) bool {
	if resp == nil || resp.Request == nil {
		return false
	}
	return resp.Request.Method == http.MethodGet && resp.StatusCode() == http.StatusServiceUnavailable
}
