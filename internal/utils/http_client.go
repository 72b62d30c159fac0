package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-user-service-client"

// HTTPClient is a wrapper around the resty.Client HTTP client configured
// for the users API: a base URL, a per-request timeout, JSON by default and
// a small retry budget for GET requests failing with a transport error or a
// 5xx answer.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 30*time.Second)
//	resp, err := client.R().SetResult(&users).Get("/users/getAllUsers")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client rooted at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetRetryCount(2).
		SetRetryWaitTime(100 * time.Millisecond).
		AddRetryCondition(retryIdempotentRead)

	return &HTTPClient{Client: client}
}

func retryIdempotentRead(r *resty.Response, err error) bool {
	if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
		return false
	}
	return err != nil || r.StatusCode() >= http.StatusInternalServerError
}
