package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client bound to the
// base URL of a six-cities server.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:4000")
//	resp, err := client.R().Get("/offers")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient whose requests are resolved against
// baseURL and accept JSON responses.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// Authorized returns a request that carries token in a Bearer
// "Authorization" header.
func (c *HTTPClient) Authorized(token string) *resty.Request {
	return c.R().SetAuthToken(token)
}
