// ABOUTME: Standard HTTP client implementation with a fixed user agent and timeout
// ABOUTME: Single-attempt fetches; retries are the caller's responsibility

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"extractor-app-api/core/interfaces"
)

const userAgent = "ContentExtractor/1.0"

// DefaultTimeout bounds a single fetch when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// StandardHTTPClient implements the HTTPClient interface using net/http.
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates an HTTP client with the specified timeout.
// A zero timeout falls back to DefaultTimeout.
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs a single HTTP GET request. The extraction chain is not
// self-retrying, so a failed fetch surfaces immediately.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface.
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
