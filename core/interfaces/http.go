package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	Get(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses returned by HTTPClient.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body. The caller must close it.
	Body() io.ReadCloser

	// Header returns the value of the named header, or "" if absent.
	// Header names are case-insensitive.
	Header(key string) string
}
