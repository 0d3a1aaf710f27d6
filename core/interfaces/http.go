package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations (instrumented, logging, etc.)
type HTTPClient interface {
	// Do performs an HTTP request with the given method against url.
	// A nil body sends no request body. Non-2xx statuses are not errors at
	// this level; the caller inspects StatusCode.
	// The caller is responsible for closing the response body.
	Do(ctx context.Context, method, url string, body io.Reader) (Response, error)
}

// Response defines the interface for HTTP responses.
// This abstraction allows different HTTP client implementations to provide
// their own response types while maintaining a consistent interface.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string
}

// APIClient performs JSON calls against the backend REST API.
// Failures are reported as *errors.RequestError.
type APIClient interface {
	// Get fetches path and decodes the JSON response into out.
	Get(ctx context.Context, path string, out any) error

	// Send performs a POST, PUT or DELETE with body encoded as JSON.
	// out may be nil to discard the response.
	Send(ctx context.Context, path, method string, body any, out any) error
}
