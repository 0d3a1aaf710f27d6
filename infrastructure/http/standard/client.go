// ABOUTME: Standard HTTP client implementation with timeout support and instrumented transport
// ABOUTME: Performs backend calls once, without retries, tracing them with OpenTelemetry

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"library-admin/core/interfaces"
)

const userAgent = "LibraryAdmin/1.0"

// StandardHTTPClient implements the HTTPClient interface using net/http
type StandardHTTPClient struct {
	client *http.Client
}

// Option configures the transport chain of a StandardHTTPClient
type Option func(*options)

type options struct {
	base     http.RoundTripper
	logger   interfaces.Logger
	wrappers []func(http.RoundTripper) http.RoundTripper
	tracing  bool
}

// WithTransport replaces the base transport
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) {
		o.base = rt
	}
}

// WithLogger logs every outgoing request at debug level
func WithLogger(logger interfaces.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRoundTripper wraps the transport, e.g. with metrics
func WithRoundTripper(wrap func(http.RoundTripper) http.RoundTripper) Option {
	return func(o *options) {
		o.wrappers = append(o.wrappers, wrap)
	}
}

// WithoutTracing disables the OpenTelemetry transport
func WithoutTracing() Option {
	return func(o *options) {
		o.tracing = false
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// A zero timeout means no client-side limit.
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	o := &options{base: http.DefaultTransport, tracing: true}
	for _, opt := range opts {
		opt(o)
	}

	transport := o.base
	if o.logger != nil {
		transport = &LoggingRoundTripper{Transport: transport, Logger: o.logger}
	}
	for _, wrap := range o.wrappers {
		transport = wrap(transport)
	}
	if o.tracing {
		transport = otelhttp.NewTransport(transport)
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Do performs an HTTP request. Non-2xx statuses are returned as responses.
func (c *StandardHTTPClient) Do(ctx context.Context, method, url string, body io.Reader) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

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

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}

var _ interfaces.HTTPClient = (*StandardHTTPClient)(nil)
