package request

import (
	"context"
	"io"
	"strings"

	"library-admin/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	doFunc func(ctx context.Context, method, url string, body io.Reader) (interfaces.Response, error)
}

func (m *mockHTTPClient) Do(ctx context.Context, method, url string, body io.Reader) (interfaces.Response, error) {
	if m.doFunc != nil {
		return m.doFunc(ctx, method, url, body)
	}
	return &mockResponse{statusCode: 200, body: "{}"}, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
	closed     bool
	reader     *trackingBody
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	if m.reader == nil {
		m.reader = &trackingBody{Reader: strings.NewReader(m.body), resp: m}
	}
	return m.reader
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

type trackingBody struct {
	io.Reader
	resp *mockResponse
}

func (b *trackingBody) Close() error {
	b.resp.closed = true
	return nil
}

// mockBusy counts overlay transitions
type mockBusy struct {
	visible bool
	shows   int
	hides   int
}

func (m *mockBusy) Show() {
	m.shows++
	m.visible = true
}

func (m *mockBusy) Hide() {
	m.hides++
	m.visible = false
}

func (m *mockBusy) Visible() bool {
	return m.visible
}

// mockLogger discards everything but counts errors
type mockLogger struct {
	errors int
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.errors++ }
