package records

import (
	"context"
	"encoding/json"
)

// call records one request made through mockRequester
type call struct {
	method string
	path   string
	body   any
}

// mockRequester answers every call with a canned JSON payload
type mockRequester struct {
	calls    []call
	response string
	err      error
}

func (m *mockRequester) Get(ctx context.Context, path string, out any) error {
	return m.record(call{method: "GET", path: path}, out)
}

func (m *mockRequester) Send(ctx context.Context, path, method string, body any, out any) error {
	return m.record(call{method: method, path: path, body: body}, out)
}

func (m *mockRequester) record(c call, out any) error {
	m.calls = append(m.calls, c)
	if m.err != nil {
		return m.err
	}
	if out == nil || m.response == "" {
		return nil
	}
	return json.Unmarshal([]byte(m.response), out)
}

// mockLogger counts warnings
type mockLogger struct {
	warnings int
	fields   map[string]interface{}
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnings++
	m.fields = fields
}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
