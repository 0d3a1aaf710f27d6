// ABOUTME: HTTP client helper wrapping backend calls with JSON handling
// ABOUTME: Surfaces every failure as a RequestError and toggles the busy overlay around calls

package request

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	coreerrors "library-admin/core/errors"
	"library-admin/core/interfaces"
)

// Helper performs JSON calls against the backend REST API
type Helper struct {
	client  interfaces.HTTPClient
	baseURL string
	busy    interfaces.BusyIndicator
	logger  interfaces.Logger
}

// NewHelper creates a helper rooted at baseURL. deps.Busy and deps.Logger
// are optional.
func NewHelper(baseURL string, deps interfaces.Dependencies) *Helper {
	return &Helper{
		client:  deps.HTTPClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		busy:    deps.Busy,
		logger:  deps.Logger,
	}
}

// URL resolves path against the base URL. Absolute URLs are returned unchanged.
func (h *Helper) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return h.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Get fetches path and decodes the JSON response into out
func (h *Helper) Get(ctx context.Context, path string, out any) error {
	return h.do(ctx, http.MethodGet, path, nil, out)
}

// Send performs a POST, PUT or DELETE with body encoded as JSON.
// The body is never sent for DELETE. out may be nil to discard the response.
func (h *Helper) Send(ctx context.Context, path, method string, body any, out any) error {
	switch method {
	case http.MethodPost, http.MethodPut:
	case http.MethodDelete:
		body = nil
	default:
		return &coreerrors.ValidationError{Field: "method", Message: fmt.Sprintf("unsupported method %s", method)}
	}
	return h.do(ctx, method, path, body, out)
}

func (h *Helper) do(ctx context.Context, method, path string, body any, out any) error {
	if h.busy != nil {
		h.busy.Show()
		defer h.busy.Hide()
	}

	url := h.URL(path)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return h.fail(&coreerrors.RequestError{
				Message: "failed to encode request body",
				Method:  method,
				URL:     url,
				Cause:   err,
			})
		}
		reader = bytes.NewReader(payload)
	}

	resp, err := h.client.Do(ctx, method, url, reader)
	if err != nil {
		return h.fail(&coreerrors.RequestError{
			Message: err.Error(),
			Method:  method,
			URL:     url,
			Cause:   err,
		})
	}
	defer resp.Body().Close()

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return h.fail(&coreerrors.RequestError{
			Message:    serverMessage(resp.Body()),
			StatusCode: status,
			Method:     method,
			URL:        url,
		})
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body())
		return nil
	}

	if err := json.NewDecoder(resp.Body()).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return h.fail(&coreerrors.RequestError{
			Message:    "invalid JSON response",
			StatusCode: status,
			Method:     method,
			URL:        url,
			Cause:      err,
		})
	}

	return nil
}

func (h *Helper) fail(err *coreerrors.RequestError) error {
	if h.logger != nil {
		fields := map[string]interface{}{
			"method": err.Method,
			"url":    err.URL,
			"error":  err.Message,
		}
		if err.StatusCode != 0 {
			fields["status"] = err.StatusCode
		}
		h.logger.Error("Backend request failed", fields)
	}
	return err
}

// serverMessage extracts the message from an error body.
// Supports {"error": "msg"} and {"error": {"message": "msg"}}.
func serverMessage(body io.Reader) string {
	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return coreerrors.DefaultRequestMessage
	}

	if len(payload.Error) > 0 {
		var text string
		if err := json.Unmarshal(payload.Error, &text); err == nil && text != "" {
			return text
		}
		var envelope struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(payload.Error, &envelope); err == nil && envelope.Message != "" {
			return envelope.Message
		}
	}

	if payload.Message != "" {
		return payload.Message
	}
	return coreerrors.DefaultRequestMessage
}

var _ interfaces.APIClient = (*Helper)(nil)
