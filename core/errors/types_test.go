package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestRequestError_Error(t *testing.T) {
	err := &RequestError{
		Message:    "Book not found",
		StatusCode: 404,
		Method:     "GET",
		URL:        "http://backend/api/books/7",
	}

	if err.Error() != "Book not found" {
		t.Errorf("RequestError.Error() = %v, want %v", err.Error(), "Book not found")
	}
}

func TestRequestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &RequestError{Message: "connection refused", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("RequestError should unwrap to its cause")
	}
}

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Resource: "resource",
		ID:       "authors",
	}

	expected := "resource not found: authors"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "Email",
		Message: "invalid email format",
	}

	expected := "validation error on field 'Email': invalid email format"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}

	noField := &ValidationError{Message: "unsupported method PATCH"}
	if noField.Error() != "validation error: unsupported method PATCH" {
		t.Errorf("ValidationError.Error() = %v", noField.Error())
	}
}

func TestIsRequest_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("loading books: %w", &RequestError{Message: "boom", StatusCode: 500})

	if !IsRequest(wrapped) {
		t.Error("IsRequest should return true for wrapped RequestError")
	}

	requestErr, ok := AsRequest(wrapped)
	if !ok || requestErr.StatusCode != 500 {
		t.Errorf("AsRequest = %v, %v", requestErr, ok)
	}
}

func TestIsRequest_False(t *testing.T) {
	if IsRequest(errors.New("plain")) {
		t.Error("IsRequest should return false for plain errors")
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"not found error", &NotFoundError{Resource: "resource", ID: "x"}, true},
		{"404 request error", &RequestError{Message: "Member not found", StatusCode: 404}, true},
		{"500 request error", &RequestError{Message: "boom", StatusCode: 500}, false},
		{"plain error", errors.New("nope"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	err := fmt.Errorf("save: %w", &ValidationError{Field: "Title", Message: "required"})

	if !IsValidation(err) {
		t.Error("IsValidation should return true for wrapped ValidationError")
	}
	if IsValidation(errors.New("other")) {
		t.Error("IsValidation should return false for other errors")
	}
}

func TestMessage(t *testing.T) {
	if got := Message(nil); got != "" {
		t.Errorf("Message(nil) = %q", got)
	}
	if got := Message(fmt.Errorf("ctx: %w", &RequestError{Message: "Publisher not found"})); got != "Publisher not found" {
		t.Errorf("Message(request) = %q", got)
	}
	if got := Message(&ValidationError{Field: "Email", Message: "Email is required"}); got != "Email is required" {
		t.Errorf("Message(validation) = %q", got)
	}
	if got := Message(errors.New("plain")); got != "plain" {
		t.Errorf("Message(plain) = %q", got)
	}
}

func TestWrapError(t *testing.T) {
	original := errors.New("original error")
	wrapped := WrapError(original, "additional context")

	expected := "additional context: original error"
	if wrapped.Error() != expected {
		t.Errorf("WrapError() = %v, want %v", wrapped.Error(), expected)
	}

	if !errors.Is(wrapped, original) {
		t.Error("Wrapped error should be unwrappable to original")
	}
}

func TestWrapError_Nil(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}
