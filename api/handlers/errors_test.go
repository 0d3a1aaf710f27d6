package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-admin/core/domain"
	coreerrors "library-admin/core/errors"
	"library-admin/core/screen"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "NotFoundError returns 404",
			input:          &coreerrors.NotFoundError{Resource: "resource", ID: "dragons"},
			expectedStatus: 404,
			expectedInMsg:  "resource not found: dragons",
		},
		{
			name:           "ValidationError returns 400",
			input:          &coreerrors.ValidationError{Field: "method", Message: "unsupported method PATCH"},
			expectedStatus: 400,
			expectedInMsg:  "unsupported method PATCH",
		},
		{
			name:           "RequestError with 404 keeps status",
			input:          &coreerrors.RequestError{StatusCode: 404, Message: "Book not found"},
			expectedStatus: 404,
			expectedInMsg:  "Book not found",
		},
		{
			name:           "RequestError with 409 keeps status",
			input:          &coreerrors.RequestError{StatusCode: 409, Message: "Book has active borrowings"},
			expectedStatus: 409,
			expectedInMsg:  "Book has active borrowings",
		},
		{
			name:           "RequestError with 500 returns 502",
			input:          &coreerrors.RequestError{StatusCode: 500, Message: "API request failed"},
			expectedStatus: 502,
			expectedInMsg:  "API request failed",
		},
		{
			name:           "transport RequestError returns 502",
			input:          &coreerrors.RequestError{Message: "API request failed", Cause: errors.New("connection refused")},
			expectedStatus: 502,
			expectedInMsg:  "API request failed",
		},
		{
			name:           "wrapped NotFoundError returns 404",
			input:          fmt.Errorf("wrapped: %w", &coreerrors.NotFoundError{Resource: "resource", ID: "x"}),
			expectedStatus: 404,
			expectedInMsg:  "resource not found",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			humaErr, ok := result.(*huma.ErrorModel)
			require.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}

func TestToHumaError_Nil(t *testing.T) {
	assert.Nil(t, toHumaError(nil))
}

func TestToHumaError_FormErrorReturns422(t *testing.T) {
	books, ok := domain.LookupResource("books")
	require.True(t, ok)

	err := screen.Validate(books, domain.Record{"Title": "Dune"})
	require.Error(t, err)

	humaErr, ok := toHumaError(err).(*huma.ErrorModel)
	require.True(t, ok)
	assert.Equal(t, 422, humaErr.Status)
	assert.Equal(t, screen.InvalidFormMessage, humaErr.Detail)
	require.NotEmpty(t, humaErr.Errors)

	locations := make([]string, 0, len(humaErr.Errors))
	for _, detail := range humaErr.Errors {
		locations = append(locations, detail.Location)
	}
	assert.Contains(t, locations, "body.Author")
	assert.Contains(t, locations, "body.ISBN")
}
