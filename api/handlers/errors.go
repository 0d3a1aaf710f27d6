// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts core errors to appropriate HTTP responses

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	coreerrors "library-admin/core/errors"
	"library-admin/core/screen"
)

// toHumaError converts core errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if formErr, ok := screen.AsFormError(err); ok {
		details := make([]error, 0, len(formErr.Fields))
		for _, field := range formErr.Fields {
			details = append(details, &huma.ErrorDetail{
				Location: "body." + field.Field,
				Message:  field.Message,
			})
		}
		return huma.Error422UnprocessableEntity(screen.InvalidFormMessage, details...)
	}

	if coreerrors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if coreerrors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if requestErr, ok := coreerrors.AsRequest(err); ok {
		// Backend client errors keep their status, everything else is a bad gateway
		switch {
		case requestErr.StatusCode >= 400 && requestErr.StatusCode < 500:
			return huma.NewError(requestErr.StatusCode, requestErr.Message)
		default:
			return huma.NewError(http.StatusBadGateway, requestErr.Message, unwrapCause(requestErr))
		}
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}

func unwrapCause(err *coreerrors.RequestError) error {
	if err.Cause != nil {
		return err.Cause
	}
	return errors.New(err.Error())
}

// notConfirmed is returned when a delete arrives without confirmation
func notConfirmed(prompt string) error {
	return huma.Error409Conflict(fmt.Sprintf("Deletion not confirmed: %s", prompt))
}
