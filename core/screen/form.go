// ABOUTME: Client-side form validation and normalisation for resource forms
// ABOUTME: Checks required fields, e-mail format and numeric inputs before saving

package screen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"library-admin/core/domain"
	coreerrors "library-admin/core/errors"
	"library-admin/pkg/utils/parse"
)

// InvalidFormMessage is shown when client-side validation fails
const InvalidFormMessage = "Please fill in all required fields correctly"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FormError collects every invalid field of a submitted form
type FormError struct {
	Fields []*coreerrors.ValidationError
}

func (e *FormError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual field errors to errors.As
func (e *FormError) Unwrap() []error {
	errs := make([]error, len(e.Fields))
	for i, f := range e.Fields {
		errs[i] = f
	}
	return errs
}

// Field returns the error for key, if any
func (e *FormError) Field(key string) (*coreerrors.ValidationError, bool) {
	for _, f := range e.Fields {
		if f.Field == key {
			return f, true
		}
	}
	return nil, false
}

// AsFormError returns the FormError in err's chain, if any
func AsFormError(err error) (*FormError, bool) {
	var formErr *FormError
	if errors.As(err, &formErr) {
		return formErr, true
	}
	return nil, false
}

// Validate checks form against the resource's field definitions.
// Returns nil or a *FormError.
func Validate(resource domain.Resource, form domain.Record) error {
	var fields []*coreerrors.ValidationError
	for _, f := range resource.Fields {
		text := strings.TrimSpace(form.String(f.Key))
		if text == "" {
			if f.Required {
				fields = append(fields, &coreerrors.ValidationError{Field: f.Key, Message: fmt.Sprintf("%s is required", f.Label)})
			}
			continue
		}

		switch f.Kind {
		case domain.KindEmail:
			if !emailPattern.MatchString(text) {
				fields = append(fields, &coreerrors.ValidationError{Field: f.Key, Message: "must be a valid email address"})
			}
		case domain.KindNumber, domain.KindCurrency:
			n, ok := parse.Number(text)
			if !ok {
				fields = append(fields, &coreerrors.ValidationError{Field: f.Key, Message: fmt.Sprintf("%s must be a number", f.Label)})
			} else if n < 0 {
				fields = append(fields, &coreerrors.ValidationError{Field: f.Key, Message: fmt.Sprintf("%s must not be negative", f.Label)})
			}
		case domain.KindDate:
			if _, err := time.Parse(domain.APIDateLayout, text); err != nil {
				fields = append(fields, &coreerrors.ValidationError{Field: f.Key, Message: fmt.Sprintf("%s must be a date (YYYY-MM-DD)", f.Label)})
			}
		case domain.KindBool:
			if _, err := strconv.ParseBool(text); err != nil {
				fields = append(fields, &coreerrors.ValidationError{Field: f.Key, Message: fmt.Sprintf("%s must be true or false", f.Label)})
			}
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &FormError{Fields: fields}
}

// Normalize converts a validated form into the payload sent to the backend.
// Only the resource's fields are kept; blank values become null.
func Normalize(resource domain.Resource, form domain.Record) domain.Record {
	out := make(domain.Record, len(resource.Fields))
	for _, f := range resource.Fields {
		raw, present := form[f.Key]
		if !present {
			continue
		}
		text, isText := raw.(string)
		if !isText {
			out[f.Key] = raw
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			out[f.Key] = nil
			continue
		}

		switch f.Kind {
		case domain.KindNumber:
			n, _ := parse.Number(text)
			if n == float64(int64(n)) {
				out[f.Key] = int64(n)
			} else {
				out[f.Key] = n
			}
		case domain.KindCurrency:
			n, _ := parse.Number(text)
			out[f.Key] = n
		case domain.KindBool:
			b, _ := strconv.ParseBool(text)
			out[f.Key] = b
		default:
			out[f.Key] = text
		}
	}
	return out
}
