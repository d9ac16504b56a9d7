package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go-candidate-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps wire-level field names to user-friendly labels
var FieldLabels = map[string]string{
	"id":               "Candidate ID",
	"name":             "Name",
	"age":              "Age",
	"email":            "Email",
	"phone":            "Phone",
	"skills":           "Skills",
	"experience":       "Experience",
	"applied_position": "Applied position",
	"status":           "Status",
}

// fieldRanges holds min/max bounds quoted in validation messages
var fieldRanges = map[string][2]string{
	"name": {"2", "100"},
	"age":  {"1", "150"},
}

// FormatValidationErrors converts validator.ValidationErrors into the
// ordered field-level violation list carried by the error envelope.
func FormatValidationErrors(err error) []apperror.FieldViolation {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic violation
		return []apperror.FieldViolation{{Field: "body", Message: err.Error()}}
	}

	details := make([]apperror.FieldViolation, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, apperror.FieldViolation{
			Field:   e.Field(),
			Message: formatSingleError(e),
		})
	}
	return details
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	field := e.Field()
	label := getFieldLabel(field)

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min", "max":
		if bounds, ok := fieldRanges[field]; ok {
			unit := ""
			if e.Kind().String() == "string" {
				unit = " characters"
			}
			return fmt.Sprintf("%s must be between %s and %s%s", label, bounds[0], bounds[1], unit)
		}
		if e.Tag() == "min" {
			return fmt.Sprintf("%s must be at least %s", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())

	case "email":
		return "Must be a valid email address"

	case "valid_phone":
		return "Must be a valid phone number"

	case "candidate_status":
		return fmt.Sprintf("Status must be one of: %s", strings.Join(CandidateStatuses, ", "))

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}

// BindError translates a JSON binding failure into a validation error,
// pointing at the offending field when the decoder identifies one.
func BindError(err error) *apperror.AppError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return apperror.Validation([]apperror.FieldViolation{{
			Field:   field,
			Message: fmt.Sprintf("%s must be a valid %s", getFieldLabel(field), friendlyType(typeErr.Type.Kind().String())),
		}})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return apperror.Validation([]apperror.FieldViolation{{
			Field:   "body",
			Message: "Request body must be valid JSON",
		}})
	}

	return apperror.BadRequest(err.Error())
}

func friendlyType(kind string) string {
	switch kind {
	case "int", "int64", "ptr":
		return "integer"
	case "string":
		return "string"
	default:
		return kind
	}
}
