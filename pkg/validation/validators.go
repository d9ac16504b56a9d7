package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CandidateStatuses is the closed set of pipeline states, in display casing.
// The database CHECK constraint enforces the same list.
var CandidateStatuses = []string{"Applied", "Interviewing", "Hired", "Rejected", "On Hold"}

// Phone: optional +, optional parenthesized groups, digit runs with
// -, space or . separators, 1-9 trailing digits.
var phoneRegex = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,9}$`)

// New returns a validator with the candidate rules registered and field
// names resolved from json tags, so violations reference wire-level names.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("candidate_status", CandidateStatus)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return phoneRegex.MatchString(val)
}

// CandidateStatus validates the pipeline status enum, case-sensitively.
func CandidateStatus(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	for _, s := range CandidateStatuses {
		if val == s {
			return true
		}
	}
	return false
}
