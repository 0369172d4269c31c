// Package validation checks untrusted résumé payloads against the fixed schema, security limits and content-safety rules.
package validation

import (
	"fmt"
	"strings"
)

// ErrorType classifies a validation failure
type ErrorType string

const (
	ErrRequiredFieldMissing ErrorType = "REQUIRED_FIELD_MISSING"
	ErrInvalidType          ErrorType = "INVALID_TYPE"
	ErrStringTooLong        ErrorType = "STRING_TOO_LONG"
	ErrArrayTooLarge        ErrorType = "ARRAY_TOO_LARGE"
	ErrInvalidFormat        ErrorType = "INVALID_FORMAT" // reserved, no rule emits it yet
	ErrUnsafeContent        ErrorType = "UNSAFE_CONTENT"
	ErrDepthExceeded        ErrorType = "DEPTH_EXCEEDED"
	ErrSizeExceeded         ErrorType = "SIZE_EXCEEDED"
)

const rootField = "(root)"

// Error describes a single validation failure at a dotted/indexed field path
type Error struct {
	Type    ErrorType `json:"type"`
	Field   string    `json:"field"`
	Message string    `json:"message"`
	Value   any       `json:"value,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Field, e.Message)
}

// ValidationList is an error wrapping every failure of one payload
type ValidationList []Error //nolint:errname // mirrors the result shape

func (v ValidationList) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i := range v {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, v[i].Error()))
	}
	return sb.String()
}

// Result is the outcome of validating one payload
type Result struct {
	IsValid bool    `json:"isValid"`
	Errors  []Error `json:"errors"`
}

// Err returns the failures as an error, or nil when the payload is valid
func (r *Result) Err() error {
	if r == nil || r.IsValid {
		return nil
	}
	return ValidationList(r.Errors)
}

// HasType reports whether any error of type t was recorded
func (r *Result) HasType(t ErrorType) bool {
	for _, e := range r.Errors {
		if e.Type == t {
			return true
		}
	}
	return false
}

// ForField returns the errors recorded at the given field path
func (r *Result) ForField(field string) []Error {
	var out []Error
	for _, e := range r.Errors {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}

func newResult(errs []Error) *Result {
	if errs == nil {
		errs = []Error{}
	}
	return &Result{IsValid: len(errs) == 0, Errors: errs}
}

func fatal(t ErrorType, field, message string, value any) *Result {
	return newResult([]Error{{Type: t, Field: field, Message: message, Value: value}})
}
