package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-pdf/internal/pipeline"
	"github.com/jonathan/resume-pdf/internal/rendering"
)

// ErrNotFound indicates a stored resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrHistoryDisabled is returned when render history is requested without a database
var ErrHistoryDisabled = errors.New("render history is not configured")

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var notFound *ErrNotFound
	var invalid *ErrValidation
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &notFound), errors.Is(err, ErrHistoryDisabled):
		return http.StatusNotFound
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &invalid),
		errors.Is(err, pipeline.ErrInvalidResume),
		errors.Is(err, rendering.ErrUnknownStyle):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
