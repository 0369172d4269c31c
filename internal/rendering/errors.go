// Package rendering lays out a document on fixed-geometry pages and produces PDF bytes.
package rendering

import (
	"errors"
	"fmt"
)

// ErrATSInvariant is returned when a document's elements are no longer in
// the order they were produced in.
var ErrATSInvariant = errors.New("ATS invariant violated")

// ErrUnknownStyle is returned for an unknown font profile or density preset
var ErrUnknownStyle = errors.New("unknown style")

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
