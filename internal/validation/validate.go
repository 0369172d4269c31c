package validation

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-pdf/internal/types"
)

// Validate checks a decoded JSON value against the résumé schema.
// Structural failures (not an object, size, depth or reserved keys) stop
// validation with a single error; all field errors are accumulated.
func Validate(raw any, limits Limits) *Result {
	limits = limits.withDefaults()

	if raw == nil {
		return fatal(ErrRequiredFieldMissing, rootField, "resume data is required", nil)
	}
	root, ok := raw.(map[string]any)
	if !ok {
		return fatal(ErrInvalidType, rootField, "resume data must be an object", jsonTypeName(raw))
	}

	serialized, err := json.Marshal(root)
	if err != nil {
		return fatal(ErrInvalidType, rootField, "resume data is not serializable: "+err.Error(), nil)
	}
	if len(serialized) > limits.MaxSizeBytes {
		return sizeExceeded(len(serialized), limits.MaxSizeBytes)
	}

	if structErr := checkStructure(root, limits.MaxDepth); structErr != nil {
		return newResult([]Error{*structErr})
	}

	c := &collector{limits: limits}
	c.validateContact(root)
	c.validateSummary(root)
	c.validateExperience(root)
	c.validateEducation(root)
	c.validateSkills(root)
	c.validateProjects(root)
	c.validateOptions(root)

	return newResult(c.errs)
}

// ValidateBytes rejects input above MaxRawBytes before decoding it, then
// validates the decoded value. The size ceiling itself applies to the
// compact serialization, so indentation does not count against it.
func ValidateBytes(data []byte, limits Limits) *Result {
	limits = limits.withDefaults()
	if len(data) > limits.MaxRawBytes() {
		return fatal(ErrSizeExceeded, rootField,
			fmt.Sprintf("payload exceeds %d bytes, maximum is %d", limits.MaxRawBytes(), limits.MaxSizeBytes), len(data))
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fatal(ErrInvalidType, rootField, "resume data is not valid JSON: "+err.Error(), nil)
	}
	return Validate(raw, limits)
}

// Decode validates data and, when valid, returns the typed résumé.
// The returned error is reserved for decoding failures of already-valid data.
func Decode(data []byte, limits Limits) (*types.Resume, *Result, error) {
	result := ValidateBytes(data, limits)
	if !result.IsValid {
		return nil, result, nil
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, result, fmt.Errorf("failed to decode validated resume: %w", err)
	}
	return &resume, result, nil
}

func sizeExceeded(size, limit int) *Result {
	return fatal(ErrSizeExceeded, rootField,
		fmt.Sprintf("payload is %d bytes, maximum is %d", size, limit), size)
}
