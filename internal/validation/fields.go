package validation

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// collector accumulates field errors across every section of one payload
type collector struct {
	limits Limits
	errs   []Error
}

func (c *collector) add(t ErrorType, field, message string, value any) {
	c.errs = append(c.errs, Error{Type: t, Field: field, Message: message, Value: value})
}

// checkString applies the required-string rules to v at field
func (c *collector) checkString(v any, field string, maxLen int) {
	if v == nil {
		c.add(ErrRequiredFieldMissing, field, field+" is required", nil)
		return
	}
	s, ok := v.(string)
	if !ok {
		c.add(ErrInvalidType, field, field+" must be a string", jsonTypeName(v))
		return
	}
	if strings.TrimSpace(s) == "" {
		c.add(ErrRequiredFieldMissing, field, field+" must not be empty", nil)
		return
	}
	if n := utf8.RuneCountInString(s); n > maxLen {
		c.add(ErrStringTooLong, field, fmt.Sprintf("%s exceeds maximum length of %d characters", field, maxLen), n)
		return
	}
	if !IsSafeContent(s) {
		c.add(ErrUnsafeContent, field, field+" contains disallowed characters", nil)
	}
}

func (c *collector) requiredString(obj map[string]any, key, parent string, maxLen int) {
	c.checkString(obj[key], joinPath(parent, key), maxLen)
}

// optionalString accepts an absent or empty value, otherwise applies the required rules
func (c *collector) optionalString(obj map[string]any, key, parent string, maxLen int) {
	v, present := obj[key]
	if !present || v == nil {
		return
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return
	}
	c.checkString(v, joinPath(parent, key), maxLen)
}

// array returns the array at key, recording type and cardinality errors.
// A missing key yields an empty array; an over-limit array is rejected
// wholesale and ok is false so elements are not inspected.
func (c *collector) array(obj map[string]any, key, parent string, maxItems int) (items []any, field string, ok bool) {
	field = joinPath(parent, key)
	v, present := obj[key]
	if !present || v == nil {
		return nil, field, true
	}
	items, isArray := v.([]any)
	if !isArray {
		c.add(ErrInvalidType, field, field+" must be an array", jsonTypeName(v))
		return nil, field, false
	}
	if len(items) > maxItems {
		c.add(ErrArrayTooLarge, field, fmt.Sprintf("%s has %d items, maximum is %d", field, len(items), maxItems), len(items))
		return nil, field, false
	}
	return items, field, true
}

func (c *collector) stringArray(obj map[string]any, key, parent string, maxItems, maxLen int) {
	items, field, ok := c.array(obj, key, parent, maxItems)
	if !ok {
		return
	}
	for i, item := range items {
		c.checkString(item, indexPath(field, i), maxLen)
	}
}

// objectArray validates each entry of an array of objects with check
func (c *collector) objectArray(obj map[string]any, key string, maxItems int, check func(entry map[string]any, path string)) {
	items, field, ok := c.array(obj, key, "", maxItems)
	if !ok {
		return
	}
	for i, item := range items {
		path := indexPath(field, i)
		entry, isObject := item.(map[string]any)
		if !isObject {
			c.add(ErrInvalidType, path, path+" must be an object", jsonTypeName(item))
			continue
		}
		check(entry, path)
	}
}

// optionalEnum accepts an absent or empty value, otherwise a string from allowed
func (c *collector) optionalEnum(obj map[string]any, key string, allowed []string) {
	before := len(c.errs)
	c.optionalString(obj, key, "", c.limits.MaxStringLength)
	if len(c.errs) > before {
		return
	}
	s, _ := obj[key].(string)
	if s == "" || slices.Contains(allowed, s) {
		return
	}
	c.add(ErrInvalidType, key, fmt.Sprintf("%s must be one of %s", key, strings.Join(allowed, ", ")), s)
}

func (c *collector) optionalBool(obj map[string]any, key string) {
	v, present := obj[key]
	if !present || v == nil {
		return
	}
	if _, ok := v.(bool); !ok {
		c.add(ErrInvalidType, key, key+" must be a boolean", jsonTypeName(v))
	}
}
