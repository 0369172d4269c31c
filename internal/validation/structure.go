package validation

import (
	"fmt"
	"sort"
)

// reservedKeys are prototype-chain names rejected anywhere in a payload
var reservedKeys = map[string]bool{
	"__proto__":   true,
	"constructor": true,
	"prototype":   true,
}

// checkStructure walks the decoded tree, rejecting reserved keys and nesting
// deeper than maxDepth. The walk stops at the first violation.
func checkStructure(v any, maxDepth int) *Error {
	return walkStructure(v, 0, maxDepth, "")
}

func walkStructure(v any, depth, maxDepth int, path string) *Error {
	switch node := v.(type) {
	case map[string]any:
		depth++
		if depth > maxDepth {
			return depthError(path, depth, maxDepth)
		}
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := joinPath(path, k)
			if reservedKeys[k] {
				return &Error{
					Type:    ErrDepthExceeded,
					Field:   child,
					Message: fmt.Sprintf("reserved key %q is not allowed", k),
					Value:   k,
				}
			}
			if err := walkStructure(node[k], depth, maxDepth, child); err != nil {
				return err
			}
		}
	case []any:
		depth++
		if depth > maxDepth {
			return depthError(path, depth, maxDepth)
		}
		for i, item := range node {
			if err := walkStructure(item, depth, maxDepth, indexPath(path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func depthError(path string, depth, maxDepth int) *Error {
	if path == "" {
		path = rootField
	}
	return &Error{
		Type:    ErrDepthExceeded,
		Field:   path,
		Message: fmt.Sprintf("nesting depth exceeds maximum of %d", maxDepth),
		Value:   depth,
	}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}

// jsonTypeName names the JSON type of a decoded value for error reporting
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
