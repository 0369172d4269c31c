package validation

import (
	"strings"
	"unicode"
)

// allowedPunctuation lists the non-alphanumeric characters accepted in any field
const allowedPunctuation = ".,;:!?'\"()[]{}-_/\\@#$%&*+=<>|~^`" +
	"–—‘’“”•…·°©®™€£¥"

// IsSafeContent reports whether s contains only letters, digits, whitespace
// and common punctuation. NUL and other control characters are never allowed.
func IsSafeContent(s string) bool {
	for _, r := range s {
		switch {
		case r == 0:
			return false
		case r == '\t' || r == '\n' || r == '\r':
			continue
		case unicode.IsControl(r):
			return false
		case unicode.IsLetter(r), unicode.IsMark(r), unicode.IsDigit(r), unicode.IsNumber(r):
			continue
		case unicode.Is(unicode.Zs, r):
			continue
		case strings.ContainsRune(allowedPunctuation, r):
			continue
		default:
			return false
		}
	}
	return true
}
