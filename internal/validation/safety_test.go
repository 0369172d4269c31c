package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSafeContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain", input: "Senior Engineer, Platform (Go/Rust)", want: true},
		{name: "punctuation", input: "C++ & C#; 100% uptime! #1 @ work?", want: true},
		{name: "unicode letters", input: "Zoë Ångström – Müller 東京", want: true},
		{name: "newlines", input: "line one\nline two\r\n\tindented", want: true},
		{name: "typographic", input: "“quoted” • bullet… ‘single’", want: true},
		{name: "NUL", input: "bad\x00byte", want: false},
		{name: "escape", input: "bell\x07", want: false},
		{name: "delete", input: "del\x7f", want: false},
		{name: "emoji", input: "rocket 🚀", want: false},
		{name: "empty", input: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSafeContent(tt.input))
		})
	}
}
