// Package schemas holds the JSON Schema documents shipped with the binary.
package schemas

import _ "embed"

// Resume is the JSON Schema for a résumé render request
//
//go:embed resume.schema.json
var Resume []byte
