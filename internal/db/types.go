package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Render statuses
const (
	StatusRendered = "rendered"
	StatusInvalid  = "invalid"
	StatusFailed   = "failed"
)

// RenderRun is one stored render attempt. PDF is only loaded by GetRenderPDF.
type RenderRun struct {
	ID            uuid.UUID       `json:"id"`
	Status        string          `json:"status"`
	FontProfile   string          `json:"font_profile"`
	DensityPreset string          `json:"density_preset"`
	PageCount     int             `json:"page_count"`
	ErrorCount    int             `json:"error_count"`
	Errors        json.RawMessage `json:"errors,omitempty"`
	PDF           []byte          `json:"-"`
	CreatedAt     time.Time       `json:"created_at"`
}
