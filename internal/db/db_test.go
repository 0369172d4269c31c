package db

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaSQL_Embedded(t *testing.T) {
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS render_runs")
	for _, column := range []string{"status", "font_profile", "density_preset", "page_count", "error_count", "pdf", "created_at"} {
		assert.True(t, strings.Contains(schemaSQL, column), "schema should declare %s", column)
	}
}

func TestRenderRun_JSONOmitsPDF(t *testing.T) {
	run := RenderRun{
		ID:         uuid.New(),
		Status:     StatusRendered,
		PageCount:  1,
		PDF:        []byte("%PDF-1.4"),
		ErrorCount: 0,
	}

	data, err := json.Marshal(run)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "pdf")
	assert.NotContains(t, decoded, "PDF")
	assert.Equal(t, StatusRendered, decoded["status"])
	assert.Equal(t, run.ID.String(), decoded["id"])
}

func TestClose_NilPool(t *testing.T) {
	db := &DB{}
	assert.NotPanics(t, db.Close)
}
