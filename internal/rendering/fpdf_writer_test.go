package rendering

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-pdf/internal/types"
)

func readPDF(t *testing.T, data []byte) (int, string) {
	t.Helper()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	plain, err := reader.GetPlainText()
	require.NoError(t, err)
	text, err := io.ReadAll(plain)
	require.NoError(t, err)
	return reader.NumPage(), string(text)
}

func sampleDocument() *types.Document {
	return types.NewDocument(
		types.Heading(1, "Jane Doe"),
		types.TextLine("jane@example.com | Berlin"),
		types.SectionBreak(),
		types.Heading(2, "Summary"),
		types.Paragraph("Engineer focused on reliable document pipelines."),
		types.SectionBreak(),
		types.Heading(2, "Skills"),
		types.List([]string{"Go", "PostgreSQL"}),
	)
}

func TestRender_ProducesReadablePDF(t *testing.T) {
	out, err := Render(sampleDocument(), DefaultStyle())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out.Bytes, []byte("%PDF-")))
	assert.Equal(t, 1, out.PageCount)

	pages, text := readPDF(t, out.Bytes)
	assert.Equal(t, out.PageCount, pages)
	assert.Contains(t, text, "Jane")
	assert.Contains(t, text, "Skills")
}

func TestRender_MultiplePages(t *testing.T) {
	doc := types.NewDocument()
	for i := 0; i < 120; i++ {
		doc.Append(types.TextLine("Repeated line of plain text"))
	}

	out, err := Render(doc, DefaultStyle())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, out.PageCount, 2)

	pages, _ := readPDF(t, out.Bytes)
	assert.Equal(t, out.PageCount, pages)
}

func TestRender_Deterministic(t *testing.T) {
	first, err := Render(sampleDocument(), DefaultStyle())
	require.NoError(t, err)
	second, err := Render(sampleDocument(), DefaultStyle())
	require.NoError(t, err)
	assert.Equal(t, first.Bytes, second.Bytes)
}

func TestRender_EmptyDocument(t *testing.T) {
	out, err := Render(types.NewDocument(), DefaultStyle())
	require.NoError(t, err)
	assert.Equal(t, 1, out.PageCount)
}

func TestRender_AllStyles(t *testing.T) {
	reg := DefaultRegistry()
	for _, profile := range reg.Profiles() {
		for _, density := range reg.Densities() {
			style, err := reg.Lookup(profile, density)
			require.NoError(t, err)
			out, err := Render(sampleDocument(), style)
			require.NoError(t, err, "%s/%s", profile, density)
			assert.Equal(t, 1, out.PageCount)
		}
	}
}

func TestPDFWriter_NonLatinTextDegrades(t *testing.T) {
	w := NewPDFWriter("")
	w.SetFont(DefaultStyle().Fonts.Body, 10)

	assert.Positive(t, w.MeasureWidth("Zoë Müller"))
	lines := w.SplitText(strings.Repeat("Ünïcödé ", 40), ContentWidth)
	assert.Greater(t, len(lines), 1)

	w.DrawText(Margin, Margin, "日本語", ContentWidth)
	_, pages, err := w.Finish()
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}
