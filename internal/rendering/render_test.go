package rendering

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-pdf/internal/types"
)

type drawOp struct {
	page int
	x, y float64
	text string
	face FontFace
	size float64
}

type linkOp struct {
	page       int
	x, y, w, h float64
	target     string
}

// recordingWriter measures every rune as half the font size wide
type recordingWriter struct {
	page     int
	face     FontFace
	size     float64
	draws    []drawOp
	links    []linkOp
	newPages int
}

func newRecordingWriter() *recordingWriter {
	return &recordingWriter{page: 1}
}

func (w *recordingWriter) NewPage() {
	w.page++
	w.newPages++
}

func (w *recordingWriter) SetFont(face FontFace, size float64) {
	w.face, w.size = face, size
}

func (w *recordingWriter) DrawText(x, y float64, text string, _ float64) float64 {
	w.draws = append(w.draws, drawOp{page: w.page, x: x, y: y, text: text, face: w.face, size: w.size})
	return y + w.size*LineHeightRatio
}

func (w *recordingWriter) MeasureWidth(text string) float64 {
	return float64(len([]rune(text))) * w.size / 2
}

func (w *recordingWriter) SplitText(text string, maxWidth float64) []string {
	return wrapWords(text, maxWidth, w.MeasureWidth)
}

func (w *recordingWriter) AddLinkRegion(x, y, width, height float64, target string) {
	w.links = append(w.links, linkOp{page: w.page, x: x, y: y, w: width, h: height, target: target})
}

func (w *recordingWriter) Finish() ([]byte, int, error) {
	return []byte("recorded"), w.page, nil
}

func (w *recordingWriter) texts() []string {
	out := make([]string, len(w.draws))
	for i, d := range w.draws {
		out[i] = d.text
	}
	return out
}

func TestRenderWith_DrawOrderMatchesElementOrder(t *testing.T) {
	doc := types.NewDocument(
		types.Heading(1, "Jane Doe"),
		types.TextLine("Berlin"),
		types.SectionBreak(),
		types.Heading(2, "Skills"),
		types.TextLine("Languages: Go"),
		types.List([]string{"first", "second"}),
	)
	w := newRecordingWriter()

	out, err := RenderWith(doc, DefaultStyle(), w)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jane Doe", "Berlin", "Skills", "Languages: Go", Bullet, "first", Bullet, "second"}, w.texts())
	assert.Equal(t, 1, out.PageCount)
	assert.False(t, out.Overflows())
}

func TestRenderWith_RendersInGivenOrder(t *testing.T) {
	doc := types.NewDocument(types.TextLine("zeta"), types.TextLine("alpha"), types.TextLine("mid"))
	w := newRecordingWriter()

	_, err := RenderWith(doc, DefaultStyle(), w)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, w.texts())
}

func TestRenderWith_RejectsReorderedDocument(t *testing.T) {
	doc := types.NewDocument(types.TextLine("a"), types.TextLine("b"), types.TextLine("c"))
	doc.Elements[0], doc.Elements[2] = doc.Elements[2], doc.Elements[0]
	w := newRecordingWriter()

	out, err := RenderWith(doc, DefaultStyle(), w)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, ErrATSInvariant))
	assert.Empty(t, w.draws)
}

func TestRenderWith_RejectsDuplicateIndex(t *testing.T) {
	doc := &types.Document{Elements: []types.Element{types.TextLine("a"), types.TextLine("b")}}

	_, err := RenderWith(doc, DefaultStyle(), newRecordingWriter())
	assert.ErrorIs(t, err, ErrATSInvariant)
}

func TestRenderWith_NilDocument(t *testing.T) {
	_, err := RenderWith(nil, DefaultStyle(), newRecordingWriter())
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRenderWith_PageBreak(t *testing.T) {
	style := DefaultStyle()
	per := style.LineHeight(style.Layout.Sizes.Body) + style.Layout.Spacing.AfterText
	count := int((ContentBottom-Margin)/per) + 5

	doc := types.NewDocument()
	for i := 0; i < count; i++ {
		doc.Append(types.TextLine("line"))
	}
	w := newRecordingWriter()

	out, err := RenderWith(doc, style, w)
	require.NoError(t, err)

	assert.Equal(t, 1, w.newPages)
	assert.Equal(t, 2, out.PageCount)
	assert.True(t, out.Overflows())
	require.Len(t, w.draws, count)

	firstOnPage2 := -1
	for i, d := range w.draws {
		assert.LessOrEqual(t, d.y+style.LineHeight(d.size), ContentBottom+1e-9, "draw %d overflows", i)
		if d.page == 2 && firstOnPage2 < 0 {
			firstOnPage2 = i
		}
	}
	require.Greater(t, firstOnPage2, 0)
	assert.Equal(t, Margin, w.draws[firstOnPage2].y)
}

func TestRenderWith_ParagraphContinuesOnNextPage(t *testing.T) {
	style := DefaultStyle()
	paragraph := strings.TrimSpace(strings.Repeat("word ", 1200))
	doc := types.NewDocument(types.Paragraph(paragraph))
	w := newRecordingWriter()

	_, err := RenderWith(doc, style, w)
	require.NoError(t, err)

	assert.Equal(t, 1, w.newPages)
	pages := map[int]int{}
	for _, d := range w.draws {
		pages[d.page]++
		assert.LessOrEqual(t, d.y+style.LineHeight(d.size), ContentBottom+1e-9)
	}
	assert.Positive(t, pages[1])
	assert.Positive(t, pages[2])
	assert.Equal(t, 1200, strings.Count(strings.Join(w.texts(), " "), "word"))
}

func TestRenderWith_HeadingMovesToNextPage(t *testing.T) {
	style := DefaultStyle()
	per := style.LineHeight(style.Layout.Sizes.Body) + style.Layout.Spacing.AfterText
	count := int((ContentBottom - Margin) / per)

	doc := types.NewDocument()
	for i := 0; i < count; i++ {
		doc.Append(types.TextLine("filler"))
	}
	doc.Append(types.Heading(2, "Education"))
	w := newRecordingWriter()

	_, err := RenderWith(doc, style, w)
	require.NoError(t, err)

	last := w.draws[len(w.draws)-1]
	assert.Equal(t, "Education", last.text)
	assert.Equal(t, 2, last.page)
	assert.Equal(t, Margin, last.y)
	assert.Equal(t, style.Fonts.Bold, last.face)
}

func TestRenderWith_ContactLineUsesContactSize(t *testing.T) {
	style := DefaultStyle()
	doc := types.NewDocument(
		types.Heading(1, "Jane Doe"),
		types.TextLine("jane@example.com"),
		types.TextLine("ordinary"),
	)
	w := newRecordingWriter()

	_, err := RenderWith(doc, style, w)
	require.NoError(t, err)
	require.Len(t, w.draws, 3)

	assert.Equal(t, style.Layout.Sizes.H1, w.draws[0].size)
	assert.Equal(t, style.Fonts.Bold, w.draws[0].face)
	assert.Equal(t, style.Layout.Sizes.Contact, w.draws[1].size)
	assert.Equal(t, style.Layout.Sizes.Body, w.draws[2].size)
	assert.Equal(t, style.Fonts.Body, w.draws[2].face)

	nameBottom := Margin + style.LineHeight(style.Layout.Sizes.H1)
	assert.InDelta(t, nameBottom+style.Layout.Spacing.AfterName, w.draws[1].y, 1e-9)
	contactBottom := w.draws[1].y + style.LineHeight(style.Layout.Sizes.Contact)
	assert.InDelta(t, contactBottom+style.Layout.Spacing.AfterContact, w.draws[2].y, 1e-9)
}

func TestRenderWith_SubtitleKeepsContactStyleForNextLine(t *testing.T) {
	style := DefaultStyle()
	doc := types.NewDocument(
		types.Heading(1, "Jane Doe"),
		types.SubtitleLine("Staff Engineer"),
		types.TextLine("jane@example.com | Berlin"),
		types.TextLine("github.com/janedoe"),
	)
	w := newRecordingWriter()

	_, err := RenderWith(doc, style, w)
	require.NoError(t, err)
	require.Len(t, w.draws, 4)

	assert.Equal(t, style.Layout.Sizes.Body, w.draws[1].size)
	assert.Equal(t, style.Layout.Sizes.Contact, w.draws[2].size)
	assert.Equal(t, style.Layout.Sizes.Body, w.draws[3].size)
}

// assertInsideMargins fails when any draw extends past the right margin
func assertInsideMargins(t *testing.T, w *recordingWriter) {
	t.Helper()
	for _, d := range w.draws {
		right := d.x + float64(len([]rune(d.text)))*d.size/2
		assert.LessOrEqual(t, right, PageWidth-Margin+1e-9, "draw %q ends at %.1f", d.text, right)
	}
}

func TestRenderWith_LongHeadingWraps(t *testing.T) {
	style := DefaultStyle()
	title := strings.Repeat("Very Long Role Title ", 40)
	doc := types.NewDocument(types.Heading(3, title), types.TextLine("after"))
	w := newRecordingWriter()

	_, err := RenderWith(doc, style, w)
	require.NoError(t, err)

	assertInsideMargins(t, w)
	require.Greater(t, len(w.draws), 2)
	last := w.draws[len(w.draws)-1]
	assert.Equal(t, "after", last.text)

	headingLines := len(w.draws) - 1
	lh := style.LineHeight(style.Layout.Sizes.H3)
	assert.InDelta(t, Margin+float64(headingLines)*lh+style.Layout.Spacing.AfterHeading, last.y, 1e-9)
	for _, d := range w.draws[:headingLines] {
		assert.Equal(t, style.Fonts.Bold, d.face)
	}
}

func TestRenderWith_OverwideTokensStayInsideMargins(t *testing.T) {
	token := strings.Repeat("https://example.com/very/long/path", 10)
	doc := types.NewDocument(
		types.Paragraph("see "+token),
		types.List([]string{token}),
	)
	w := newRecordingWriter()

	_, err := RenderWith(doc, DefaultStyle(), w)
	require.NoError(t, err)

	assertInsideMargins(t, w)
	var joined strings.Builder
	for _, d := range w.draws {
		if d.text != Bullet && d.text != "see" {
			joined.WriteString(d.text)
		}
	}
	assert.Equal(t, token+token, joined.String())
}

func TestRenderWith_LinkRegions(t *testing.T) {
	style := DefaultStyle()
	line := "jane@example.com | github.com/janedoe"
	doc := types.NewDocument(types.TextLine(line))
	w := newRecordingWriter()

	_, err := RenderWith(doc, style, w)
	require.NoError(t, err)
	require.Len(t, w.links, 2)

	size := style.Layout.Sizes.Body
	email := w.links[0]
	assert.Equal(t, "mailto:jane@example.com", email.target)
	assert.InDelta(t, Margin, email.x, 1e-9)
	assert.InDelta(t, float64(len("jane@example.com"))*size/2, email.w, 1e-9)
	assert.InDelta(t, style.LineHeight(size), email.h, 1e-9)
	assert.InDelta(t, Margin, email.y, 1e-9)

	site := w.links[1]
	assert.Equal(t, "https://github.com/janedoe", site.target)
	assert.InDelta(t, Margin+float64(len("jane@example.com | "))*size/2, site.x, 1e-9)
}

func TestRenderWith_SpacerDrawsNothing(t *testing.T) {
	style := DefaultStyle()
	doc := types.NewDocument(types.TextLine("a"), types.TextLine(""), types.SectionBreak(), types.TextLine("b"))
	w := newRecordingWriter()

	_, err := RenderWith(doc, style, w)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, w.texts())

	lh := style.LineHeight(style.Layout.Sizes.Body)
	after := style.Layout.Spacing.AfterText
	want := Margin + 2*(lh+after) + style.Layout.Spacing.SectionBreak
	assert.InDelta(t, want, w.draws[1].y, 1e-9)
}

func TestRenderWith_ListIndentsItems(t *testing.T) {
	style := DefaultStyle()
	doc := types.NewDocument(types.List([]string{"one", "two"}))
	w := newRecordingWriter()

	_, err := RenderWith(doc, style, w)
	require.NoError(t, err)
	require.Len(t, w.draws, 4)

	assert.Equal(t, Margin, w.draws[0].x)
	assert.Equal(t, Margin+style.Layout.BulletIndent, w.draws[1].x)
	assert.Equal(t, w.draws[0].y, w.draws[1].y)

	lh := style.LineHeight(style.Layout.Sizes.Body)
	assert.InDelta(t, w.draws[1].y+lh+style.Layout.Spacing.ListItemGap, w.draws[3].y, 1e-9)
}

func TestWrapWords(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) }

	assert.Equal(t, []string{"aaa bbb", "ccc"}, wrapWords("aaa bbb ccc", 7, measure))
	assert.Equal(t, []string{"toolo", "ngwor", "d x"}, wrapWords("toolongword x", 5, measure))
	assert.Equal(t, []string{"ab", "cdefg", "hij"}, wrapWords("ab cdefghij", 5, measure))
	assert.Equal(t, []string{"ü"}, wrapWords("ü", 0.5, measure))
	assert.Equal(t, []string{"a", "b"}, wrapWords("a\n\nb", 100, measure))
	assert.Empty(t, wrapWords("   ", 10, measure))
}
