package rendering

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-pdf/internal/types"
)

// Bullet is drawn in the list gutter before each item
const Bullet = "•"

// Output is the result of a render
type Output struct {
	Bytes     []byte
	PageCount int
}

// Overflows reports whether the document needed more than one page
func (o *Output) Overflows() bool {
	return o.PageCount > 1
}

// Render lays the document out with the given style and returns PDF bytes
func Render(doc *types.Document, style StyleConfig) (*Output, error) {
	return RenderWith(doc, style, NewPDFWriter(documentTitle(doc)))
}

// RenderWith lays the document out on w. The element order is checked
// before anything is drawn.
func RenderWith(doc *types.Document, style StyleConfig, w PageWriter) (*Output, error) {
	if doc == nil {
		return nil, &RenderError{Message: "document is nil"}
	}
	if err := CheckOrder(doc); err != nil {
		return nil, err
	}

	r := &renderer{w: w, style: style, y: Margin}
	r.w.SetFont(style.Fonts.Body, style.Layout.Sizes.Body)
	for _, el := range doc.Elements {
		r.element(el)
	}

	data, pages, err := w.Finish()
	if err != nil {
		return nil, err
	}
	return &Output{Bytes: data, PageCount: pages}, nil
}

// CheckOrder verifies element indices are strictly increasing
func CheckOrder(doc *types.Document) error {
	for i := 1; i < len(doc.Elements); i++ {
		prev, cur := doc.Elements[i-1].Index, doc.Elements[i].Index
		if cur <= prev {
			return fmt.Errorf("%w: element at position %d has index %d after %d", ErrATSInvariant, i, cur, prev)
		}
	}
	return nil
}

func documentTitle(doc *types.Document) string {
	if doc == nil {
		return ""
	}
	for _, el := range doc.Elements {
		if el.Kind == types.KindHeading && el.Level == 1 {
			return el.Text
		}
	}
	return ""
}

// renderer holds the state of one render call
type renderer struct {
	w     PageWriter
	style StyleConfig
	y     float64
	// contactNext marks the next non-subtitle text line as the contact line
	contactNext bool
}

func (r *renderer) element(el types.Element) {
	switch el.Kind {
	case types.KindHeading:
		r.heading(el)
	case types.KindParagraph:
		r.paragraph(el.Text)
	case types.KindTextLine:
		r.textLine(el)
	case types.KindList:
		r.list(el.Items)
	case types.KindSectionBreak:
		r.y += r.style.Layout.Spacing.SectionBreak
	}
}

// ensure starts a new page when less than need remains above the bottom margin.
// A fresh page is never broken again.
func (r *renderer) ensure(need float64) {
	if r.y+need <= ContentBottom || r.y <= Margin {
		return
	}
	r.w.NewPage()
	r.y = Margin
}

func (r *renderer) bodySize() float64 {
	return r.style.Layout.Sizes.Body
}

func (r *renderer) heading(el types.Element) {
	size := r.style.HeadingSize(el.Level)
	lh := r.style.LineHeight(size)
	r.ensure(lh)

	r.w.SetFont(r.style.Fonts.Bold, size)
	lines := r.w.SplitText(el.Text, ContentWidth)
	if len(lines) == 0 {
		lines = []string{el.Text}
	}
	for i, line := range lines {
		if i > 0 {
			r.ensure(lh)
		}
		r.y = r.w.DrawText(Margin, r.y, line, ContentWidth)
	}
	r.w.SetFont(r.style.Fonts.Body, r.bodySize())

	if el.Level == 1 {
		r.y += r.style.Layout.Spacing.AfterName
		r.contactNext = true
		return
	}
	r.y += r.style.Layout.Spacing.AfterHeading
}

func (r *renderer) paragraph(text string) {
	lh := r.style.LineHeight(r.bodySize())
	lines := r.w.SplitText(text, ContentWidth)
	if len(lines) == 0 {
		return
	}

	r.ensure(math.Min(r.style.Layout.ParagraphMinLines, float64(len(lines))) * lh)
	for i, line := range lines {
		if i > 0 {
			r.ensure(lh)
		}
		r.y = r.w.DrawText(Margin, r.y, line, ContentWidth)
	}
	r.y += r.style.Layout.Spacing.AfterParagraph
}

func (r *renderer) textLine(el types.Element) {
	text := el.Text
	// A subtitle under the name leaves the flag for the contact line after it.
	contact := r.contactNext && !el.Subtitle
	if !el.Subtitle {
		r.contactNext = false
	}

	size, after := r.bodySize(), r.style.Layout.Spacing.AfterText
	if contact {
		size, after = r.style.Layout.Sizes.Contact, r.style.Layout.Spacing.AfterContact
	}
	lh := r.style.LineHeight(size)
	r.ensure(lh)

	if text == "" {
		r.y += lh + after
		return
	}

	if contact {
		r.w.SetFont(r.style.Fonts.Body, size)
	}
	top := r.y
	r.y = r.w.DrawText(Margin, top, text, ContentWidth)
	for _, link := range FindLinks(text) {
		x := Margin + r.w.MeasureWidth(text[:link.Start])
		r.w.AddLinkRegion(x, top, r.w.MeasureWidth(link.Text), lh, link.Target)
	}
	if contact {
		r.w.SetFont(r.style.Fonts.Body, r.bodySize())
	}
	r.y += after
}

func (r *renderer) list(items []string) {
	if len(items) == 0 {
		return
	}
	layout := r.style.Layout
	lh := r.style.LineHeight(r.bodySize())
	textX := Margin + layout.BulletIndent
	textWidth := ContentWidth - layout.BulletIndent

	for i, item := range items {
		if i > 0 {
			r.y += layout.Spacing.ListItemGap
		}
		lines := r.w.SplitText(item, textWidth)
		if len(lines) == 0 {
			continue
		}

		r.ensure(math.Min(layout.ListItemMinLines, float64(len(lines))) * lh)
		r.w.DrawText(Margin, r.y, Bullet, layout.BulletIndent)
		for j, line := range lines {
			if j > 0 {
				r.ensure(lh)
			}
			r.y = r.w.DrawText(textX, r.y, line, textWidth)
		}
	}
	r.y += layout.Spacing.AfterList
}
