package types

import "fmt"

// ElementKind is the discriminator of the Element tagged union
type ElementKind string

const (
	KindHeading      ElementKind = "heading"
	KindParagraph    ElementKind = "paragraph"
	KindTextLine     ElementKind = "text_line"
	KindList         ElementKind = "list"
	KindSectionBreak ElementKind = "section_break"
)

// Element is one unit of the layout-neutral document model.
// Kind selects which of Level, Text and Items are meaningful:
//
//	heading:       Level (1-3), Text
//	paragraph:     Text
//	text_line:     Text
//	list:          Items
//	section_break: nothing
type Element struct {
	Index int         `json:"index"`
	Kind  ElementKind `json:"kind"`
	Level int         `json:"level,omitempty"`
	Text  string      `json:"text,omitempty"`
	Items []string    `json:"items,omitempty"`
	// Subtitle marks a text line that sits under the name, such as a job title
	Subtitle bool `json:"subtitle,omitempty"`
}

// Heading builds a heading element. Levels outside 1-3 are clamped.
func Heading(level int, text string) Element {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	return Element{Kind: KindHeading, Level: level, Text: text}
}

// Paragraph builds a wrapping paragraph element
func Paragraph(text string) Element {
	return Element{Kind: KindParagraph, Text: text}
}

// TextLine builds a single-line text element
func TextLine(text string) Element {
	return Element{Kind: KindTextLine, Text: text}
}

// SubtitleLine builds a text line drawn under the name at body size
func SubtitleLine(text string) Element {
	return Element{Kind: KindTextLine, Text: text, Subtitle: true}
}

// List builds a bulleted list element
func List(items []string) Element {
	return Element{Kind: KindList, Items: append([]string(nil), items...)}
}

// SectionBreak builds a vertical spacer element
func SectionBreak() Element {
	return Element{Kind: KindSectionBreak}
}

func (e Element) String() string {
	switch e.Kind {
	case KindHeading:
		return fmt.Sprintf("h%d(%q)", e.Level, e.Text)
	case KindParagraph:
		return fmt.Sprintf("p(%q)", e.Text)
	case KindTextLine:
		return fmt.Sprintf("line(%q)", e.Text)
	case KindList:
		return fmt.Sprintf("list(%d items)", len(e.Items))
	case KindSectionBreak:
		return "break"
	default:
		return fmt.Sprintf("unknown(%s)", e.Kind)
	}
}

// Document is an ordered sequence of elements. Element position is the sole
// source of render order; Append stamps each element with its position so the
// renderer can detect any later reordering.
type Document struct {
	Elements []Element `json:"elements"`
}

// NewDocument builds a document from elements in the given order
func NewDocument(elements ...Element) *Document {
	doc := &Document{Elements: make([]Element, 0, len(elements))}
	doc.Append(elements...)
	return doc
}

// Append adds elements to the end of the document
func (d *Document) Append(elements ...Element) {
	for _, el := range elements {
		el.Index = len(d.Elements)
		d.Elements = append(d.Elements, el)
	}
}

// Len returns the number of elements
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Elements)
}
