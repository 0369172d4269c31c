// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/jonathan/resume-pdf/internal/types"
	"github.com/jonathan/resume-pdf/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// PrintValidation outputs every validation error grouped under one box
func (p *Printer) PrintValidation(result *validation.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if result.IsValid {
		sb.WriteString("Payload is valid\n")
	} else {
		sb.WriteString(fmt.Sprintf("Errors: %d\n\n", len(result.Errors)))
		for i, e := range result.Errors {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, e.Field))
			sb.WriteString(fmt.Sprintf("   %s: %s\n", e.Type, e.Message))
		}
	}

	p.printBox("VALIDATION RESULT", sb.String())
}

// PrintDocument outputs the element sequence of a document, counting by kind
func (p *Printer) PrintDocument(doc *types.Document) {
	if doc == nil {
		return
	}

	counts := map[types.ElementKind]int{}
	var sb strings.Builder
	sections := 0
	for _, el := range doc.Elements {
		counts[el.Kind]++
		if el.Kind == types.KindHeading && el.Level <= 2 {
			sections++
			sb.WriteString(fmt.Sprintf("  • %s\n", el.Text))
		}
	}

	header := fmt.Sprintf("Elements: %d (%d headings, %d lines, %d paragraphs, %d lists)\nSections: %d\n\n",
		doc.Len(), counts[types.KindHeading], counts[types.KindTextLine], counts[types.KindParagraph],
		counts[types.KindList], sections)

	p.printBox("DOCUMENT", header+sb.String())
}

// PrintRender outputs a render summary and warns when the résumé overflows one page
func (p *Printer) PrintRender(name string, style rendering.StyleConfig, out *rendering.Output) {
	if out == nil {
		return
	}

	var sb strings.Builder
	if name != "" {
		sb.WriteString(fmt.Sprintf("Input:    %s\n", name))
	}
	sb.WriteString(fmt.Sprintf("Style:    %s / %s\n", style.Profile, style.Density))
	sb.WriteString(fmt.Sprintf("Pages:    %d\n", out.PageCount))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes\n", len(out.Bytes)))
	if out.Overflows() {
		sb.WriteString("\n⚠️  Content overflows one page; try a tighter density\n")
	}

	p.printBox("RENDER SUMMARY", sb.String())
}

// PrintStyles outputs the registry's profiles and densities
func (p *Printer) PrintStyles(reg *rendering.Registry) {
	var sb strings.Builder
	sb.WriteString("Font profiles:\n")
	for _, name := range reg.Profiles() {
		style, err := reg.Lookup(name, "")
		if err != nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("  • %-6s %s\n", name, style.Fonts.Body.Family))
	}
	sb.WriteString("\nDensity presets:\n")
	densities := reg.Densities()
	for i, name := range densities {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(densities)-maxItemsToShow))
			break
		}
		style, err := reg.Lookup("", name)
		if err != nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("  • %-14s body %.1fpt\n", name, style.Layout.Sizes.Body))
	}

	p.printBox("STYLES", sb.String())
}
