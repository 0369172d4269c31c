package rendering

import "strings"

// PageWriter is the drawing surface the renderer lays pages out on.
// The first page is open when the writer is constructed; NewPage is only
// called for page breaks. Coordinates are points from the top-left corner.
type PageWriter interface {
	NewPage()
	SetFont(face FontFace, size float64)
	// DrawText draws a single unwrapped line with its top at y and returns
	// the y position below it.
	DrawText(x, y float64, text string, maxWidth float64) float64
	MeasureWidth(text string) float64
	// SplitText breaks text into lines no wider than maxWidth
	SplitText(text string, maxWidth float64) []string
	// AddLinkRegion registers an invisible clickable area
	AddLinkRegion(x, y, w, h float64, target string)
	// Finish serializes the document and returns its bytes and page count
	Finish() ([]byte, int, error)
}

// wrapWords greedily packs words into lines no wider than maxWidth. A word
// wider than maxWidth is broken between runes. Explicit newlines always end
// a line.
func wrapWords(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		current := ""
		for _, word := range strings.Fields(para) {
			if current != "" {
				if candidate := current + " " + word; measure(candidate) <= maxWidth {
					current = candidate
					continue
				}
				lines = append(lines, current)
			}
			current = word
			if measure(word) > maxWidth {
				pieces := breakWord(word, maxWidth, measure)
				lines = append(lines, pieces[:len(pieces)-1]...)
				current = pieces[len(pieces)-1]
			}
		}
		if current != "" {
			lines = append(lines, current)
		}
	}
	return lines
}

// breakWord splits word into pieces no wider than maxWidth. Each piece holds
// at least one rune.
func breakWord(word string, maxWidth float64, measure func(string) float64) []string {
	var pieces []string
	var piece []rune
	for _, r := range word {
		if len(piece) > 0 && measure(string(append(piece, r))) > maxWidth {
			pieces = append(pieces, string(piece))
			piece = piece[:0]
		}
		piece = append(piece, r)
	}
	return append(pieces, string(piece))
}
