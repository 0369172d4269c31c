package rendering

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
)

// documentDate is stamped on every PDF so identical input yields identical bytes
var documentDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDFWriter is a PageWriter backed by fpdf using the PDF core fonts.
// Text is translated to cp1252; characters outside it are degraded.
type PDFWriter struct {
	pdf        *fpdf.Fpdf
	translate  func(string) string
	fontSize   float64
	lineHeight float64
}

// NewPDFWriter returns a writer with one open US Letter page
func NewPDFWriter(title string) *PDFWriter {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: PageWidth, Ht: PageHeight},
	})
	pdf.SetMargins(Margin, Margin, Margin)
	pdf.SetAutoPageBreak(false, Margin)
	pdf.SetCellMargin(0)
	pdf.SetCreationDate(documentDate)
	pdf.SetModificationDate(documentDate)
	pdf.SetCatalogSort(true)
	pdf.SetCompression(true)
	pdf.SetProducer("resume-pdf", false)
	if title != "" {
		pdf.SetTitle(title, true)
	}

	w := &PDFWriter{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
	pdf.AddPage()
	return w
}

func (w *PDFWriter) NewPage() {
	w.pdf.AddPage()
}

func (w *PDFWriter) SetFont(face FontFace, size float64) {
	w.pdf.SetFont(face.Family, face.Style, size)
	w.fontSize = size
	w.lineHeight = size * LineHeightRatio
}

func (w *PDFWriter) DrawText(x, y float64, text string, maxWidth float64) float64 {
	w.pdf.SetXY(x, y)
	w.pdf.CellFormat(maxWidth, w.lineHeight, w.translate(text), "", 0, "L", false, 0, "")
	return y + w.lineHeight
}

func (w *PDFWriter) MeasureWidth(text string) float64 {
	return w.pdf.GetStringWidth(w.translate(text))
}

// SplitText wraps with wrapWords. fpdf's own SplitText indexes the core font
// width table by rune and panics on runes above 255.
func (w *PDFWriter) SplitText(text string, maxWidth float64) []string {
	return wrapWords(text, maxWidth, w.MeasureWidth)
}

func (w *PDFWriter) AddLinkRegion(x, y, width, height float64, target string) {
	w.pdf.LinkString(x, y, width, height, target)
}

func (w *PDFWriter) Finish() ([]byte, int, error) {
	if err := w.pdf.Error(); err != nil {
		return nil, 0, &RenderError{Message: "pdf writer failed", Cause: err}
	}
	pages := w.pdf.PageCount()
	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, 0, &RenderError{Message: "failed to serialize pdf", Cause: err}
	}
	return buf.Bytes(), pages, nil
}
