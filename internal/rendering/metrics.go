package rendering

import (
	"github.com/jonathan/resume-pdf/internal/styles"
	"github.com/jung-kurt/gofpdf"
)

// Metrics measures strings using the width tables of the PDF core fonts.
// A Metrics value belongs to one goroutine.
type Metrics struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// NewMetrics returns a measuring instance independent of any output document
func NewMetrics() *Metrics {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	return &Metrics{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// Width returns the advance width of s in points
func (m *Metrics) Width(font styles.Font, size float64, s string) float64 {
	if s == "" {
		return 0
	}
	m.pdf.SetFont(font.Family, font.Style, size)
	return m.pdf.GetStringWidth(m.tr(s))
}
