package rendering

import (
	"bytes"
	"time"

	"github.com/jonathan/resume-pdf/internal/styles"
	"github.com/jung-kurt/gofpdf"
)

// DefaultCreationDate is stamped into documents unless the caller sets one,
// so identical input yields identical bytes.
var DefaultCreationDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Metadata is written to the PDF info dictionary
type Metadata struct {
	Title        string
	Author       string
	Creator      string
	CreationDate time.Time
}

// Canvas draws on PDF pages using point units and a top-left origin
type Canvas struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// NewCanvas creates an empty document with the given page size in points
func NewCanvas(pageWidth, pageHeight float64, meta Metadata) *Canvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(true)
	pdf.SetCatalogSort(true)

	created := meta.CreationDate
	if created.IsZero() {
		created = DefaultCreationDate
	}
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)

	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}
	if meta.Creator != "" {
		pdf.SetCreator(meta.Creator, true)
	}

	return &Canvas{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// AddPage starts a new page
func (c *Canvas) AddPage() {
	c.pdf.AddPage()
}

// PageCount returns the number of pages added so far
func (c *Canvas) PageCount() int {
	return c.pdf.PageCount()
}

// Text draws s with its baseline at y
func (c *Canvas) Text(x, baseline float64, s string, font styles.Font, size float64, color styles.Color, underline bool) {
	style := font.Style
	if underline {
		style += "U"
	}
	c.pdf.SetFont(font.Family, style, size)
	c.pdf.SetTextColor(int(color.R), int(color.G), int(color.B))
	c.pdf.Text(x, baseline, c.tr(s))
}

// Link adds a clickable URL area
func (c *Canvas) Link(x, y, w, h float64, url string) {
	c.pdf.LinkString(x, y, w, h, url)
}

// Line strokes a straight line
func (c *Canvas) Line(x1, y1, x2, y2, width float64, color styles.Color) {
	c.pdf.SetLineWidth(width)
	c.pdf.SetDrawColor(int(color.R), int(color.G), int(color.B))
	c.pdf.Line(x1, y1, x2, y2)
}

// FillRect paints a solid rectangle
func (c *Canvas) FillRect(x, y, w, h float64, color styles.Color) {
	c.pdf.SetFillColor(int(color.R), int(color.G), int(color.B))
	c.pdf.Rect(x, y, w, h, "F")
}

// Image places an image file of the given format (png, jpg, gif), scaled to w x h
func (c *Canvas) Image(path, format string, x, y, w, h float64) {
	c.pdf.ImageOptions(path, x, y, w, h, false, gofpdf.ImageOptions{ImageType: format}, 0, "")
}

// Err returns the first error recorded by the PDF writer
func (c *Canvas) Err() error {
	return c.pdf.Error()
}

// Bytes serializes the document. The canvas must not be used afterwards.
func (c *Canvas) Bytes() ([]byte, error) {
	if c.pdf.PageCount() == 0 {
		c.pdf.AddPage()
	}
	if err := c.pdf.Error(); err != nil {
		return nil, &RenderError{Message: "pdf writer failed", Cause: err}
	}

	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to serialize pdf", Cause: err}
	}
	return buf.Bytes(), nil
}
