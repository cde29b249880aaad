package layout

import (
	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/jonathan/resume-pdf/internal/styles"
)

// Op is one paint operation on a page. Coordinates are points from the
// top-left corner of the page.
type Op interface {
	ElementIndex() int
	paint(c *rendering.Canvas)
}

// TextOp draws one horizontally positioned text segment
type TextOp struct {
	Element   int
	Column    int
	X, Y      float64 // Y is the top of the line box
	Width     float64
	Height    float64
	Baseline  float64
	Text      string
	Href      string
	Font      styles.Font
	Size      float64
	Color     styles.Color
	Underline bool
}

// RuleOp strokes a straight line
type RuleOp struct {
	Element        int
	X1, Y1, X2, Y2 float64
	Thickness      float64
	Color          styles.Color
}

// RectOp fills a rectangle
type RectOp struct {
	Element       int
	X, Y          float64
	Width, Height float64
	Color         styles.Color
}

// ImageOp places an image file
type ImageOp struct {
	Element       int
	Path          string
	Format        string
	X, Y          float64
	Width, Height float64
}

// ElementIndex implements Op
func (o *TextOp) ElementIndex() int { return o.Element }

// ElementIndex implements Op
func (o *RuleOp) ElementIndex() int { return o.Element }

// ElementIndex implements Op
func (o *RectOp) ElementIndex() int { return o.Element }

// ElementIndex implements Op
func (o *ImageOp) ElementIndex() int { return o.Element }

func (o *TextOp) paint(c *rendering.Canvas) {
	c.Text(o.X, o.Baseline, o.Text, o.Font, o.Size, o.Color, o.Underline)
	if o.Href != "" {
		c.Link(o.X, o.Y, o.Width, o.Height, o.Href)
	}
}

func (o *RuleOp) paint(c *rendering.Canvas) {
	c.Line(o.X1, o.Y1, o.X2, o.Y2, o.Thickness, o.Color)
}

func (o *RectOp) paint(c *rendering.Canvas) {
	c.FillRect(o.X, o.Y, o.Width, o.Height, o.Color)
}

func (o *ImageOp) paint(c *rendering.Canvas) {
	c.Image(o.Path, o.Format, o.X, o.Y, o.Width, o.Height)
}

// Render paints the document onto a fresh canvas and serializes it
func (d *Document) Render(meta rendering.Metadata) ([]byte, error) {
	canvas := rendering.NewCanvas(d.PageWidth, d.PageHeight, meta)
	for _, p := range d.Pages {
		canvas.AddPage()
		for _, op := range p.Ops {
			op.paint(canvas)
			if err := canvas.Err(); err != nil {
				return nil, d.paintError(op.ElementIndex(), err)
			}
		}
	}
	return canvas.Bytes()
}

func (d *Document) paintError(index int, cause error) error {
	kind := ""
	if index >= 0 && index < len(d.Placements) {
		kind = string(d.Placements[index].Kind)
	}
	return &ElementError{Index: index, Kind: kind, Cause: cause}
}
