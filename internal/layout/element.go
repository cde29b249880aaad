package layout

import (
	"github.com/jonathan/resume-pdf/internal/styles"
)

// Kind identifies the variant of a document element
type Kind string

// Element kinds
const (
	KindText         Kind = "text"
	KindTable        Kind = "table"
	KindImage        Kind = "image"
	KindLine         Kind = "horizontal_line"
	KindPageBreak    Kind = "page_break"
	KindColumnBreak  Kind = "column_break"
	KindColumnSelect Kind = "column_select"
)

// Element is one entry of the document element stream
type Element interface {
	Kind() Kind
}

// Run is a span of text, optionally hyperlinked
type Run struct {
	Text string
	Href string
}

// TextBlock is a paragraph. Style is captured when the block is added, so
// later registry changes do not affect it.
type TextBlock struct {
	Runs       []Run
	Style      styles.StyleSpec
	SpaceAfter float64
}

// Table is a grid of plain-text cells
type Table struct {
	Rows         [][]string
	ColumnWidths []float64 // nil means an even split of the frame width
	Rules        []CellRule
}

// Image is a raster image with its final size already computed
type Image struct {
	Path      string
	Format    string // detected from the file content
	Width     float64
	Height    float64
	Alignment styles.Alignment
}

// HorizontalLine is a rule across the frame. Width 0 means the width of the
// column it lands in.
type HorizontalLine struct {
	Color      styles.Color
	Thickness  float64
	Width      float64
	SpaceAfter float64
}

// PageBreak forces a new page
type PageBreak struct{}

// ColumnBreak forces the next column, or a new page after the last column
type ColumnBreak struct{}

// ColumnSelect moves the flow to a specific column of the current page,
// continuing at that column's cursor.
type ColumnSelect struct {
	Column int
}

// Kind implements Element
func (TextBlock) Kind() Kind { return KindText }

// Kind implements Element
func (Table) Kind() Kind { return KindTable }

// Kind implements Element
func (Image) Kind() Kind { return KindImage }

// Kind implements Element
func (HorizontalLine) Kind() Kind { return KindLine }

// Kind implements Element
func (PageBreak) Kind() Kind { return KindPageBreak }

// Kind implements Element
func (ColumnBreak) Kind() Kind { return KindColumnBreak }

// Kind implements Element
func (ColumnSelect) Kind() Kind { return KindColumnSelect }

// PlainText returns the concatenated text of the block
func (b TextBlock) PlainText() string {
	n := 0
	for _, r := range b.Runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range b.Runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}

// Links returns the hrefs of the block's linked runs, in order
func (b TextBlock) Links() []string {
	var links []string
	for _, r := range b.Runs {
		if r.Href != "" {
			links = append(links, r.Href)
		}
	}
	return links
}
