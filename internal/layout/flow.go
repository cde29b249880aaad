package layout

import "github.com/jonathan/resume-pdf/internal/styles"

// Placement records where an element started
type Placement struct {
	Element int
	Kind    Kind
	Page    int // 1-based
	Column  int
	Y       float64 // top of the element's first box, from the top edge
}

// Page is one laid-out page
type Page struct {
	Number int
	Ops    []Op
}

// Document is the paginated plan of an element stream
type Document struct {
	PageWidth  float64
	PageHeight float64
	Pages      []*Page
	Placements []Placement // one per element, in stream order
}

// TextLines returns the text of every line on a page, in paint order
func (p *Page) TextLines() []string {
	var out []string
	for _, op := range p.Ops {
		if t, ok := op.(*TextOp); ok {
			out = append(out, t.Text)
		}
	}
	return out
}

// geometry is the frame model shared by every page
type geometry struct {
	pageWidth, pageHeight    float64
	left, top, right, bottom float64
	columns                  int
	gap                      float64
}

func (g geometry) columnWidth() float64 {
	usable := g.pageWidth - g.left - g.right - g.gap*float64(g.columns-1)
	return usable / float64(g.columns)
}

func (g geometry) columnX(col int) float64 {
	return g.left + float64(col)*(g.columnWidth()+g.gap)
}

func (g geometry) frameTop() float64    { return g.top }
func (g geometry) frameBottom() float64 { return g.pageHeight - g.bottom }
func (g geometry) frameHeight() float64 { return g.frameBottom() - g.frameTop() }

// flow is the per-render document state: current page, current column and
// a vertical cursor per column
type flow struct {
	geo     geometry
	m       Measurer
	doc     *Document
	page    *Page
	column  int
	cursors []float64
	index   int
	kind    Kind
}

func newFlow(geo geometry, m Measurer) *flow {
	f := &flow{
		geo:     geo,
		m:       m,
		doc:     &Document{PageWidth: geo.pageWidth, PageHeight: geo.pageHeight},
		cursors: make([]float64, geo.columns),
	}
	f.newPage()
	return f
}

func (f *flow) newPage() {
	f.page = &Page{Number: len(f.doc.Pages) + 1}
	f.doc.Pages = append(f.doc.Pages, f.page)
	f.column = 0
	for i := range f.cursors {
		f.cursors[i] = f.geo.frameTop()
	}
}

// advance moves to the next region: the next column of this page, else the
// first column of a new page
func (f *flow) advance() {
	if f.column+1 < f.geo.columns {
		f.column++
		return
	}
	f.newPage()
}

func (f *flow) cursor() float64 { return f.cursors[f.column] }

func (f *flow) atTop() bool { return f.cursor() <= f.geo.frameTop()+epsilon }

func (f *flow) remaining() float64 { return f.geo.frameBottom() - f.cursor() }

func (f *flow) moveBy(dy float64) {
	y := f.cursors[f.column] + dy
	if y > f.geo.frameBottom() {
		y = f.geo.frameBottom()
	}
	f.cursors[f.column] = y
}

func (f *flow) overflow(msg string) error {
	return &LayoutOverflowError{Index: f.index, Kind: string(f.kind), Message: msg}
}

// reserve makes sure h points fit in the current region, advancing as many
// times as needed. A box taller than a fresh region is an overflow.
func (f *flow) reserve(h float64) error {
	if h > f.geo.frameHeight()+epsilon {
		return f.overflow("element is taller than the frame")
	}
	for h > f.remaining()+epsilon {
		f.advance()
	}
	return nil
}

func (f *flow) emit(op Op) {
	f.page.Ops = append(f.page.Ops, op)
}

func (f *flow) place(idx int, el Element) error {
	f.index = idx
	f.kind = el.Kind()
	placement := Placement{Element: idx, Kind: f.kind, Page: f.page.Number, Column: f.column, Y: f.cursor()}
	onPlaced := func() {
		placement = Placement{Element: idx, Kind: f.kind, Page: f.page.Number, Column: f.column, Y: f.cursor()}
	}

	var err error
	switch e := el.(type) {
	case TextBlock:
		err = f.text(e, onPlaced)
	case Table:
		err = f.table(e, onPlaced)
	case Image:
		err = f.image(e, onPlaced)
	case HorizontalLine:
		err = f.line(e, onPlaced)
	case PageBreak:
		f.newPage()
	case ColumnBreak:
		f.advance()
	case ColumnSelect:
		if e.Column >= 0 && e.Column < f.geo.columns {
			f.column = e.Column
		}
	}
	if err != nil {
		return err
	}
	f.doc.Placements = append(f.doc.Placements, placement)
	return nil
}

func (f *flow) text(b TextBlock, onPlaced func()) error {
	style := b.Style
	if style.SpaceBefore > 0 && !f.atTop() {
		f.moveBy(style.SpaceBefore)
	}

	w := newWrapper(f.m, style)
	words := tokenize(b.Runs, style.Uppercase)
	lineHeight := style.LineHeight()
	first := true

	for len(words) > 0 {
		if err := f.reserve(lineHeight); err != nil {
			return err
		}
		if first {
			onPlaced()
			first = false
		}
		width := f.geo.columnWidth() - style.LeftIndent
		lw, rest, ends, ok := w.nextLine(words, width)
		if !ok {
			return f.overflow("a single character is wider than the column")
		}
		line := w.build(lw, width, style.Alignment, ends)
		f.textLine(line, style, width, lineHeight)
		f.moveBy(lineHeight)
		words = rest
	}
	if first {
		onPlaced()
	}

	if style.BorderBottomWidth > 0 && !first {
		x := f.geo.columnX(f.column) + style.LeftIndent
		y := f.cursor() + style.BorderBottomWidth/2
		f.emit(&RuleOp{
			Element: f.index, X1: x, Y1: y, X2: x + f.geo.columnWidth() - style.LeftIndent, Y2: y,
			Thickness: style.BorderBottomWidth, Color: style.BorderBottomColor,
		})
		f.moveBy(style.BorderBottomWidth)
	}

	f.moveBy(style.SpaceAfter + b.SpaceAfter)
	return nil
}

func (f *flow) textLine(line Line, style styles.StyleSpec, width, lineHeight float64) {
	x := f.geo.columnX(f.column) + style.LeftIndent
	top := f.cursor()
	if style.HasBackground {
		f.emit(&RectOp{Element: f.index, X: x, Y: top, Width: width, Height: lineHeight, Color: style.Background})
	}
	baseline := top + lineHeight - 0.2*style.FontSize
	for _, seg := range line.Segments {
		f.emit(&TextOp{
			Element:   f.index,
			Column:    f.column,
			X:         x + seg.Offset,
			Y:         top,
			Width:     seg.Width,
			Height:    lineHeight,
			Baseline:  baseline,
			Text:      seg.Text,
			Href:      seg.Href,
			Font:      style.Font(),
			Size:      style.FontSize,
			Color:     style.TextColor,
			Underline: style.Underline,
		})
	}
}

func (f *flow) table(t Table, onPlaced func()) error {
	if len(t.Rows) == 0 {
		onPlaced()
		return nil
	}
	rt := resolveTable(t, f.geo.columnWidth())
	total := rt.totalWidth()
	if total > f.geo.columnWidth()+epsilon {
		return f.overflow("table is wider than the frame")
	}

	for r, row := range t.Rows {
		lr, err := rt.measureRow(row, r, f.m)
		if err != nil {
			return f.overflow("a single character is wider than its table cell")
		}
		if err := f.reserve(lr.height); err != nil {
			return err
		}
		if r == 0 {
			onPlaced()
		}
		f.tableRow(&rt, r, lr, total)
		f.moveBy(lr.height)
	}
	return nil
}

func (f *flow) tableRow(rt *resolvedTable, r int, lr laidRow, total float64) {
	x := f.geo.columnX(f.column) + (f.geo.columnWidth()-total)/2
	top := f.cursor()

	cx := x
	for c := 0; c < rt.cols; c++ {
		cs := rt.cells[r][c]
		cw := rt.widths[c]
		if cs.hasBackground {
			f.emit(&RectOp{Element: f.index, X: cx, Y: top, Width: cw, Height: lr.height, Color: cs.background})
		}
		lh := cs.size * 1.2
		font, err := styles.ParseFont(cs.font)
		if err != nil {
			font, _ = styles.ParseFont(defaultCellFont)
		}
		for i, line := range lr.cells[c] {
			lineTop := top + cs.padTop + float64(i)*lh
			for _, seg := range line.Segments {
				f.emit(&TextOp{
					Element:  f.index,
					Column:   f.column,
					X:        cx + defaultCellSidePad + seg.Offset,
					Y:        lineTop,
					Width:    seg.Width,
					Height:   lh,
					Baseline: lineTop + lh - 0.2*cs.size,
					Text:     seg.Text,
					Font:     font,
					Size:     cs.size,
					Color:    cs.color,
				})
			}
		}
		cx += cw
	}

	cx = x
	for c := 0; c < rt.cols; c++ {
		b := rt.borders[r][c]
		cw := rt.widths[c]
		bottom := top + lr.height
		if b.top > 0 {
			f.emit(&RuleOp{Element: f.index, X1: cx, Y1: top, X2: cx + cw, Y2: top, Thickness: b.top, Color: b.topColor})
		}
		if b.bottom > 0 {
			f.emit(&RuleOp{Element: f.index, X1: cx, Y1: bottom, X2: cx + cw, Y2: bottom, Thickness: b.bottom, Color: b.bottomColor})
		}
		if b.left > 0 {
			f.emit(&RuleOp{Element: f.index, X1: cx, Y1: top, X2: cx, Y2: bottom, Thickness: b.left, Color: b.leftColor})
		}
		if b.right > 0 {
			f.emit(&RuleOp{Element: f.index, X1: cx + cw, Y1: top, X2: cx + cw, Y2: bottom, Thickness: b.right, Color: b.rightColor})
		}
		cx += cw
	}
}

func (f *flow) image(img Image, onPlaced func()) error {
	if img.Width > f.geo.columnWidth()+epsilon {
		return f.overflow("image is wider than the frame")
	}
	if err := f.reserve(img.Height); err != nil {
		return err
	}
	onPlaced()

	x := f.geo.columnX(f.column)
	switch img.Alignment {
	case styles.AlignCenter:
		x += (f.geo.columnWidth() - img.Width) / 2
	case styles.AlignRight:
		x += f.geo.columnWidth() - img.Width
	}
	f.emit(&ImageOp{Element: f.index, Path: img.Path, Format: img.Format, X: x, Y: f.cursor(), Width: img.Width, Height: img.Height})
	f.moveBy(img.Height)
	return nil
}

func (f *flow) line(l HorizontalLine, onPlaced func()) error {
	if err := f.reserve(l.Thickness); err != nil {
		return err
	}
	onPlaced()

	width := l.Width
	if width <= 0 || width > f.geo.columnWidth() {
		width = f.geo.columnWidth()
	}
	x := f.geo.columnX(f.column) + (f.geo.columnWidth()-width)/2
	y := f.cursor() + l.Thickness/2
	f.emit(&RuleOp{Element: f.index, X1: x, Y1: y, X2: x + width, Y2: y, Thickness: l.Thickness, Color: l.Color})
	f.moveBy(l.Thickness)
	f.moveBy(l.SpaceAfter)
	return nil
}
