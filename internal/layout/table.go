package layout

import (
	"github.com/jonathan/resume-pdf/internal/styles"
)

// TableOp is a table style command
type TableOp string

// Table style commands
const (
	OpBackground    TableOp = "BACKGROUND"
	OpTextColor     TableOp = "TEXTCOLOR"
	OpAlign         TableOp = "ALIGN"
	OpFontName      TableOp = "FONTNAME"
	OpFontSize      TableOp = "FONTSIZE"
	OpTopPadding    TableOp = "TOPPADDING"
	OpBottomPadding TableOp = "BOTTOMPADDING"
	OpGrid          TableOp = "GRID"
	OpBox           TableOp = "BOX"
	OpLineBelow     TableOp = "LINEBELOW"
)

// Cell addresses a table cell as (column, row). Negative values count from
// the end, so (-1, -1) is the bottom-right cell.
type Cell struct {
	Col, Row int
}

// CellRule applies one style command to the rectangular cell range From..To
type CellRule struct {
	Op      TableOp
	From    Cell
	To      Cell
	Color   styles.Color
	Font    string
	Size    float64
	Align   styles.Alignment
	Padding float64
	Width   float64 // line width for GRID, BOX and LINEBELOW
}

// Default cell metrics
const (
	defaultCellFont      = "Helvetica"
	defaultCellFontSize  = 10
	defaultCellPadding   = 3
	defaultCellSidePad   = 6
	defaultTableFontSize = 12
)

// DefaultTableRules returns the style used when a table is added without
// rules: highlighted header row, beige body, full grid, centered cells.
func DefaultTableRules() []CellRule {
	all := [2]Cell{{0, 0}, {-1, -1}}
	header := [2]Cell{{0, 0}, {-1, 0}}
	body := [2]Cell{{0, 1}, {-1, -1}}
	return []CellRule{
		{Op: OpBackground, From: header[0], To: header[1], Color: styles.Gray},
		{Op: OpTextColor, From: header[0], To: header[1], Color: styles.WhiteSmoke},
		{Op: OpAlign, From: all[0], To: all[1], Align: styles.AlignCenter},
		{Op: OpFontName, From: header[0], To: header[1], Font: "Helvetica-Bold"},
		{Op: OpFontSize, From: header[0], To: header[1], Size: defaultTableFontSize},
		{Op: OpBottomPadding, From: header[0], To: header[1], Padding: 12},
		{Op: OpBackground, From: body[0], To: body[1], Color: styles.Beige},
		{Op: OpGrid, From: all[0], To: all[1], Width: 1, Color: styles.Black},
	}
}

type cellStyle struct {
	font          string
	size          float64
	color         styles.Color
	background    styles.Color
	hasBackground bool
	align         styles.Alignment
	padTop        float64
	padBottom     float64
}

type edges struct {
	top, bottom, left, right float64
	topColor, bottomColor    styles.Color
	leftColor, rightColor    styles.Color
}

// resolvedTable holds per-cell styles after applying every rule in order
type resolvedTable struct {
	rows    int
	cols    int
	widths  []float64
	cells   [][]cellStyle
	borders [][]edges
}

func normalizeIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func columnCount(rows [][]string) int {
	n := 0
	for _, r := range rows {
		if len(r) > n {
			n = len(r)
		}
	}
	return n
}

func resolveTable(t Table, frameWidth float64) resolvedTable {
	rows := len(t.Rows)
	cols := columnCount(t.Rows)
	rt := resolvedTable{rows: rows, cols: cols}

	rt.widths = make([]float64, cols)
	for c := 0; c < cols; c++ {
		if c < len(t.ColumnWidths) && t.ColumnWidths[c] > 0 {
			rt.widths[c] = t.ColumnWidths[c]
		} else {
			rt.widths[c] = frameWidth / float64(cols)
		}
	}

	rt.cells = make([][]cellStyle, rows)
	rt.borders = make([][]edges, rows)
	for r := 0; r < rows; r++ {
		rt.cells[r] = make([]cellStyle, cols)
		rt.borders[r] = make([]edges, cols)
		for c := 0; c < cols; c++ {
			rt.cells[r][c] = cellStyle{
				font:      defaultCellFont,
				size:      defaultCellFontSize,
				color:     styles.Black,
				padTop:    defaultCellPadding,
				padBottom: defaultCellPadding,
			}
		}
	}

	for _, rule := range t.Rules {
		if rows == 0 || cols == 0 {
			break
		}
		c0, c1 := normalizeIndex(rule.From.Col, cols), normalizeIndex(rule.To.Col, cols)
		r0, r1 := normalizeIndex(rule.From.Row, rows), normalizeIndex(rule.To.Row, rows)
		if c0 > c1 {
			c0, c1 = c1, c0
		}
		if r0 > r1 {
			r0, r1 = r1, r0
		}
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				rt.apply(rule, r, c, r0, r1, c0, c1)
			}
		}
	}
	return rt
}

func (rt *resolvedTable) apply(rule CellRule, r, c, r0, r1, c0, c1 int) {
	cs := &rt.cells[r][c]
	b := &rt.borders[r][c]
	switch rule.Op {
	case OpBackground:
		cs.background = rule.Color
		cs.hasBackground = true
	case OpTextColor:
		cs.color = rule.Color
	case OpAlign:
		cs.align = rule.Align
	case OpFontName:
		if _, err := styles.ParseFont(rule.Font); err == nil {
			cs.font = rule.Font
		}
	case OpFontSize:
		if rule.Size > 0 {
			cs.size = rule.Size
		}
	case OpTopPadding:
		cs.padTop = rule.Padding
	case OpBottomPadding:
		cs.padBottom = rule.Padding
	case OpGrid:
		b.top, b.bottom, b.left, b.right = rule.Width, rule.Width, rule.Width, rule.Width
		b.topColor, b.bottomColor, b.leftColor, b.rightColor = rule.Color, rule.Color, rule.Color, rule.Color
	case OpBox:
		if r == r0 {
			b.top, b.topColor = rule.Width, rule.Color
		}
		if r == r1 {
			b.bottom, b.bottomColor = rule.Width, rule.Color
		}
		if c == c0 {
			b.left, b.leftColor = rule.Width, rule.Color
		}
		if c == c1 {
			b.right, b.rightColor = rule.Width, rule.Color
		}
	case OpLineBelow:
		b.bottom, b.bottomColor = rule.Width, rule.Color
	}
}

func (rt *resolvedTable) totalWidth() float64 {
	sum := 0.0
	for _, w := range rt.widths {
		sum += w
	}
	return sum
}

// cellBlock turns a cell into a text block for wrapping
func (rt *resolvedTable) cellBlock(text string, r, c int) TextBlock {
	cs := rt.cells[r][c]
	return TextBlock{
		Runs: []Run{{Text: text}},
		Style: styles.StyleSpec{
			Name:      "table_cell",
			FontName:  cs.font,
			FontSize:  cs.size,
			TextColor: cs.color,
			Alignment: cs.align,
		},
	}
}

type laidRow struct {
	height float64
	cells  [][]Line
}

// measureRow wraps every cell of row r and returns the row height
func (rt *resolvedTable) measureRow(row []string, r int, m Measurer) (laidRow, error) {
	lr := laidRow{cells: make([][]Line, rt.cols)}
	for c := 0; c < rt.cols; c++ {
		text := ""
		if c < len(row) {
			text = row[c]
		}
		cs := rt.cells[r][c]
		block := rt.cellBlock(text, r, c)
		lines, err := Wrap(block, rt.widths[c]-2*defaultCellSidePad, m)
		if err != nil {
			return laidRow{}, err
		}
		lr.cells[c] = lines
		n := len(lines)
		if n == 0 {
			n = 1
		}
		h := cs.padTop + float64(n)*block.Style.LineHeight() + cs.padBottom
		if h > lr.height {
			lr.height = h
		}
	}
	return lr, nil
}
