package layout

import (
	"errors"
	"testing"

	"github.com/jonathan/resume-pdf/internal/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTable_DefaultRules(t *testing.T) {
	rt := resolveTable(Table{
		Rows:  [][]string{{"Skill", "Level"}, {"Go", "Expert"}, {"SQL", "Advanced"}},
		Rules: DefaultTableRules(),
	}, 300)

	require.Equal(t, 3, rt.rows)
	require.Equal(t, 2, rt.cols)
	assert.Equal(t, []float64{150, 150}, rt.widths)

	header := rt.cells[0][1]
	assert.Equal(t, "Helvetica-Bold", header.font)
	assert.Equal(t, 12.0, header.size)
	assert.Equal(t, styles.WhiteSmoke, header.color)
	assert.Equal(t, styles.Gray, header.background)
	assert.Equal(t, 12.0, header.padBottom)

	body := rt.cells[2][0]
	assert.Equal(t, "Helvetica", body.font)
	assert.Equal(t, 10.0, body.size)
	assert.Equal(t, styles.Beige, body.background)
	assert.Equal(t, styles.AlignCenter, body.align)

	for r := 0; r < 3; r++ {
		for c := 0; c < 2; c++ {
			b := rt.borders[r][c]
			assert.Equal(t, 1.0, b.top)
			assert.Equal(t, 1.0, b.left)
		}
	}
}

func TestResolveTable_NegativeIndicesAndBox(t *testing.T) {
	rt := resolveTable(Table{
		Rows:         [][]string{{"a", "b", "c"}, {"d", "e", "f"}},
		ColumnWidths: []float64{50, 0, 70},
		Rules: []CellRule{
			{Op: OpBox, From: Cell{0, 0}, To: Cell{-1, -1}, Width: 2, Color: styles.Navy},
			{Op: OpLineBelow, From: Cell{0, 0}, To: Cell{-1, 0}, Width: 0.5, Color: styles.Gray},
			{Op: OpTextColor, From: Cell{-1, -1}, To: Cell{-1, -1}, Color: styles.Red},
		},
	}, 300)

	assert.Equal(t, []float64{50, 100, 70}, rt.widths)
	assert.Equal(t, styles.Red, rt.cells[1][2].color)
	assert.Equal(t, styles.Black, rt.cells[1][1].color)

	assert.Equal(t, 2.0, rt.borders[0][0].top)
	assert.Equal(t, 2.0, rt.borders[0][0].left)
	assert.Equal(t, 0.0, rt.borders[0][1].left)
	assert.Equal(t, 0.5, rt.borders[0][1].bottom)
	assert.Equal(t, 2.0, rt.borders[1][2].right)
	assert.Equal(t, 2.0, rt.borders[1][2].bottom)
	assert.Equal(t, 0.0, rt.borders[1][1].top)
}

func TestLayout_TableCenteredAndPadded(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.AddTable([][]string{{"Go", "SQL", ""}}, []float64{100, 100, 100}, []CellRule{}))

	doc, err := e.Layout()
	require.NoError(t, err)

	var texts []*TextOp
	for _, op := range doc.Pages[0].Ops {
		if txt, ok := op.(*TextOp); ok {
			texts = append(texts, txt)
		}
	}
	require.Len(t, texts, 2)
	left := DefaultMargin + (e.ColumnWidth()-300)/2
	assert.InDelta(t, left+defaultCellSidePad, texts[0].X, 0.0001)
	assert.InDelta(t, DefaultMargin+defaultCellPadding, texts[0].Y, 0.0001)
	assert.Equal(t, "SQL", texts[1].Text)
}

func TestLayout_TableSplitsBetweenRows(t *testing.T) {
	rows := make([][]string, 0, 60)
	for i := 0; i < 60; i++ {
		rows = append(rows, []string{"cell", "cell"})
	}
	e := newEngine(t)
	require.NoError(t, e.AddTable(rows, nil, []CellRule{}))

	doc, err := e.Layout()
	require.NoError(t, err)
	require.Len(t, doc.Pages, 2)

	// each row is 3 + 12 + 3 = 18pt, so 40 rows fill the 720pt frame
	var first, second int
	for _, op := range doc.Pages[0].Ops {
		if _, ok := op.(*TextOp); ok {
			first++
		}
	}
	for _, op := range doc.Pages[1].Ops {
		if _, ok := op.(*TextOp); ok {
			second++
		}
	}
	assert.Equal(t, 80, first)
	assert.Equal(t, 40, second)
}

func TestLayout_TableWiderThanFrameOverflows(t *testing.T) {
	e := newEngine(t)
	e.AddText("intro", styles.StyleNormal, 0)
	require.NoError(t, e.AddTable([][]string{{"a", "b"}}, []float64{400, 400}, nil))

	_, err := e.Layout()
	var overflow *LayoutOverflowError
	require.True(t, errors.As(err, &overflow))
	assert.Equal(t, 1, overflow.Index)
	assert.Equal(t, string(KindTable), overflow.Kind)
}

func TestAddTable_RejectsNegativeWidth(t *testing.T) {
	e := newEngine(t)
	err := e.AddTable([][]string{{"a"}}, []float64{-1}, nil)

	var elErr *ElementError
	require.True(t, errors.As(err, &elErr))
	assert.Equal(t, 0, elErr.Index)
	assert.Equal(t, 0, e.Len())
}

func TestAddTable_CopiesRows(t *testing.T) {
	e := newEngine(t)
	rows := [][]string{{"a", "b"}}
	require.NoError(t, e.AddTable(rows, nil, nil))
	rows[0][0] = "changed"

	tbl := e.Elements()[0].(Table)
	assert.Equal(t, "a", tbl.Rows[0][0])
	assert.Len(t, tbl.Rules, len(DefaultTableRules()))
}
