package layout

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-pdf/internal/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(opts...)
	require.NoError(t, err)
	return e
}

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	return writePNGNamed(t, "logo.png", w, h)
}

func writePNGNamed(t *testing.T, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestNew_Defaults(t *testing.T) {
	e := newEngine(t)
	assert.Equal(t, 1, e.Columns())
	assert.InDelta(t, 612-72, e.ContentWidth(), 0.0001)
	assert.InDelta(t, 612-72, e.ColumnWidth(), 0.0001)
}

func TestNew_RejectsBadOptions(t *testing.T) {
	_, err := New(WithColumns(3))
	assert.Error(t, err)

	_, err = New(WithMargins(UniformMargins(400)))
	assert.Error(t, err)

	_, err = New(WithColumnGap(-1))
	assert.Error(t, err)
}

func TestParsePageSize(t *testing.T) {
	size, err := ParsePageSize("A4")
	require.NoError(t, err)
	assert.Equal(t, A4, size)

	size, err = ParsePageSize("")
	require.NoError(t, err)
	assert.Equal(t, Letter, size)

	_, err = ParsePageSize("legal")
	assert.Error(t, err)
}

func TestTwoColumns_ColumnWidth(t *testing.T) {
	e := newEngine(t, WithColumns(2))
	want := (612 - 72 - DefaultColumnGap) / 2
	assert.InDelta(t, want, e.ColumnWidth(), 0.0001)
}

func TestElements_ReturnsCopy(t *testing.T) {
	e := newEngine(t)
	e.AddText("hello", styles.StyleNormal, 0)

	els := e.Elements()
	els[0] = PageBreak{}
	assert.Equal(t, KindText, e.Elements()[0].Kind())
	assert.Equal(t, 1, e.Len())
}

func TestAddText_CapturesStyleByValue(t *testing.T) {
	e := newEngine(t)
	e.AddText("before", styles.StyleNormal, 0)

	changed := e.Styles().Resolve(styles.StyleNormal)
	changed.FontSize = 30
	changed.Name = styles.StyleNormal
	require.NoError(t, e.Styles().Register(changed))
	e.AddText("after", styles.StyleNormal, 0)

	els := e.Elements()
	assert.Equal(t, 10.0, els[0].(TextBlock).Style.FontSize)
	assert.Equal(t, 30.0, els[1].(TextBlock).Style.FontSize)
}

func TestAddText_UnknownStyleFallsBackToNormal(t *testing.T) {
	e := newEngine(t)
	e.AddText("x", "no-such-style", -5)
	block := e.Elements()[0].(TextBlock)
	assert.Equal(t, styles.StyleNormal, block.Style.Name)
	assert.Equal(t, 0.0, block.SpaceAfter)
}

func TestWithRegistry_ClonesRegistry(t *testing.T) {
	reg := styles.NewRegistry()
	e := newEngine(t, WithRegistry(reg))

	spec := e.Styles().Resolve(styles.StyleBullet)
	spec.FontSize = 22
	require.NoError(t, e.Styles().Register(spec))

	assert.NotEqual(t, 22.0, reg.Resolve(styles.StyleBullet).FontSize)
}

func TestLayout_ExactFillMovesToRightColumnTop(t *testing.T) {
	e := newEngine(t, WithColumns(2))
	// Normal has 12pt leading and the Letter frame is 720pt tall
	for i := 0; i < 60; i++ {
		e.AddText("line", styles.StyleNormal, 0)
	}
	e.AddText("next", styles.StyleNormal, 0)

	doc, err := e.Layout()
	require.NoError(t, err)
	require.Len(t, doc.Placements, 61)

	last := doc.Placements[59]
	assert.Equal(t, 0, last.Column)
	assert.InDelta(t, 36+59*12, last.Y, 0.0001)

	next := doc.Placements[60]
	assert.Equal(t, 1, next.Page)
	assert.Equal(t, 1, next.Column)
	assert.InDelta(t, DefaultMargin, next.Y, 0.0001)
	assert.Len(t, doc.Pages, 1)
}

func TestLayout_RightColumnFullStartsNewPageLeft(t *testing.T) {
	e := newEngine(t, WithColumns(2))
	for i := 0; i < 120; i++ {
		e.AddText("line", styles.StyleNormal, 0)
	}
	e.AddText("overflow", styles.StyleNormal, 0)

	doc, err := e.Layout()
	require.NoError(t, err)

	p := doc.Placements[120]
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 0, p.Column)
	assert.InDelta(t, DefaultMargin, p.Y, 0.0001)
	assert.Len(t, doc.Pages, 2)
}

func TestLayout_SingleColumnOverflowStartsNewPage(t *testing.T) {
	e := newEngine(t)
	for i := 0; i < 61; i++ {
		e.AddText("line", styles.StyleNormal, 0)
	}

	doc, err := e.Layout()
	require.NoError(t, err)
	assert.Len(t, doc.Pages, 2)
	assert.Equal(t, 2, doc.Placements[60].Page)
	assert.InDelta(t, DefaultMargin, doc.Placements[60].Y, 0.0001)
}

func TestLayout_ParagraphSplitsAcrossColumns(t *testing.T) {
	e := newEngine(t, WithColumns(2))
	for i := 0; i < 59; i++ {
		e.AddText("line", styles.StyleNormal, 0)
	}
	e.AddText("one\ntwo\nthree", styles.StyleNormal, 0)

	doc, err := e.Layout()
	require.NoError(t, err)

	var cols []int
	for _, op := range doc.Pages[0].Ops {
		if txt, ok := op.(*TextOp); ok && txt.Element == 59 {
			cols = append(cols, txt.Column)
		}
	}
	assert.Equal(t, []int{0, 1, 1}, cols)
}

func TestLayout_ColumnBreak(t *testing.T) {
	e := newEngine(t, WithColumns(2))
	e.AddText("left", styles.StyleNormal, 0)
	e.AddColumnBreak()
	e.AddText("right", styles.StyleNormal, 0)
	e.AddColumnBreak()
	e.AddText("page two", styles.StyleNormal, 0)

	doc, err := e.Layout()
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Placements[2].Column)
	assert.InDelta(t, DefaultMargin, doc.Placements[2].Y, 0.0001)
	assert.Equal(t, 2, doc.Placements[4].Page)
	assert.Equal(t, 0, doc.Placements[4].Column)
}

func TestLayout_ColumnBreakSingleColumnIsPageBreak(t *testing.T) {
	e := newEngine(t)
	e.AddText("a", styles.StyleNormal, 0)
	e.AddColumnBreak()
	e.AddText("b", styles.StyleNormal, 0)

	doc, err := e.Layout()
	require.NoError(t, err)
	assert.Len(t, doc.Pages, 2)
	assert.Equal(t, 2, doc.Placements[2].Page)
}

func TestLayout_PageBreak(t *testing.T) {
	e := newEngine(t, WithColumns(2))
	e.AddText("a", styles.StyleNormal, 0)
	e.AddPageBreak()
	e.AddText("b", styles.StyleNormal, 0)

	doc, err := e.Layout()
	require.NoError(t, err)
	require.Len(t, doc.Pages, 2)
	assert.Equal(t, []string{"b"}, doc.Pages[1].TextLines())
}

func TestLayout_SelectColumnKeepsCursors(t *testing.T) {
	e := newEngine(t, WithColumns(2))
	e.AddText("left 1", styles.StyleNormal, 0)
	require.NoError(t, e.SelectColumn(1))
	e.AddText("right 1", styles.StyleNormal, 0)
	require.NoError(t, e.SelectColumn(0))
	e.AddText("left 2", styles.StyleNormal, 0)

	doc, err := e.Layout()
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Placements[2].Column)
	assert.InDelta(t, DefaultMargin, doc.Placements[2].Y, 0.0001)
	assert.Equal(t, 0, doc.Placements[4].Column)
	assert.InDelta(t, DefaultMargin+12, doc.Placements[4].Y, 0.0001)

	assert.Error(t, e.SelectColumn(2))
}

func TestLayout_SpaceBeforeDroppedAtColumnTop(t *testing.T) {
	e := newEngine(t)
	e.AddText("first", styles.StyleBodyText, 0)
	e.AddText("second", styles.StyleBodyText, 0)

	doc, err := e.Layout()
	require.NoError(t, err)
	body := e.Styles().Resolve(styles.StyleBodyText)

	assert.InDelta(t, DefaultMargin, doc.Placements[0].Y, 0.0001)
	assert.InDelta(t, DefaultMargin+body.LineHeight()+body.SpaceBefore, doc.Placements[1].Y, 0.0001)
}

func TestLayout_TextWrapsToColumnWidth(t *testing.T) {
	e := newEngine(t, WithColumns(2))
	e.AddText(strings.Repeat("experience ", 60), styles.StyleNormal, 0)

	doc, err := e.Layout()
	require.NoError(t, err)

	limit := e.ColumnWidth()
	for _, op := range doc.Pages[0].Ops {
		if txt, ok := op.(*TextOp); ok {
			left := DefaultMargin + float64(txt.Column)*(limit+DefaultColumnGap)
			assert.LessOrEqual(t, txt.X+txt.Width, left+limit+epsilon)
		}
	}
}

func TestHorizontalLine_DefaultsToColumnWidth(t *testing.T) {
	e := newEngine(t, WithColumns(2))
	require.NoError(t, e.AddHorizontalLine("", 1, 0, 5))
	require.NoError(t, e.AddHorizontalLine("#FF0000", 2, 10000, 0))
	require.NoError(t, e.AddHorizontalLine("#00FF00", 1, 100, 0))

	doc, err := e.Layout()
	require.NoError(t, err)

	var rules []*RuleOp
	for _, op := range doc.Pages[0].Ops {
		if r, ok := op.(*RuleOp); ok {
			rules = append(rules, r)
		}
	}
	require.Len(t, rules, 3)
	assert.InDelta(t, e.ColumnWidth(), rules[0].X2-rules[0].X1, 0.0001)
	assert.InDelta(t, e.ColumnWidth(), rules[1].X2-rules[1].X1, 0.0001)
	assert.Equal(t, styles.Red, rules[1].Color)
	assert.InDelta(t, 100, rules[2].X2-rules[2].X1, 0.0001)
	assert.InDelta(t, DefaultMargin+(e.ColumnWidth()-100)/2, rules[2].X1, 0.0001)
	assert.InDelta(t, DefaultMargin+1+5, doc.Placements[1].Y, 0.0001)
}

func TestHorizontalLine_InvalidColor(t *testing.T) {
	e := newEngine(t)
	err := e.AddHorizontalLine("gold", 1, 0, 0)

	var styleErr *styles.InvalidStyleError
	require.True(t, errors.As(err, &styleErr))
	assert.Equal(t, 0, e.Len())
}

func TestAddImage_Sizing(t *testing.T) {
	path := writePNG(t, 200, 100)

	tests := []struct {
		name          string
		width, height float64
		ratio         bool
		wantW, wantH  float64
	}{
		{name: "native", wantW: 200, wantH: 100},
		{name: "both", width: 50, height: 70, ratio: true, wantW: 50, wantH: 70},
		{name: "width with ratio", width: 100, ratio: true, wantW: 100, wantH: 50},
		{name: "height with ratio", height: 25, ratio: true, wantW: 50, wantH: 25},
		{name: "width without ratio", width: 80, wantW: 80, wantH: 80},
		{name: "height without ratio", height: 30, wantW: 30, wantH: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)
			require.NoError(t, e.AddImage(path, tt.width, tt.height, tt.ratio, styles.AlignCenter))
			img := e.Elements()[0].(Image)
			assert.InDelta(t, tt.wantW, img.Width, 0.0001)
			assert.InDelta(t, tt.wantH, img.Height, 0.0001)
		})
	}
}

func TestAddImage_MissingFile(t *testing.T) {
	e := newEngine(t)
	err := e.AddImage(filepath.Join(t.TempDir(), "missing.png"), 0, 0, true, styles.AlignCenter)

	var notFound *ResourceNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Contains(t, notFound.Path, "missing.png")
	assert.Equal(t, 0, e.Len())
}

func TestGenerate_ImageFormatComesFromContent(t *testing.T) {
	for _, name := range []string{"photo", "photo.jpg"} {
		t.Run(name, func(t *testing.T) {
			path := writePNGNamed(t, name, 10, 20)
			e := newEngine(t)
			require.NoError(t, e.AddImage(path, 0, 0, true, styles.AlignLeft))
			assert.Equal(t, "png", e.Elements()[0].(Image).Format)

			out, err := e.Generate()
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
		})
	}
}

// writeInterlacedPNGHeader writes a PNG signature and IHDR chunk only. The
// header is enough to probe the size, but the PDF writer rejects interlacing.
func writeInterlacedPNGHeader(t *testing.T) string {
	t.Helper()
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], 8)
	binary.BigEndian.PutUint32(ihdr[4:], 8)
	ihdr[8] = 8  // bit depth
	ihdr[9] = 2  // truecolor
	ihdr[12] = 1 // Adam7

	var buf bytes.Buffer
	buf.Write([]byte("\x89PNG\r\n\x1a\n"))
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))

	path := filepath.Join(t.TempDir(), "interlaced.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestGenerate_ImageWriterFailureCarriesElementIndex(t *testing.T) {
	e := newEngine(t)
	e.AddText("intro", styles.StyleNormal, 0)
	require.NoError(t, e.AddImage(writeInterlacedPNGHeader(t), 0, 0, true, styles.AlignLeft))

	_, err := e.Generate()
	var elErr *ElementError
	require.True(t, errors.As(err, &elErr), "got %v", err)
	assert.Equal(t, 1, elErr.Index)
	assert.Equal(t, string(KindImage), elErr.Kind)
}

func TestLayout_ImageAlignment(t *testing.T) {
	path := writePNG(t, 100, 40)
	e := newEngine(t)
	require.NoError(t, e.AddImage(path, 0, 0, true, styles.AlignCenter))
	require.NoError(t, e.AddImage(path, 0, 0, true, styles.AlignRight))

	doc, err := e.Layout()
	require.NoError(t, err)

	var imgs []*ImageOp
	for _, op := range doc.Pages[0].Ops {
		if i, ok := op.(*ImageOp); ok {
			imgs = append(imgs, i)
		}
	}
	require.Len(t, imgs, 2)
	assert.InDelta(t, DefaultMargin+(e.ColumnWidth()-100)/2, imgs[0].X, 0.0001)
	assert.InDelta(t, DefaultMargin+e.ColumnWidth()-100, imgs[1].X, 0.0001)
	assert.InDelta(t, DefaultMargin+40, imgs[1].Y, 0.0001)
}

func TestLayout_ImageTallerThanFrameOverflows(t *testing.T) {
	path := writePNG(t, 10, 10)
	e := newEngine(t)
	e.AddText("intro", styles.StyleNormal, 0)
	require.NoError(t, e.AddImage(path, 100, 800, false, styles.AlignLeft))

	_, err := e.Layout()
	var overflow *LayoutOverflowError
	require.True(t, errors.As(err, &overflow))
	assert.Equal(t, 1, overflow.Index)
	assert.Equal(t, string(KindImage), overflow.Kind)
}

func TestLayout_ImageWiderThanColumnOverflows(t *testing.T) {
	path := writePNG(t, 10, 10)
	e := newEngine(t, WithColumns(2))
	require.NoError(t, e.AddImage(path, 400, 100, false, styles.AlignLeft))

	_, err := e.Layout()
	var overflow *LayoutOverflowError
	require.True(t, errors.As(err, &overflow))
	assert.Equal(t, 0, overflow.Index)
}

func TestLayout_ImageMovesToNextRegionWhole(t *testing.T) {
	path := writePNG(t, 10, 10)
	e := newEngine(t)
	for i := 0; i < 55; i++ {
		e.AddText("line", styles.StyleNormal, 0)
	}
	require.NoError(t, e.AddImage(path, 100, 100, false, styles.AlignLeft))

	doc, err := e.Layout()
	require.NoError(t, err)
	p := doc.Placements[55]
	assert.Equal(t, 2, p.Page)
	assert.InDelta(t, DefaultMargin, p.Y, 0.0001)
}

func TestGenerate_IsIdempotent(t *testing.T) {
	build := func() []byte {
		e := newEngine(t, WithTitle("Jane Doe Resume"), WithAuthor("Jane Doe"), WithColumns(2))
		e.AddText("Jane Doe", styles.StyleName, DefaultSpaceAfter)
		e.AddText(Hyperlink("mailto:jane@example.com", "jane@example.com"), styles.StyleLink, 0)
		require.NoError(t, e.AddHorizontalLine("#000000", 1, 0, DefaultLineSpaceAfter))
		require.NoError(t, e.AddTable([][]string{{"Go", "SQL"}, {"Redis", ""}}, nil, nil))
		for i := 0; i < 80; i++ {
			e.AddText("Built reliable systems across many teams and time zones.", styles.StyleBullet, 2)
		}
		out, err := e.Generate()
		require.NoError(t, err)
		return out
	}

	first := build()
	second := build()
	assert.True(t, bytes.HasPrefix(first, []byte("%PDF-")))
	assert.True(t, bytes.Equal(first, second), "identical input must produce identical bytes")
}

func TestGenerate_EmptyStream(t *testing.T) {
	e := newEngine(t)
	out, err := e.Generate()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
