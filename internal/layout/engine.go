package layout

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/jonathan/resume-pdf/internal/styles"
)

// Inch is the number of points per inch
const Inch = 72.0

// Layout defaults
const (
	DefaultMargin     = 0.5 * Inch
	DefaultColumnGap  = 0.2 * Inch
	DefaultSpaceAfter = 0.1 * Inch
	// DefaultLineSpaceAfter is the gap left below a horizontal line
	DefaultLineSpaceAfter = 0.2 * Inch
	// DefaultCreator is written to the PDF info dictionary
	DefaultCreator = "resume-pdf"
)

// PageSize is a page size in points
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

// Supported page sizes
var (
	Letter = PageSize{Name: "letter", Width: 612, Height: 792}
	A4     = PageSize{Name: "a4", Width: 595.28, Height: 841.89}
)

// ParsePageSize maps a case-insensitive name to a page size
func ParsePageSize(name string) (PageSize, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "letter":
		return Letter, nil
	case "a4":
		return A4, nil
	default:
		return PageSize{}, fmt.Errorf("unknown page size %q (expected letter or a4)", name)
	}
}

// Margins are the page margins in points
type Margins struct {
	Left, Top, Right, Bottom float64
}

// UniformMargins returns equal margins on every side
func UniformMargins(m float64) Margins {
	return Margins{Left: m, Top: m, Right: m, Bottom: m}
}

// Engine accumulates the element stream of one document and lays it out.
// An Engine is not safe for concurrent use.
type Engine struct {
	pageSize  PageSize
	margins   Margins
	columns   int
	columnGap float64
	meta      rendering.Metadata
	registry  *styles.Registry
	measurer  Measurer
	logger    *zap.Logger
	elements  []Element
}

// Option configures an Engine
type Option func(*Engine)

// WithPageSize sets the page size
func WithPageSize(size PageSize) Option {
	return func(e *Engine) { e.pageSize = size }
}

// WithMargins sets the page margins
func WithMargins(m Margins) Option {
	return func(e *Engine) { e.margins = m }
}

// WithColumns sets the column count, 1 or 2
func WithColumns(n int) Option {
	return func(e *Engine) { e.columns = n }
}

// WithColumnGap sets the horizontal gap between columns
func WithColumnGap(gap float64) Option {
	return func(e *Engine) { e.columnGap = gap }
}

// WithTitle sets the document title metadata
func WithTitle(title string) Option {
	return func(e *Engine) { e.meta.Title = title }
}

// WithAuthor sets the document author metadata
func WithAuthor(author string) Option {
	return func(e *Engine) { e.meta.Author = author }
}

// WithCreationDate overrides the creation date stamped into the PDF
func WithCreationDate(t time.Time) Option {
	return func(e *Engine) { e.meta.CreationDate = t }
}

// WithRegistry uses a copy of the given style registry
func WithRegistry(r *styles.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r.Clone()
		}
	}
}

// WithMeasurer replaces the font metrics used for wrapping
func WithMeasurer(m Measurer) Option {
	return func(e *Engine) { e.measurer = m }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine with an empty element stream
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		pageSize:  Letter,
		margins:   UniformMargins(DefaultMargin),
		columns:   1,
		columnGap: DefaultColumnGap,
		meta:      rendering.Metadata{Creator: DefaultCreator},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = styles.NewRegistry()
	}
	if e.measurer == nil {
		e.measurer = rendering.NewMetrics()
	}

	if e.columns != 1 && e.columns != 2 {
		return nil, fmt.Errorf("columns must be 1 or 2, got %d", e.columns)
	}
	if e.columnGap < 0 {
		return nil, fmt.Errorf("column gap must not be negative")
	}
	if e.pageSize.Width <= 0 || e.pageSize.Height <= 0 {
		return nil, fmt.Errorf("invalid page size %gx%g", e.pageSize.Width, e.pageSize.Height)
	}
	m := e.margins
	if m.Left < 0 || m.Top < 0 || m.Right < 0 || m.Bottom < 0 {
		return nil, fmt.Errorf("margins must not be negative")
	}
	if e.geometry().columnWidth() <= 0 || e.geometry().frameHeight() <= 0 {
		return nil, fmt.Errorf("margins leave no room for content")
	}
	return e, nil
}

func (e *Engine) geometry() geometry {
	return geometry{
		pageWidth:  e.pageSize.Width,
		pageHeight: e.pageSize.Height,
		left:       e.margins.Left,
		top:        e.margins.Top,
		right:      e.margins.Right,
		bottom:     e.margins.Bottom,
		columns:    e.columns,
		gap:        e.columnGap,
	}
}

// Styles returns the engine's own style registry. Changes affect only
// elements added afterwards.
func (e *Engine) Styles() *styles.Registry {
	return e.registry
}

// Columns returns the configured column count
func (e *Engine) Columns() int {
	return e.columns
}

// ContentWidth returns the width between the left and right margins
func (e *Engine) ContentWidth() float64 {
	return e.pageSize.Width - e.margins.Left - e.margins.Right
}

// ColumnWidth returns the width of one column
func (e *Engine) ColumnWidth() float64 {
	return e.geometry().columnWidth()
}

// Elements returns a copy of the element stream
func (e *Engine) Elements() []Element {
	out := make([]Element, len(e.elements))
	copy(out, e.elements)
	return out
}

// Len returns the number of elements in the stream
func (e *Engine) Len() int {
	return len(e.elements)
}

// Metadata returns the document metadata stamped into generated PDFs
func (e *Engine) Metadata() rendering.Metadata {
	return e.meta
}

// AddText appends a paragraph. content may contain links made by Hyperlink;
// the style is resolved now and captured by value.
func (e *Engine) AddText(content, styleName string, spaceAfter float64) {
	if spaceAfter < 0 {
		spaceAfter = 0
	}
	e.elements = append(e.elements, TextBlock{
		Runs:       ParseMarkup(content),
		Style:      e.registry.Resolve(styleName),
		SpaceAfter: spaceAfter,
	})
}

// AddTable appends a table. Nil rules select DefaultTableRules; nil widths
// split the frame evenly.
func (e *Engine) AddTable(rows [][]string, columnWidths []float64, rules []CellRule) error {
	for i, w := range columnWidths {
		if w < 0 {
			return e.elementError(KindTable, fmt.Errorf("column width %d is negative", i))
		}
	}
	if rules == nil {
		rules = DefaultTableRules()
	}

	copied := make([][]string, len(rows))
	for i, r := range rows {
		copied[i] = append([]string(nil), r...)
	}
	e.elements = append(e.elements, Table{
		Rows:         copied,
		ColumnWidths: append([]float64(nil), columnWidths...),
		Rules:        append([]CellRule(nil), rules...),
	})
	return nil
}

// AddImage probes the image file and appends it with its final size.
// Only width or only height with maintainRatio scales the other side by the
// native aspect ratio.
func (e *Engine) AddImage(path string, width, height float64, maintainRatio bool, align styles.Alignment) error {
	probe, err := probeImage(path)
	if err != nil {
		return err
	}
	w, h := imageSize(probe.width, probe.height, width, height, maintainRatio)
	e.elements = append(e.elements, Image{Path: path, Format: probe.format, Width: w, Height: h, Alignment: align})
	return nil
}

// AddHorizontalLine appends a rule. An empty color is black; width 0 spans
// the column the line lands in.
func (e *Engine) AddHorizontalLine(color string, thickness, width, spaceAfter float64) error {
	c := styles.Black
	if color != "" {
		parsed, err := styles.ParseHexColor(color)
		if err != nil {
			return err
		}
		c = parsed
	}
	if thickness <= 0 {
		return &styles.InvalidStyleError{Field: "thickness", Value: fmt.Sprintf("%g", thickness), Message: "must be positive"}
	}
	if width < 0 {
		width = 0
	}
	if spaceAfter < 0 {
		spaceAfter = 0
	}
	e.elements = append(e.elements, HorizontalLine{Color: c, Thickness: thickness, Width: width, SpaceAfter: spaceAfter})
	return nil
}

// AddPageBreak appends a forced page break
func (e *Engine) AddPageBreak() {
	e.elements = append(e.elements, PageBreak{})
}

// AddColumnBreak appends a forced column break. With one column it starts a
// new page.
func (e *Engine) AddColumnBreak() {
	e.elements = append(e.elements, ColumnBreak{})
}

// SelectColumn continues the flow in column i (0-based) of the current page
func (e *Engine) SelectColumn(i int) error {
	if i < 0 || i >= e.columns {
		return e.elementError(KindColumnSelect, fmt.Errorf("column %d out of range [0, %d)", i, e.columns))
	}
	e.elements = append(e.elements, ColumnSelect{Column: i})
	return nil
}

func (e *Engine) elementError(kind Kind, cause error) error {
	return &ElementError{Index: len(e.elements), Kind: string(kind), Cause: cause}
}

// Layout paginates the element stream without serializing it
func (e *Engine) Layout() (*Document, error) {
	f := newFlow(e.geometry(), e.measurer)
	for i, el := range e.elements {
		if err := f.place(i, el); err != nil {
			e.logger.Debug("layout failed",
				zap.Int("element", i),
				zap.String("kind", string(el.Kind())),
				zap.Error(err))
			return nil, err
		}
	}
	e.logger.Debug("layout complete",
		zap.Int("elements", len(e.elements)),
		zap.Int("pages", len(f.doc.Pages)))
	return f.doc, nil
}

// Generate lays out the stream and returns the PDF bytes
func (e *Engine) Generate() ([]byte, error) {
	doc, err := e.Layout()
	if err != nil {
		return nil, err
	}
	data, err := doc.Render(e.meta)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("pdf generated", zap.Int("bytes", len(data)), zap.Int("pages", len(doc.Pages)))
	return data, nil
}
