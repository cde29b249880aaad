// Package pipeline provides the high-level orchestration for resume PDF generation.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-pdf/internal/compose"
	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/jonathan/resume-pdf/internal/sink"
	"github.com/jonathan/resume-pdf/internal/styles"
	"github.com/jonathan/resume-pdf/internal/templates"
	"github.com/jonathan/resume-pdf/internal/types"
)

// Progress stages reported through ProgressCallback
const (
	StageResolved  = "resolved"
	StageComposed  = "composed"
	StageGenerated = "generated"
	StageWritten   = "written"
	StageFailed    = "failed"
)

// DefaultConcurrency bounds RenderBatch when no limit is configured
const DefaultConcurrency = 4

// ProgressEvent represents a progress update for one document
type ProgressEvent struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// ProgressCallback is called when generation progress occurs.
// It may be called concurrently during RenderBatch.
type ProgressCallback func(event ProgressEvent)

// Request describes one document to generate
type Request struct {
	Resume   *types.ResumeData
	Template string
	Theme    string
	// Name is the output name; defaults to sink.FileName(Resume.Name)
	Name string
}

// Result describes one generated document
type Result struct {
	Index    int
	Name     string
	Location string // where the sink stored it; empty without a sink
	PDF      []byte
	Pages    int
	Outline  *compose.Outline
	Document *layout.Document
	Err      error
}

// Layout holds the page geometry used for every document
type Layout struct {
	PageSize  layout.PageSize
	Margins   layout.Margins
	Columns   int
	ColumnGap float64
}

// DefaultLayout is a single-column Letter page with half-inch margins
func DefaultLayout() Layout {
	return Layout{
		PageSize:  layout.Letter,
		Margins:   layout.UniformMargins(layout.DefaultMargin),
		Columns:   1,
		ColumnGap: layout.DefaultColumnGap,
	}
}

// Generator resolves themes, composes resumes and delivers the PDFs
type Generator struct {
	resolver     *templates.Resolver
	sink         sink.Sink
	base         *styles.Registry
	layout       Layout
	composeOpts  []compose.Option
	creationDate time.Time
	concurrency  int
	failFast     bool
	onProgress   ProgressCallback
	logger       *zap.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithSink delivers every generated document to s
func WithSink(s sink.Sink) Option {
	return func(g *Generator) { g.sink = s }
}

// WithBaseRegistry sets the registry themes are applied on top of.
// Each document works on its own clone.
func WithBaseRegistry(r *styles.Registry) Option {
	return func(g *Generator) {
		if r != nil {
			g.base = r
		}
	}
}

// WithLayout sets the page geometry
func WithLayout(l Layout) Option {
	return func(g *Generator) { g.layout = l }
}

// WithComposeOptions passes options to each document's composer
func WithComposeOptions(opts ...compose.Option) Option {
	return func(g *Generator) { g.composeOpts = append(g.composeOpts, opts...) }
}

// WithCreationDate stamps t into every document instead of the engine default
func WithCreationDate(t time.Time) Option {
	return func(g *Generator) { g.creationDate = t }
}

// WithConcurrency bounds the number of documents rendered at once by RenderBatch
func WithConcurrency(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.concurrency = n
		}
	}
}

// WithFailFast makes RenderBatch stop at the first failed document
func WithFailFast(on bool) Option {
	return func(g *Generator) { g.failFast = on }
}

// WithProgress sets the progress callback
func WithProgress(cb ProgressCallback) Option {
	return func(g *Generator) { g.onProgress = cb }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a generator resolving themes through resolver
func NewGenerator(resolver *templates.Resolver, opts ...Option) *Generator {
	g := &Generator{
		resolver:    resolver,
		base:        styles.NewRegistry(),
		layout:      DefaultLayout(),
		concurrency: DefaultConcurrency,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// emitProgress calls the progress callback if configured
func (g *Generator) emitProgress(index int, name, stage, message string) {
	if g.onProgress != nil {
		g.onProgress(ProgressEvent{Index: index, Name: name, Stage: stage, Message: message})
	}
}

// Render generates one document
func (g *Generator) Render(ctx context.Context, req Request) (*Result, error) {
	res := g.render(ctx, 0, req)
	if res.Err != nil {
		return nil, res.Err
	}
	return &res, nil
}

func (g *Generator) render(ctx context.Context, index int, req Request) Result {
	res := Result{Index: index, Name: req.Name}
	if req.Resume == nil {
		res.Err = &compose.InvalidResumeError{Message: "resume data is required"}
		g.emitProgress(index, res.Name, StageFailed, res.Err.Error())
		return res
	}
	if res.Name == "" {
		res.Name = sink.FileName(req.Resume.Name)
	}

	fail := func(err error) Result {
		res.Err = err
		g.logger.Warn("Document generation failed",
			zap.Int("index", index),
			zap.String("name", res.Name),
			zap.Error(err))
		g.emitProgress(index, res.Name, StageFailed, err.Error())
		return res
	}

	theme, err := g.resolver.ResolveTheme(ctx, req.Template, req.Theme)
	if err != nil {
		return fail(fmt.Errorf("resolving theme failed: %w", err))
	}
	registry := g.base.Clone()
	if err := registry.ApplyTheme(theme); err != nil {
		return fail(fmt.Errorf("applying theme %s failed: %w", theme.Name, err))
	}
	g.emitProgress(index, res.Name, StageResolved, fmt.Sprintf("Resolved theme %s", theme.Name))

	engine, err := layout.New(g.engineOptions(req.Resume, registry)...)
	if err != nil {
		return fail(fmt.Errorf("creating layout engine failed: %w", err))
	}

	composeOpts := append([]compose.Option{compose.WithLogger(g.logger)}, g.composeOpts...)
	outline, err := compose.New(engine, composeOpts...).Compose(req.Resume)
	if err != nil {
		return fail(fmt.Errorf("composing resume failed: %w", err))
	}
	res.Outline = outline
	g.emitProgress(index, res.Name, StageComposed,
		fmt.Sprintf("Composed %d sections, %d elements", len(outline.Sections), engine.Len()))

	doc, err := engine.Layout()
	if err != nil {
		return fail(fmt.Errorf("layout failed: %w", err))
	}
	data, err := doc.Render(engine.Metadata())
	if err != nil {
		return fail(fmt.Errorf("rendering pdf failed: %w", err))
	}
	res.Document = doc
	res.Pages = len(doc.Pages)
	res.PDF = data
	g.logger.Info("Document generated",
		zap.String("name", res.Name),
		zap.Int("pages", res.Pages),
		zap.Int("bytes", len(data)))
	g.emitProgress(index, res.Name, StageGenerated,
		fmt.Sprintf("Generated %d pages (%d bytes)", res.Pages, len(data)))

	if g.sink != nil {
		location, err := g.sink.Write(ctx, res.Name, data)
		if err != nil {
			return fail(err)
		}
		res.Location = location
		g.emitProgress(index, res.Name, StageWritten, location)
	}
	return res
}

func (g *Generator) engineOptions(resume *types.ResumeData, registry *styles.Registry) []layout.Option {
	opts := []layout.Option{
		layout.WithPageSize(g.layout.PageSize),
		layout.WithMargins(g.layout.Margins),
		layout.WithColumns(g.layout.Columns),
		layout.WithColumnGap(g.layout.ColumnGap),
		layout.WithRegistry(registry),
		layout.WithTitle(resume.Name + " Resume"),
		layout.WithAuthor(resume.Name),
		layout.WithLogger(g.logger),
	}
	if !g.creationDate.IsZero() {
		opts = append(opts, layout.WithCreationDate(g.creationDate))
	}
	return opts
}

// RenderBatch generates documents concurrently, at most the configured
// concurrency at a time. Results are returned in request order, each carrying
// its own error. With fail-fast, the first failure cancels the remaining
// documents and is returned as the batch error.
func (g *Generator) RenderBatch(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)

	for i, req := range reqs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				results[i] = Result{Index: i, Name: req.Name, Err: err}
				return nil
			}
			results[i] = g.render(egCtx, i, req)
			if results[i].Err != nil && g.failFast {
				return fmt.Errorf("document %d (%s) failed: %w", i, results[i].Name, results[i].Err)
			}
			return nil
		})
	}

	err := eg.Wait()
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	g.logger.Info("Batch complete",
		zap.Int("documents", len(reqs)),
		zap.Int("failed", failed))

	if err != nil {
		return results, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return results, ctxErr
	}
	return results, nil
}

// Failed returns the results that carry an error
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// FirstError returns the first per-document error, in request order
func FirstError(results []Result) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// JoinErrors combines all per-document errors
func JoinErrors(results []Result) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Name, r.Err))
		}
	}
	return errors.Join(errs...)
}
