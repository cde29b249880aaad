package templates

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-pdf/internal/types"
)

// Resolver maps (template, theme) names to a concrete theme
type Resolver struct {
	store      Store
	autoCreate bool
	defaults   func() types.ThemeCatalog
	logger     *zap.Logger
}

// ResolverOption configures a Resolver
type ResolverOption func(*Resolver)

// WithAutoCreate toggles creating missing templates with the default catalog
func WithAutoCreate(on bool) ResolverOption {
	return func(r *Resolver) { r.autoCreate = on }
}

// WithDefaultCatalog replaces the catalog seeded into auto-created templates
func WithDefaultCatalog(fn func() types.ThemeCatalog) ResolverOption {
	return func(r *Resolver) {
		if fn != nil {
			r.defaults = fn
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver creates a resolver over store. Auto-creation is on by default.
func NewResolver(store Store, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store:      store,
		autoCreate: true,
		defaults:   DefaultCatalog,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Template returns the named template, creating it with the default catalog
// when auto-creation is on. Creation is idempotent per name.
func (r *Resolver) Template(ctx context.Context, name string) (*Template, error) {
	tmpl, err := r.store.GetTemplate(ctx, name)
	if err != nil {
		return nil, err
	}
	if tmpl != nil {
		return tmpl, nil
	}
	if !r.autoCreate {
		return nil, &TemplateNotRegisteredError{Template: name}
	}

	tmpl, created, err := r.store.UpsertTemplate(ctx, &Template{Name: name, Themes: r.defaults()})
	if err != nil {
		return nil, err
	}
	if created {
		r.logger.Info("template registered", zap.String("template", name), zap.Int("themes", len(tmpl.Themes)))
	}
	return tmpl, nil
}

// ResolveTheme returns the named theme of the named template
func (r *Resolver) ResolveTheme(ctx context.Context, template, theme string) (types.Theme, error) {
	tmpl, err := r.Template(ctx, template)
	if err != nil {
		return types.Theme{}, err
	}
	t, ok := tmpl.Themes.Lookup(theme)
	if !ok {
		return types.Theme{}, &ThemeNotFoundError{Template: template, Theme: theme}
	}
	r.logger.Debug("theme resolved", zap.String("template", template), zap.String("theme", theme))
	return t, nil
}
