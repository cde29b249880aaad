package templates

import (
	"context"
	"time"

	"github.com/jonathan/resume-pdf/internal/types"
)

// Template is a named record carrying a theme catalog
type Template struct {
	Name      string             `json:"name"`
	Themes    types.ThemeCatalog `json:"themes"`
	CreatedAt time.Time          `json:"created_at"`
}

// Store persists templates. Implementations are safe for concurrent use.
type Store interface {
	// GetTemplate returns the template with the given name, or nil if absent
	GetTemplate(ctx context.Context, name string) (*Template, error)
	// UpsertTemplate stores tmpl unless a template with the same name exists.
	// It returns the stored record and whether it was created by this call.
	UpsertTemplate(ctx context.Context, tmpl *Template) (*Template, bool, error)
	// ReplaceTemplate stores tmpl, overwriting any existing catalog
	ReplaceTemplate(ctx context.Context, tmpl *Template) error
	// ListTemplates returns all template names, sorted
	ListTemplates(ctx context.Context) ([]string, error)
}
