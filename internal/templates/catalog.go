package templates

import (
	"context"
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/resume-pdf/internal/schemas"
	"github.com/jonathan/resume-pdf/internal/styles"
	"github.com/jonathan/resume-pdf/internal/types"
)

// LoadCatalog reads a JSON theme catalog file. The file is validated against
// the catalog schema, and every theme must apply cleanly to a fresh registry.
func LoadCatalog(path string) (types.ThemeCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogError{Path: path, Message: "failed to read file", Cause: err}
	}
	return ParseCatalog(path, data)
}

// ParseCatalog validates and decodes catalog JSON. source names the input in errors.
func ParseCatalog(source string, data []byte) (types.ThemeCatalog, error) {
	if err := schemas.ValidateThemeCatalog(data); err != nil {
		return nil, &CatalogError{Path: source, Message: "schema validation failed", Cause: err}
	}

	var catalog types.ThemeCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, &CatalogError{Path: source, Message: "failed to decode catalog", Cause: err}
	}

	for name := range catalog {
		theme, _ := catalog.Lookup(name)
		if err := styles.NewRegistry().ApplyTheme(theme); err != nil {
			return nil, &CatalogError{Path: source, Message: "theme " + name + " is invalid", Cause: err}
		}
	}
	return catalog, nil
}

// ImportCatalog loads a catalog file and stores it as the named template,
// replacing any existing catalog
func (r *Resolver) ImportCatalog(ctx context.Context, template, path string) (*Template, error) {
	catalog, err := LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	tmpl := &Template{Name: template, Themes: catalog}
	if err := r.store.ReplaceTemplate(ctx, tmpl); err != nil {
		return nil, err
	}
	r.logger.Info("theme catalog imported",
		zap.String("template", template),
		zap.String("path", path),
		zap.Int("themes", len(catalog)))
	return r.store.GetTemplate(ctx, template)
}
