package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-pdf/internal/templates"
	"github.com/jonathan/resume-pdf/internal/types"
)

var _ templates.Store = (*DB)(nil)

// GetTemplate retrieves a template by name, returning nil if it does not exist
func (db *DB) GetTemplate(ctx context.Context, name string) (*templates.Template, error) {
	var raw []byte
	var createdAt time.Time
	err := db.pool.QueryRow(ctx,
		`SELECT styles, created_at FROM templates WHERE name = $1`,
		name,
	).Scan(&raw, &createdAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get template %s: %w", name, err)
	}
	return decodeTemplate(name, raw, createdAt)
}

// UpsertTemplate inserts a template unless one with the same name exists.
// The unique constraint on name decides the winner between concurrent callers.
func (db *DB) UpsertTemplate(ctx context.Context, tmpl *templates.Template) (*templates.Template, bool, error) {
	raw, err := encodeCatalog(tmpl.Themes)
	if err != nil {
		return nil, false, err
	}

	var createdAt time.Time
	err = db.pool.QueryRow(ctx,
		`INSERT INTO templates (id, name, styles)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO NOTHING
		 RETURNING created_at`,
		uuid.New(), tmpl.Name, raw,
	).Scan(&createdAt)
	if err == nil {
		stored, err := decodeTemplate(tmpl.Name, raw, createdAt)
		return stored, true, err
	}
	if err != pgx.ErrNoRows {
		return nil, false, fmt.Errorf("failed to create template %s: %w", tmpl.Name, err)
	}

	existing, err := db.GetTemplate(ctx, tmpl.Name)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("template %s vanished after conflict", tmpl.Name)
	}
	return existing, false, nil
}

// ReplaceTemplate creates or overwrites the template's theme catalog
func (db *DB) ReplaceTemplate(ctx context.Context, tmpl *templates.Template) error {
	raw, err := encodeCatalog(tmpl.Themes)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO templates (id, name, styles)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO UPDATE SET styles = $3, updated_at = NOW()`,
		uuid.New(), tmpl.Name, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to replace template %s: %w", tmpl.Name, err)
	}
	return nil
}

// ListTemplates returns all template names in alphabetical order
func (db *DB) ListTemplates(ctx context.Context) ([]string, error) {
	rows, err := db.pool.Query(ctx, `SELECT name FROM templates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func encodeCatalog(catalog types.ThemeCatalog) ([]byte, error) {
	if catalog == nil {
		catalog = types.ThemeCatalog{}
	}
	raw, err := json.Marshal(catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal theme catalog: %w", err)
	}
	return raw, nil
}

func decodeTemplate(name string, raw []byte, createdAt time.Time) (*templates.Template, error) {
	var catalog types.ThemeCatalog
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &catalog); err != nil {
			return nil, fmt.Errorf("failed to unmarshal styles for template %s: %w", name, err)
		}
	}
	if catalog == nil {
		catalog = types.ThemeCatalog{}
	}
	return &templates.Template{Name: name, Themes: catalog, CreatedAt: createdAt.UTC()}, nil
}
