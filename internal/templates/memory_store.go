package templates

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jonathan/resume-pdf/internal/types"
)

// MemoryStore keeps templates in process memory
type MemoryStore struct {
	mu        sync.RWMutex
	templates map[string]*Template
	now       func() time.Time
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{templates: make(map[string]*Template), now: time.Now}
}

// GetTemplate implements Store
func (s *MemoryStore) GetTemplate(_ context.Context, name string) (*Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.templates[name]
	if !ok {
		return nil, nil
	}
	return cloneTemplate(t), nil
}

// UpsertTemplate implements Store
func (s *MemoryStore) UpsertTemplate(_ context.Context, tmpl *Template) (*Template, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.templates[tmpl.Name]; ok {
		return cloneTemplate(existing), false, nil
	}
	stored := cloneTemplate(tmpl)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.now().UTC()
	}
	s.templates[tmpl.Name] = stored
	return cloneTemplate(stored), true, nil
}

// ReplaceTemplate implements Store
func (s *MemoryStore) ReplaceTemplate(_ context.Context, tmpl *Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := cloneTemplate(tmpl)
	if existing, ok := s.templates[tmpl.Name]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.now().UTC()
	}
	s.templates[tmpl.Name] = stored
	return nil
}

// ListTemplates implements Store
func (s *MemoryStore) ListTemplates(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.templates))
	for n := range s.templates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func cloneTemplate(t *Template) *Template {
	c := &Template{Name: t.Name, CreatedAt: t.CreatedAt, Themes: make(types.ThemeCatalog, len(t.Themes))}
	for name, theme := range t.Themes {
		c.Themes[name] = cloneTheme(theme)
	}
	return c
}

func cloneTheme(t types.Theme) types.Theme {
	c := t
	if t.FontSizes != nil {
		c.FontSizes = make(map[string]float64, len(t.FontSizes))
		for k, v := range t.FontSizes {
			c.FontSizes[k] = v
		}
	}
	if t.FontStyles != nil {
		c.FontStyles = make(map[string]string, len(t.FontStyles))
		for k, v := range t.FontStyles {
			c.FontStyles[k] = v
		}
	}
	return c
}

var _ Store = (*MemoryStore)(nil)
