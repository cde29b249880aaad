// Package templates provides named resume templates, their theme catalogs,
// and theme resolution with get-or-create semantics.
package templates

import "fmt"

// TemplateNotRegisteredError represents a template name with no stored record
// while auto-creation is disabled
type TemplateNotRegisteredError struct {
	Template string
}

func (e *TemplateNotRegisteredError) Error() string {
	return fmt.Sprintf("template %q is not registered", e.Template)
}

// ThemeNotFoundError represents a theme missing from a valid template
type ThemeNotFoundError struct {
	Template string
	Theme    string
}

func (e *ThemeNotFoundError) Error() string {
	return fmt.Sprintf("theme %q not found in template %q", e.Theme, e.Template)
}

// StoreError represents a failure of the underlying template store
type StoreError struct {
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template store error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template store error: %s", e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// CatalogError represents an unreadable or invalid theme catalog file
type CatalogError struct {
	Path    string
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("theme catalog %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("theme catalog %s: %s", e.Path, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}
