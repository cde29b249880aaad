// Package styles provides the named paragraph style registry used to build resume documents.
package styles

import "fmt"

// InvalidStyleError represents a malformed style value, e.g. a bad color code in a theme
type InvalidStyleError struct {
	Field   string
	Value   string
	Message string
	Cause   error
}

func (e *InvalidStyleError) Error() string {
	msg := fmt.Sprintf("invalid style: %s %q: %s", e.Field, e.Value, e.Message)
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *InvalidStyleError) Unwrap() error {
	return e.Cause
}
