// Package resumedata loads resume records from JSON files.
package resumedata

import "fmt"

// LoadError represents an error during file I/O, schema validation or JSON parsing
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	prefix := "load error"
	if e.Path != "" {
		prefix = fmt.Sprintf("load error: %s", e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
