// Package rendering writes laid-out resume pages to PDF and measures text in the PDF core fonts.
package rendering

import "fmt"

// RenderError represents a failure while serializing a document to PDF
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
