// Package sink delivers generated PDF documents to their destination.
package sink

import "fmt"

// WriteError represents a failure to deliver a document
type WriteError struct {
	Name    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write error: %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("write error: %s: %s", e.Name, e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
