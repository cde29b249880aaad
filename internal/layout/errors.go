// Package layout provides the document element stream and the flow engine
// that paginates it into single- or two-column PDF pages.
package layout

import "fmt"

// ResourceNotFoundError represents a missing file referenced by the document, e.g. an image
type ResourceNotFoundError struct {
	Path  string
	Cause error
}

func (e *ResourceNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resource not found: %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("resource not found: %s", e.Path)
}

func (e *ResourceNotFoundError) Unwrap() error {
	return e.Cause
}

// LayoutOverflowError reports an atomic element that cannot fit in any column or page
//
//nolint:revive // the name is part of the public error taxonomy
type LayoutOverflowError struct {
	Index   int    // position of the failing element in the stream
	Kind    string // element kind
	Message string
}

func (e *LayoutOverflowError) Error() string {
	return fmt.Sprintf("layout overflow at element %d (%s): %s", e.Index, e.Kind, e.Message)
}

// ElementError wraps a non-overflow failure with the index of the element being laid out
type ElementError struct {
	Index int
	Kind  string
	Cause error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("layout failed at element %d (%s): %v", e.Index, e.Kind, e.Cause)
}

func (e *ElementError) Unwrap() error {
	return e.Cause
}
