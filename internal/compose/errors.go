// Package compose provides the section composer that turns resume data into
// the element stream of a layout engine.
package compose

import "fmt"

// InvalidResumeError represents resume data that failed validation. Nothing
// has been appended to the engine when it is returned.
type InvalidResumeError struct {
	Message string
	Cause   error
}

func (e *InvalidResumeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid resume: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid resume: %s", e.Message)
}

func (e *InvalidResumeError) Unwrap() error {
	return e.Cause
}

// SettingError represents a composer option that cannot work with the engine
// it composes into, e.g. more skill columns than the frame has room for
type SettingError struct {
	Setting string
	Message string
}

func (e *SettingError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Setting, e.Message)
}

// Error represents a failure while appending a section
type Error struct {
	Section SectionKind
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("compose %s section: %v", e.Section, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
