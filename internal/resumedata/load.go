package resumedata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jonathan/resume-pdf/internal/schemas"
	"github.com/jonathan/resume-pdf/internal/types"
)

// LoadFile reads a resume JSON file, validates it against the resume schema
// and the record rules, and returns it with entries ordered by position
func LoadFile(path string) (*types.ResumeData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	data, err := Parse(content)
	if err != nil {
		if loadErr, ok := err.(*LoadError); ok {
			loadErr.Path = path
		}
		return nil, err
	}
	return data, nil
}

// Parse decodes and validates resume JSON
func Parse(content []byte) (*types.ResumeData, error) {
	if err := schemas.ValidateResume(content); err != nil {
		return nil, &LoadError{
			Message: "schema validation failed",
			Cause:   err,
		}
	}

	var data types.ResumeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := data.Validate(); err != nil {
		return nil, &LoadError{
			Message: "invalid resume data",
			Cause:   err,
		}
	}

	sorted := data.Sorted()
	return &sorted, nil
}

// List returns the JSON files in dir, sorted by name
func List(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, &LoadError{Path: dir, Message: "invalid directory pattern", Cause: err}
	}
	if len(matches) == 0 {
		if _, statErr := os.Stat(dir); statErr != nil {
			return nil, &LoadError{Path: dir, Message: "failed to read directory", Cause: statErr}
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// Write stores data as indented JSON at path
func Write(path string, data *types.ResumeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
