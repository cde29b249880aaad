package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResume = `{
  "name": "Jane Doe",
  "contact_info": {"email": "jane@example.com", "github": "jdoe"},
  "experience": [{"title": "Engineer", "company": "Acme", "start_date": "Jan 2020", "position": 0}],
  "education": [{"degree": "BSc", "field": "CS", "institution": "MIT"}],
  "skills": ["Go"]
}`

func TestValidateResume_Valid(t *testing.T) {
	assert.NoError(t, ValidateResume([]byte(validResume)))
}

func TestValidateResume_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{name: "missing name", json: `{"summary": "x"}`},
		{name: "experience without company", json: `{"name": "J", "experience": [{"title": "a", "start_date": "Jan 2020"}]}`},
		{name: "negative position", json: `{"name": "J", "education": [{"degree": "a", "field": "b", "institution": "c", "position": -1}]}`},
		{name: "unknown field", json: `{"name": "J", "hobbies": []}`},
		{name: "wrong type", json: `{"name": "J", "skills": "Go"}`},
		{name: "malformed", json: `{ invalid json }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResume([]byte(tt.json))
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateThemeCatalog(t *testing.T) {
	valid := `{"Elegant Gold Theme": {"title_color": "#FFD700", "font_sizes": {"title": 24}, "font_styles": {"title": "Times-Bold"}}}`
	assert.NoError(t, ValidateThemeCatalog([]byte(valid)))

	for _, bad := range []string{
		`{}`,
		`{"t": {"title_color": "gold"}}`,
		`{"t": {"font_sizes": {"title": 0}}}`,
		`{"t": {"colour": "#000000"}}`,
	} {
		err := ValidateThemeCatalog([]byte(bad))
		var validationErr *ValidationError
		assert.True(t, errors.As(err, &validationErr), "catalog %s", bad)
	}
}

func TestValidateBytes_UnknownSchema(t *testing.T) {
	err := ValidateBytes("nope.schema.json", []byte(`{}`))
	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "nope.schema.json", loadErr.Path)
}

func TestValidateWithSchemaFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "house.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{"type": "object", "required": ["summary"]}`), 0644))

	assert.NoError(t, ValidateWithSchemaFile(schemaPath, []byte(`{"name": "x", "summary": "y"}`)))

	err := ValidateWithSchemaFile(schemaPath, []byte(validResume))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Errors[0].Message, "summary")

	err = ValidateWithSchemaFile(schemaPath, []byte(`{not json`))
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateWithSchemaFile_MissingOrInvalidSchema(t *testing.T) {
	dir := t.TempDir()

	err := ValidateWithSchemaFile(filepath.Join(dir, "missing.json"), []byte(`{}`))
	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "schema file not found")

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"type": 42}`), 0644))
	err = ValidateWithSchemaFile(broken, []byte(`{}`))
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "invalid schema")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{{Field: "name", Message: "is required"}}}
	assert.Contains(t, err.Error(), "1. name: is required")
}
