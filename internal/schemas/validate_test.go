package schemas

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validExport = `{
	"version": 1,
	"exported_at": "2024-03-14T08:00:00Z",
	"applications": [
		{
			"company": "Acme",
			"position": "Développeuse Go",
			"status": "Entretien",
			"applied_date": "2024-03-01",
			"priority": "high",
			"tags": ["go", "backend"],
			"interviews": [
				{"date": "2024-03-15", "time": "14:30", "type": "video", "duration": 45}
			]
		},
		{"company": "Globex", "position": "SRE", "applied_date": null}
	],
	"contacts": [{"name": "Ada Lovelace", "email": "ada@example.com"}],
	"tasks": [{"title": "Relancer Acme", "status": "todo", "category": "follow-up"}]
}`

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type, got %T: %v", err, err)
	fields := make([]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func hasFieldPrefix(fields []string, prefix string) bool {
	for _, f := range fields {
		if strings.HasPrefix(f, prefix) {
			return true
		}
	}
	return false
}

func TestValidateImport_Valid(t *testing.T) {
	assert.NoError(t, ValidateImport([]byte(validExport)))
	assert.NoError(t, ValidateImport([]byte(`{"version": 1}`)))
}

func TestValidateImport_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"missing version", `{"applications": []}`, ""},
		{"wrong version", `{"version": 2}`, "version"},
		{"unknown top-level key", `{"version": 1, "resumes": []}`, ""},
		{"missing company", `{"version": 1, "applications": [{"position": "Dev"}]}`, "applications.0"},
		{"bad status", `{"version": 1, "applications": [{"company": "A", "position": "B", "status": "Ghosted"}]}`, "applications.0.status"},
		{"bad date", `{"version": 1, "applications": [{"company": "A", "position": "B", "applied_date": "01/03/2024"}]}`, "applications.0.applied_date"},
		{"bad interview time", `{"version": 1, "applications": [{"company": "A", "position": "B", "interviews": [{"date": "2024-03-15", "time": "2pm"}]}]}`, "applications.0.interviews.0.time"},
		{"short task title", `{"version": 1, "tasks": [{"title": "Go"}]}`, "tasks.0.title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImport([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, hasFieldPrefix(fieldsOf(t, err), tt.field), "want a violation under %q, got %v", tt.field, err)
		})
	}
}

func TestValidateImport_MalformedJSON(t *testing.T) {
	err := ValidateImport([]byte("{ invalid json }"))
	require.Error(t, err)
	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "malformed input is a load error, got %T", err)
}

func TestValidateJSON_Files(t *testing.T) {
	schemaPath := filepath.Join("..", "..", "schemas", "applications_import.schema.json")

	tmpDir := t.TempDir()
	valid := filepath.Join(tmpDir, "export.json")
	require.NoError(t, os.WriteFile(valid, []byte(validExport), 0644))
	invalid := filepath.Join(tmpDir, "broken.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"version": "one"}`), 0644))

	assert.NoError(t, ValidateJSON(schemaPath, valid))

	err := ValidateJSON(schemaPath, invalid)
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), "version")
}

func TestValidateJSON_NotFound(t *testing.T) {
	err := ValidateJSON("nonexistent_schema.json", "whatever.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	schemaPath := filepath.Join("..", "..", "schemas", "applications_import.schema.json")
	err = ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "company", Message: "is required"},
			{Field: "version", Message: "must be 1"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. company: is required")
	assert.Contains(t, errorMsg, "2. version: must be 1")
}
