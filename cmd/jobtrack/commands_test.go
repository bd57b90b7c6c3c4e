package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/dashboard"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		importDryRun = false
		importUser = ""
		importSchema = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestImportCommand_DryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"version": 1,
		"applications": [{"company": "Acme", "position": "Dev"}],
		"tasks": [{"title": "Relancer Acme"}]
	}`), 0644))

	out, err := execute(t, "import", "--dry-run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 application(s), 0 contact(s), 1 task(s)")
}

func TestImportCommand_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 2}`), 0644))

	_, err := execute(t, "import", "--dry-run", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestImportCommand_RequiresUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 1}`), 0644))

	_, err := execute(t, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--user")
}

func TestImportCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "import", "--dry-run", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read import file")
}

func TestImportCommand_ExtraSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "team.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["contacts"],
		"properties": {"contacts": {"type": "array", "minItems": 1}}
	}`), 0644))

	without := filepath.Join(dir, "without.json")
	require.NoError(t, os.WriteFile(without, []byte(`{"version": 1}`), 0644))
	_, err := execute(t, "import", "--dry-run", "--schema", schemaPath, without)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
	assert.Contains(t, err.Error(), "contacts")

	with := filepath.Join(dir, "with.json")
	require.NoError(t, os.WriteFile(with, []byte(`{"version": 1, "contacts": [{"name": "Ada Lovelace"}]}`), 0644))
	out, err := execute(t, "import", "--dry-run", "--schema", schemaPath, with)
	require.NoError(t, err)
	assert.Contains(t, out, "1 contact(s)")

	_, err = execute(t, "import", "--dry-run", "--schema", filepath.Join(dir, "missing.schema.json"), with)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestRenderOverview(t *testing.T) {
	today := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	snap := &dashboard.Snapshot{
		Applications: []types.Application{
			{Company: "Acme", Position: "Dev Go", Status: types.StatusInterview, AppliedDate: "2024-03-14"},
			{Company: "Globex", Position: "SRE", Status: types.StatusRejected, AppliedDate: "2024-02-02"},
		},
	}

	out := renderOverview(dashboard.Build(snap, today))
	assert.Contains(t, out, "Candidatures")
	assert.Contains(t, out, "Taux de réponse")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "2024-03-14")
	assert.Contains(t, out, "mars 2024 (1)")
	assert.Contains(t, out, "Acme · Dev Go · Entretien")
	assert.Contains(t, out, "février 2024 (1)")
}
