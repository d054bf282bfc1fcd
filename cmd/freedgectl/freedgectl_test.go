package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"freedge/internal/domain/entity"
	"freedge/internal/domain/registry"
	"freedge/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, lines ...string) string {
	t.Helper()

	header := strings.Join(registry.RequiredColumns(), ",")
	path := filepath.Join(t.TempDir(), "freedges.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"\n"+strings.Join(lines, "\n")+"\n"), 0o600))

	return path
}

// datasetLine orders values by registry.RequiredColumns.
func datasetLine(project, permission, active string) string {
	values := map[string]string{
		registry.ColumnProject:    project,
		registry.ColumnNetwork:    "Network",
		registry.ColumnCity:       "Springfield",
		registry.ColumnPermission: permission,
		registry.ColumnActive:     active,
	}

	cells := make([]string, 0, len(registry.RequiredColumns()))
	for _, column := range registry.RequiredColumns() {
		cells = append(cells, values[column])
	}

	return strings.Join(cells, ",")
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestValidateCmd(t *testing.T) {
	path := writeDataset(t,
		datasetLine("Alpha", "Yes", "Yes"),
		datasetLine("Beta", "No", ""),
		datasetLine("Alpha", "Yes", "No"),
	)

	out, err := runCmd(t, "validate", path, "--today", "2024-06-01")
	require.NoError(t, err)

	assert.Contains(t, out, "✅ 3 rows")
	assert.Contains(t, out, "SHA256: ")
	assert.Contains(t, out, `duplicate project name "Alpha" in dataset`)
	assert.Contains(t, out, "Validation passed")
}

func TestValidateCmd_MissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.csv")
	require.NoError(t, os.WriteFile(path, []byte("Project,Network\nAlpha,Net\n"), 0o600))

	out, err := runCmd(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "missing columns")
}

func TestValidateCmd_Arguments(t *testing.T) {
	_, err := runCmd(t, "validate")
	assert.Error(t, err)

	_, err = runCmd(t, "validate", "whatever.csv", "--today", "June 1st")
	assert.ErrorContains(t, err, "invalid --today")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "yes", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		assert.Equal(t, tt.want, confirm(strings.NewReader(tt.input), &out, "? "), "input %q", tt.input)
		assert.Equal(t, "? ", out.String())
	}
}

func TestPrintPreview(t *testing.T) {
	existing := &entity.Freedge{ID: 4, ProjectName: "Beta", Address: entity.Address{City: "Springfield"}}
	candidate := &entity.Freedge{ProjectName: "Beta", Address: entity.Address{City: "Shelbyville"}}

	preview := &usecase.ImportPreview{
		ID: uuid.New(),
		Delta: &registry.Delta{
			ToAdd:    []*entity.Freedge{{ProjectName: "Alpha"}},
			ToRemove: []*entity.Freedge{{ID: 9, ProjectName: "Gamma"}},
			ToModify: []registry.Modification{{Existing: existing, Candidate: candidate}},
		},
		Summary:       []string{"(1) entries will be ADDED."},
		RemovesAll:    true,
		ExistingCount: 1,
	}

	var out bytes.Buffer
	printPreview(&out, preview, false)

	text := out.String()
	assert.Contains(t, text, "(1) entries will be ADDED.")
	assert.Contains(t, text, "ADDED:\n  Alpha")
	assert.Contains(t, text, "REMOVED:\n  #9 Gamma")
	assert.Contains(t, text, "#4 Beta")
	assert.Contains(t, text, entity.FieldLocation+":")
	assert.Contains(t, text, "Every one of the 1 registry entries would be removed")
}

func TestPrintOverdue(t *testing.T) {
	confirmed := &entity.Freedge{
		ID:                 1,
		ProjectName:        "Alpha",
		Status:             entity.StatusActive,
		LastStatusUpdate:   civil.DateOf(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
		PermissionToNotify: true,
		ContactMethod:      entity.ContactEmail,
	}
	never := &entity.Freedge{ID: 2, ProjectName: "Beta"}

	var out bytes.Buffer
	require.NoError(t, printOverdue(&out, []*usecase.OverdueEntry{
		{Freedge: confirmed, DaysSinceUpdate: 152, Notifiable: true},
		{Freedge: never},
	}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "152")
	assert.Contains(t, lines[1], "EMAIL")
	assert.Contains(t, lines[2], "never")
	assert.Contains(t, lines[2], "no consent")

	out.Reset()
	require.NoError(t, printOverdue(&out, nil))
	assert.Equal(t, "No overdue entries.\n", out.String())
}
