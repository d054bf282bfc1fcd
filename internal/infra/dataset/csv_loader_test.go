package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"freedge/internal/domain/registry"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var date2024 = civil.Date{Year: 2024, Month: 1, Day: 1}

const header = "Project,Network,Street address,City,State / Province,Zip Code,Country,Date Installed," +
	"Contact Name,Phone Number,Email Address,Permission to Contact,Preferred Contact Method,Active?\n"

func TestLoad_ParsesRows(t *testing.T) {
	csvData := "\xEF\xBB\xBF" + header +
		`Elm St,Eugene Freedges,1 Elm St,Eugene,OR,97401,USA,3/14/2021,Ana,555-1111,ana@example.org,Yes,Email,YES` + "\n" +
		`"Oak, North",,2 Oak Ave,Salem,OR,,USA,,Bo,,,No,SMS,` + "\n"

	rows, err := Load(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Elm St", rows[0][registry.ColumnProject])
	assert.Equal(t, "3/14/2021", rows[0][registry.ColumnDateInstalled])
	assert.Equal(t, "YES", rows[0][registry.ColumnActive])

	assert.Equal(t, "Oak, North", rows[1][registry.ColumnProject])
	assert.Equal(t, "", rows[1][registry.ColumnActive])
	_, ok := rows[1][registry.ColumnActive]
	assert.True(t, ok)
}

func TestLoad_ShortRowIsReportedByNormalizer(t *testing.T) {
	csvData := header + "Elm St,Eugene Freedges\n"

	rows, err := Load(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, err = registry.Normalize(rows, date2024)
	var malformed *registry.MalformedRowError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 0, malformed.Index)
	assert.Equal(t, 2, malformed.Line)
	assert.Equal(t, registry.ColumnStreetAddress, malformed.Column)
}

func TestLoad_RowsKeepSourceLines(t *testing.T) {
	full := `Elm St,Eugene Freedges,1 Elm St,Eugene,OR,97401,USA,3/14/2021,Ana,555-1111,ana@example.org,Yes,Email,YES` + "\n"
	csvData := header + full + ",,,,,,,,,,,,,\n" + "\n" + "Oak,Eugene Freedges,2 Oak Ave\n"

	rows, err := Load(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Line())
	assert.Equal(t, 5, rows[1].Line())

	_, err = registry.Normalize(rows, date2024)
	var malformed *registry.MalformedRowError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 1, malformed.Index)
	assert.Equal(t, 5, malformed.Line)
	assert.Equal(t, registry.ColumnCity, malformed.Column)
	assert.Contains(t, malformed.Error(), "line 5")
}

func TestLoad_SkipsBlankLines(t *testing.T) {
	csvData := header + ",,,,,,,,,,,,,\n"

	rows, err := Load(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoad_MissingColumns(t *testing.T) {
	_, err := Load(strings.NewReader("Project,Network\nElm St,Eugene\n"))

	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Columns, registry.ColumnActive)
	assert.NotContains(t, missing.Columns, registry.ColumnProject)
}

func TestLoad_EmptyInput(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	assert.ErrorAs(t, err, &registry.EmptyDatasetError{})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freedges.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"Elm St,,,,,,,,,,,,,\n"), 0o600))

	rows, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Elm St", rows[0][registry.ColumnProject])

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
