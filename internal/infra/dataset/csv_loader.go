// Package dataset reads caretaker spreadsheets exported as CSV into raw registry rows.
package dataset

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"freedge/internal/domain/registry"

	"github.com/pkg/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// MissingColumnsError is returned when the header row lacks required columns.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "dataset header is missing columns: " + strings.Join(e.Columns, ", ")
}

// LoadFile reads a CSV dataset from disk.
func LoadFile(path string) ([]registry.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return Load(file)
}

// Load reads a CSV dataset whose first record is the header.
// Short records keep only the cells they carry, so the normalizer reports them as malformed.
// Each row remembers its source line, blank lines included in the count.
func Load(r io.Reader) ([]registry.Row, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, registry.EmptyDatasetError{}
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var rows []registry.Row

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.Wrap(readErr, "read record")
		}

		if isBlank(record) {
			continue
		}

		row := make(registry.Row, len(header)+1)
		for i, cell := range record {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = cell
		}
		line, _ := reader.FieldPos(0)
		row.SetLine(line)
		rows = append(rows, row)
	}

	return rows, nil
}

func checkHeader(header []string) error {
	present := make(map[string]struct{}, len(header))
	for _, column := range header {
		present[column] = struct{}{}
	}

	var missing []string
	for _, column := range registry.RequiredColumns() {
		if _, ok := present[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}

	return nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
