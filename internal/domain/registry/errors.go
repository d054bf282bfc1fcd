package registry

import "fmt"

// EmptyDatasetError is returned when an import carries no rows.
type EmptyDatasetError struct{}

func (EmptyDatasetError) Error() string {
	return "dataset contains no rows"
}

// MalformedRowError is returned when a row lacks a required column.
type MalformedRowError struct {
	Index  int    // Zero-based position of the row in the dataset.
	Line   int    // One-based source line, 0 when unknown.
	Column string // The missing column label.
}

func (e *MalformedRowError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("row %d (line %d) is missing column %q", e.Index, e.Line, e.Column)
	}

	return fmt.Sprintf("row %d is missing column %q", e.Index, e.Column)
}
