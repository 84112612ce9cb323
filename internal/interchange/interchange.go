// Package interchange maps ledger tables to and from tabular files: comma
// separated text and spreadsheets.
package interchange

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/GustavoCaso/zerobudget/internal/storage"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatFromPath picks the format from the file extension. Only ".csv" maps to
// comma separated text, every other name goes to the spreadsheet path.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatXLSX
}

type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Format)
}

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX, "xls", "excel":
		return FormatXLSX, nil
	default:
		return "", &UnsupportedFormatError{Format: s}
	}
}

func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// ExpectedColumns is the exact column set a file must carry for table.
func ExpectedColumns(table storage.Table) []string {
	return table.Columns()
}

type SchemaMismatchError struct {
	Table    storage.Table
	Expected []string
	Found    []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("incorrect columns for %s. Expected: {%s}, found: {%s}",
		e.Table, strings.Join(e.Expected, ", "), strings.Join(e.Found, ", "))
}

type FileIOError struct {
	Path string
	Err  error
}

func (e *FileIOError) Error() string {
	return fmt.Sprintf("file %s: %v", e.Path, e.Err)
}

func (e *FileIOError) Unwrap() error {
	return e.Err
}

// RowError points at the file row that could not be imported. Row is 1-based
// and counts the header, so it matches what a spreadsheet shows.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

func sortedSet(columns []string) []string {
	set := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		set[column] = struct{}{}
	}
	keys := maps.Keys(set)
	slices.Sort(keys)
	return keys
}

// checkColumns compares the header against the expected column set. Order
// does not matter, duplicates and missing or extra names do.
func checkColumns(table storage.Table, headers []string) (map[string]int, error) {
	expected := ExpectedColumns(table)

	index := make(map[string]int, len(headers))
	for i, header := range headers {
		index[strings.TrimSpace(header)] = i
	}

	mismatch := len(index) != len(headers) || len(index) != len(expected)
	for _, column := range expected {
		if _, ok := index[column]; !ok {
			mismatch = true
		}
	}

	if mismatch {
		found := make([]string, 0, len(headers))
		for _, header := range headers {
			found = append(found, strings.TrimSpace(header))
		}
		return nil, &SchemaMismatchError{
			Table:    table,
			Expected: sortedSet(expected),
			Found:    sortedSet(found),
		}
	}

	return index, nil
}
