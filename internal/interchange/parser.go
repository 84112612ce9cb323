package interchange

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// ParsedData represents the raw data extracted from a file.
type ParsedData struct {
	Headers []string   // Column headers
	Rows    [][]string // Data rows, padded to the header width
	Format  Format
}

// Parse opens path and parses it with the format implied by its extension.
func Parse(path string) (*ParsedData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileIOError{Path: path, Err: err}
	}
	defer file.Close()

	data, err := Read(file, FormatFromPath(path))
	if err != nil {
		return nil, &FileIOError{Path: path, Err: err}
	}

	return data, nil
}

// Read parses tabular data with a header row. An empty source yields no
// headers and no rows.
func Read(reader io.Reader, format Format) (*ParsedData, error) {
	var records [][]string
	var err error

	switch format {
	case FormatCSV:
		records, err = readCSV(reader)
	case FormatXLSX:
		records, err = readXLSX(reader)
	default:
		return nil, &UnsupportedFormatError{Format: string(format)}
	}

	if err != nil {
		return nil, err
	}

	data := &ParsedData{Format: format, Rows: [][]string{}}
	if len(records) == 0 {
		return data, nil
	}

	data.Headers = records[0]
	for _, row := range records[1:] {
		if isBlank(row) {
			continue
		}
		data.Rows = append(data.Rows, pad(row, len(data.Headers)))
	}

	return data, nil
}

func readCSV(reader io.Reader) ([][]string, error) {
	buffered := bufio.NewReader(reader)

	// Excel prefixes "CSV UTF-8" files with a byte order mark.
	if r, _, err := buffered.ReadRune(); err == nil && r != '\ufeff' {
		_ = buffered.UnreadRune()
	}

	r := csv.NewReader(buffered)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}

	return records, nil
}

// readXLSX returns the raw cell values of the first sheet.
func readXLSX(reader io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("error reading spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %s: %w", sheets[0], err)
	}

	return rows, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// Spreadsheets drop trailing empty cells.
func pad(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
