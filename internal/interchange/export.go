package interchange

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/GustavoCaso/zerobudget/internal/storage"
)

const base10 = 10

type recordLister interface {
	ListAll(ctx context.Context, table storage.Table) ([]storage.Record, error)
}

// Export writes every record of table, ids included, to path. The format is
// taken from the file extension.
func Export(ctx context.Context, store recordLister, table storage.Table, path string) (int, error) {
	records, err := store.ListAll(ctx, table)
	if err != nil {
		return 0, err
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, &FileIOError{Path: path, Err: err}
	}

	writeErr := Write(file, FormatFromPath(path), table, records)
	closeErr := file.Close()

	if err = errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(path)
		return 0, &FileIOError{Path: path, Err: err}
	}

	return len(records), nil
}

// Write renders records as a header row followed by one row per record, in
// the natural column order of table.
func Write(writer io.Writer, format Format, table storage.Table, records []storage.Record) error {
	switch format {
	case FormatCSV:
		return writeCSV(writer, table, records)
	case FormatXLSX:
		return writeXLSX(writer, table, records)
	default:
		return &UnsupportedFormatError{Format: string(format)}
	}
}

func recordCells(table storage.Table, record storage.Record) []string {
	cells := []string{strconv.FormatInt(record.ID, base10), record.Name}
	if table.HasCategory() {
		cells = append(cells, record.Category)
	}
	return append(cells, record.Amount.String())
}

func writeCSV(writer io.Writer, table storage.Table, records []storage.Record) error {
	w := csv.NewWriter(writer)

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, table.Columns())
	for _, record := range records {
		rows = append(rows, recordCells(table, record))
	}

	// WriteAll flushes
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}

func writeXLSX(writer io.Writer, table storage.Table, records []storage.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := table.Title()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, 0, len(table.Columns()))
	for _, column := range table.Columns() {
		header = append(header, column)
	}

	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, record := range records {
		row := []interface{}{record.ID, record.Name}
		if table.HasCategory() {
			row = append(row, record.Category)
		}
		row = append(row, record.Amount.InexactFloat64())

		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}

	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	if err = f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}

	return nil
}
