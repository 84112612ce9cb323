package interchange

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/zerobudget/internal/storage"
	"github.com/GustavoCaso/zerobudget/internal/validator"
)

type Options struct {
	// PreserveIDs writes the id column of the file instead of letting the
	// store assign fresh ids. Colliding ids fail the whole import.
	PreserveIDs bool
}

type recordInserter interface {
	InsertRecords(ctx context.Context, table storage.Table, records []storage.Record, preserveIDs bool) (int64, error)
}

// Import loads path into table. Nothing is written unless the column set
// matches and every row validates; the rows are then committed together.
func Import(ctx context.Context, store recordInserter, table storage.Table, path string, opts Options) (int64, error) {
	data, err := Parse(path)
	if err != nil {
		return 0, err
	}

	return ImportData(ctx, store, table, data, opts)
}

// ImportFrom is Import for an already opened source.
func ImportFrom(
	ctx context.Context,
	store recordInserter,
	table storage.Table,
	reader io.Reader,
	format Format,
	opts Options,
) (int64, error) {
	data, err := Read(reader, format)
	if err != nil {
		return 0, err
	}

	return ImportData(ctx, store, table, data, opts)
}

// ImportData stores already parsed data.
func ImportData(ctx context.Context, store recordInserter, table storage.Table, data *ParsedData, opts Options) (int64, error) {
	records, err := Records(table, data, opts)
	if err != nil {
		return 0, err
	}

	if len(records) == 0 {
		return 0, nil
	}

	return store.InsertRecords(ctx, table, records, opts.PreserveIDs)
}

// Records checks the columns of data and turns every row into a validated
// record.
func Records(table storage.Table, data *ParsedData, opts Options) ([]storage.Record, error) {
	index, err := checkColumns(table, data.Headers)
	if err != nil {
		return nil, err
	}

	records := make([]storage.Record, 0, len(data.Rows))

	for i, row := range data.Rows {
		// header is row 1
		rowNumber := i + 2

		category := ""
		if table.HasCategory() {
			category = row[index["category"]]
		}

		record, validationErr := validator.Validate(table, row[index["name"]], category, row[index["amount"]])
		if validationErr != nil {
			return nil, &RowError{Row: rowNumber, Err: validationErr}
		}

		if opts.PreserveIDs {
			id, idErr := parseID(row[index["id"]])
			if idErr != nil {
				return nil, &RowError{Row: rowNumber, Err: idErr}
			}
			record.ID = id
		}

		records = append(records, record)
	}

	return records, nil
}

// parseID accepts integral values, including the "7.0" some spreadsheet tools
// write for whole numbers.
func parseID(value string) (int64, error) {
	id, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || !id.IsInteger() || id.Sign() <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", value)
	}

	return id.IntPart(), nil
}
