// Package ledger is the entry point every surface (CLI, TUI, HTTP) uses to
// read and change the budget. It validates input, talks to the store and
// recomputes totals on demand. It never asks for confirmation: callers own
// that decision.
package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/zerobudget/internal/budget"
	"github.com/GustavoCaso/zerobudget/internal/interchange"
	"github.com/GustavoCaso/zerobudget/internal/logger"
	"github.com/GustavoCaso/zerobudget/internal/storage"
	"github.com/GustavoCaso/zerobudget/internal/validator"
)

type Ledger struct {
	storage storage.Storage
	logger  *logger.Logger
}

func New(s storage.Storage, l *logger.Logger) *Ledger {
	return &Ledger{
		storage: s,
		logger:  l.With("component", "ledger"),
	}
}

// Summary is a snapshot of the totals and the status derived from them.
type Summary struct {
	Totals budget.Totals
	Status budget.Status
}

func (l *Ledger) IsValidName(s string) bool {
	return validator.IsValidName(s)
}

func (l *Ledger) IsValidAmount(s string) bool {
	return validator.IsValidAmount(s)
}

// Add validates raw user input and inserts the resulting record.
func (l *Ledger) Add(ctx context.Context, table storage.Table, name, category, amount string) (storage.Record, error) {
	record, err := validator.Validate(table, name, category, amount)
	if err != nil {
		l.logger.Debug("Rejected input", "table", table.String(), "error", err)
		return storage.Record{}, err
	}

	id, err := l.Insert(ctx, table, record)
	if err != nil {
		return storage.Record{}, err
	}

	record.ID = id
	return record, nil
}

// Insert stores an already validated record and returns its new id.
func (l *Ledger) Insert(ctx context.Context, table storage.Table, record storage.Record) (int64, error) {
	id, err := l.storage.Insert(ctx, table, record)
	if err != nil {
		l.logger.Error("Failed to insert record", "table", table.String(), "error", err)
		return 0, err
	}

	l.logger.Info("Record inserted", "table", table.String(), "id", id, "amount", record.Amount.String())
	return id, nil
}

// DeleteByID removes one record. A missing id is not an error; the returned
// bool reports whether a record was removed.
func (l *Ledger) DeleteByID(ctx context.Context, table storage.Table, id int64) (bool, error) {
	deleted, err := l.storage.DeleteByID(ctx, table, id)
	if err != nil {
		l.logger.Error("Failed to delete record", "table", table.String(), "id", id, "error", err)
		return false, err
	}

	l.logger.Info("Record deleted", "table", table.String(), "id", id, "found", deleted > 0)
	return deleted > 0, nil
}

// Clear removes every record of table.
func (l *Ledger) Clear(ctx context.Context, table storage.Table) (int64, error) {
	cleared, err := l.storage.Clear(ctx, table)
	if err != nil {
		l.logger.Error("Failed to clear table", "table", table.String(), "error", err)
		return 0, err
	}

	l.logger.Info("Table cleared", "table", table.String(), "records", cleared)
	return cleared, nil
}

func (l *Ledger) ListAll(ctx context.Context, table storage.Table) ([]storage.Record, error) {
	return l.storage.ListAll(ctx, table)
}

func (l *Ledger) Total(ctx context.Context, table storage.Table) (decimal.Decimal, error) {
	return budget.Total(ctx, l.storage, table)
}

func (l *Ledger) Totals(ctx context.Context) (budget.Totals, error) {
	return budget.Compute(ctx, l.storage)
}

// Status recomputes the three totals and derives the budget status.
func (l *Ledger) Status(ctx context.Context) (Summary, error) {
	totals, err := l.Totals(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summary{Totals: totals, Status: budget.StatusOf(totals)}, nil
}

// ExportTable writes table to path, picking the format from its extension.
func (l *Ledger) ExportTable(ctx context.Context, table storage.Table, path string) (int, error) {
	exported, err := interchange.Export(ctx, l.storage, table, path)
	if err != nil {
		l.logger.Error("Export failed", "table", table.String(), "path", path, "error", err)
		return 0, err
	}

	l.logger.Info("Table exported", "table", table.String(), "path", path, "records", exported)
	return exported, nil
}

// ImportTable loads path into table as a single transaction.
func (l *Ledger) ImportTable(ctx context.Context, table storage.Table, path string, opts interchange.Options) (int64, error) {
	imported, err := interchange.Import(ctx, l.storage, table, path, opts)
	if err != nil {
		l.logger.Error("Import failed", "table", table.String(), "path", path, "error", err)
		return 0, err
	}

	l.logger.Info("Table imported", "table", table.String(), "path", path, "records", imported)
	return imported, nil
}

// ImportData loads already parsed rows into table as a single transaction.
func (l *Ledger) ImportData(ctx context.Context, table storage.Table, data *interchange.ParsedData, opts interchange.Options) (int64, error) {
	imported, err := interchange.ImportData(ctx, l.storage, table, data, opts)
	if err != nil {
		l.logger.Error("Import failed", "table", table.String(), "format", string(data.Format), "error", err)
		return 0, err
	}

	l.logger.Info("Table imported", "table", table.String(), "format", string(data.Format), "records", imported)
	return imported, nil
}
