package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/zerobudget/internal/storage"
)

// Queries are fixed per table so no caller supplied identifier ever reaches SQL.
type tableQueries struct {
	insert       string
	insertWithID string
	deleteByID   string
	clear        string
	listAll      string
	amounts      string
}

var queries = map[storage.Table]tableQueries{
	storage.IncomeTable: {
		insert:       "INSERT INTO income(name, amount) VALUES(?, ?)",
		insertWithID: "INSERT INTO income(id, name, amount) VALUES(?, ?, ?)",
		deleteByID:   "DELETE FROM income WHERE id = ?",
		clear:        "DELETE FROM income",
		listAll:      "SELECT id, name, '', amount FROM income ORDER BY id",
		amounts:      "SELECT amount FROM income ORDER BY id",
	},
	storage.ExpenseTable: {
		insert:       "INSERT INTO expense(name, category, amount) VALUES(?, ?, ?)",
		insertWithID: "INSERT INTO expense(id, name, category, amount) VALUES(?, ?, ?, ?)",
		deleteByID:   "DELETE FROM expense WHERE id = ?",
		clear:        "DELETE FROM expense",
		listAll:      "SELECT id, name, category, amount FROM expense ORDER BY id",
		amounts:      "SELECT amount FROM expense ORDER BY id",
	},
	storage.SavingTable: {
		insert:       "INSERT INTO saving(name, amount) VALUES(?, ?)",
		insertWithID: "INSERT INTO saving(id, name, amount) VALUES(?, ?, ?)",
		deleteByID:   "DELETE FROM saving WHERE id = ?",
		clear:        "DELETE FROM saving",
		listAll:      "SELECT id, name, '', amount FROM saving ORDER BY id",
		amounts:      "SELECT amount FROM saving ORDER BY id",
	},
}

func queriesFor(operation string, table storage.Table) (tableQueries, error) {
	q, ok := queries[table]
	if !ok {
		return tableQueries{}, &storage.PersistenceError{
			Operation: operation,
			Table:     table,
			Err:       fmt.Errorf("no schema for %s", table),
		}
	}
	return q, nil
}

func persistenceError(operation string, table storage.Table, err error) error {
	return &storage.PersistenceError{Operation: operation, Table: table, Err: err}
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertArgs(table storage.Table, record storage.Record, withID bool) []any {
	args := []any{}
	if withID {
		args = append(args, record.ID)
	}
	args = append(args, record.Name)
	if table.HasCategory() {
		args = append(args, record.Category)
	}
	return append(args, record.Amount.InexactFloat64())
}

func insertRecord(ctx context.Context, db execer, q tableQueries, table storage.Table, record storage.Record, withID bool) (int64, error) {
	query := q.insert
	if withID {
		query = q.insertWithID
	}

	result, err := db.ExecContext(ctx, query, insertArgs(table, record, withID)...)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

func (s *sqliteStorage) Insert(ctx context.Context, table storage.Table, record storage.Record) (int64, error) {
	q, err := queriesFor("insert", table)
	if err != nil {
		return 0, err
	}

	id, err := insertRecord(ctx, s.db, q, table, record, false)
	if err != nil {
		return 0, persistenceError("insert", table, err)
	}

	return id, nil
}

func (s *sqliteStorage) InsertRecords(
	ctx context.Context,
	table storage.Table,
	records []storage.Record,
	preserveIDs bool,
) (int64, error) {
	q, err := queriesFor("import", table)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, persistenceError("import", table, err)
	}

	var inserted int64
	for i, record := range records {
		_, err = insertRecord(ctx, tx, q, table, record, preserveIDs)
		if err != nil {
			_ = tx.Rollback()
			return 0, persistenceError("import", table, fmt.Errorf("record %d: %w", i+1, err))
		}
		inserted++
	}

	if err = tx.Commit(); err != nil {
		_ = tx.Rollback()
		return 0, persistenceError("import", table, fmt.Errorf("failed to commit transaction: %w", err))
	}

	return inserted, nil
}

func (s *sqliteStorage) DeleteByID(ctx context.Context, table storage.Table, id int64) (int64, error) {
	q, err := queriesFor("delete", table)
	if err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, q.deleteByID, id)
	if err != nil {
		return 0, persistenceError("delete", table, err)
	}

	return result.RowsAffected()
}

func (s *sqliteStorage) Clear(ctx context.Context, table storage.Table) (int64, error) {
	q, err := queriesFor("clear", table)
	if err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, q.clear)
	if err != nil {
		return 0, persistenceError("clear", table, err)
	}

	return result.RowsAffected()
}

func (s *sqliteStorage) ListAll(ctx context.Context, table storage.Table) ([]storage.Record, error) {
	q, err := queriesFor("list", table)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, q.listAll)
	if err != nil {
		return nil, persistenceError("list", table, err)
	}
	defer rows.Close()

	records := []storage.Record{}

	for rows.Next() {
		record, recordErr := recordFromRow(rows.Scan)
		if recordErr != nil {
			return nil, persistenceError("list", table, recordErr)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, persistenceError("list", table, err)
	}

	return records, nil
}

func (s *sqliteStorage) Amounts(ctx context.Context, table storage.Table) ([]decimal.Decimal, error) {
	q, err := queriesFor("total", table)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, q.amounts)
	if err != nil {
		return nil, persistenceError("total", table, err)
	}
	defer rows.Close()

	amounts := []decimal.Decimal{}

	for rows.Next() {
		var amount float64
		if err = rows.Scan(&amount); err != nil {
			return nil, persistenceError("total", table, err)
		}
		amounts = append(amounts, decimal.NewFromFloat(amount))
	}

	if err = rows.Err(); err != nil {
		return nil, persistenceError("total", table, err)
	}

	return amounts, nil
}

func recordFromRow(scan func(dest ...any) error) (storage.Record, error) {
	var id int64
	var name, category string
	var amount float64

	if err := scan(&id, &name, &category, &amount); err != nil {
		return storage.Record{}, err
	}

	return storage.NewRecord(id, name, category, decimal.NewFromFloat(amount)), nil
}
