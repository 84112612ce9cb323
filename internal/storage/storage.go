package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/zerobudget/internal/logger"
)

// Table is one of the three fixed ledger categories.
type Table int

const (
	IncomeTable Table = iota
	ExpenseTable
	SavingTable
)

// Tables lists every table in display order.
var Tables = []Table{IncomeTable, ExpenseTable, SavingTable}

func (t Table) String() string {
	switch t {
	case IncomeTable:
		return "income"
	case ExpenseTable:
		return "expense"
	case SavingTable:
		return "saving"
	default:
		return fmt.Sprintf("table(%d)", int(t))
	}
}

// Title is the capitalized name used in user facing messages.
func (t Table) Title() string {
	s := t.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Valid reports whether t is one of the known tables.
func (t Table) Valid() bool {
	return t >= IncomeTable && t <= SavingTable
}

// HasCategory reports whether records of t carry a category column.
func (t Table) HasCategory() bool {
	return t == ExpenseTable
}

// Columns returns the natural column order of the table.
func (t Table) Columns() []string {
	if t.HasCategory() {
		return []string{"id", "name", "category", "amount"}
	}
	return []string{"id", "name", "amount"}
}

type UnknownTableError struct {
	Name string
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("unknown table %q: expected one of income, expense, saving", e.Name)
}

// ParseTable maps user input to a Table.
func ParseTable(name string) (Table, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "income":
		return IncomeTable, nil
	case "expense", "expenses":
		return ExpenseTable, nil
	case "saving", "savings":
		return SavingTable, nil
	default:
		return 0, &UnknownTableError{Name: name}
	}
}

// Record is a single ledger line item. Category is only meaningful for the
// expense table.
type Record struct {
	ID       int64
	Name     string
	Category string
	Amount   decimal.Decimal
}

func NewRecord(id int64, name, category string, amount decimal.Decimal) Record {
	return Record{
		ID:       id,
		Name:     name,
		Category: category,
		Amount:   amount,
	}
}

// PersistenceError wraps any failure coming from the storage layer.
type PersistenceError struct {
	Operation string
	Table     Table
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Table, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

type Storage interface {
	// Migrations
	ApplyMigrations(ctx context.Context, logger *logger.Logger) error

	// Records
	Insert(ctx context.Context, table Table, record Record) (int64, error)
	InsertRecords(ctx context.Context, table Table, records []Record, preserveIDs bool) (int64, error)
	DeleteByID(ctx context.Context, table Table, id int64) (int64, error)
	Clear(ctx context.Context, table Table) (int64, error)
	ListAll(ctx context.Context, table Table) ([]Record, error)
	Amounts(ctx context.Context, table Table) ([]decimal.Decimal, error)

	// Resource management
	Close() error
}
