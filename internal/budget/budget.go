package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/zerobudget/internal/storage"
)

type Kind int

const (
	Empty Kind = iota
	Balanced
	Shortage
	Unallocated
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Balanced:
		return "balanced"
	case Shortage:
		return "shortage"
	case Unallocated:
		return "unallocated"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

const displayPlaces = 2

type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Saving  decimal.Decimal
}

// Budget is what is left once expenses and savings are taken from income.
func (t Totals) Budget() decimal.Decimal {
	return t.Income.Sub(t.Expense.Add(t.Saving))
}

// Of returns the total for a single table.
func (t Totals) Of(table storage.Table) decimal.Decimal {
	switch table {
	case storage.IncomeTable:
		return t.Income
	case storage.ExpenseTable:
		return t.Expense
	case storage.SavingTable:
		return t.Saving
	default:
		return decimal.Zero
	}
}

// Status is the derived budget completion state. Amount is zero for Empty and
// Balanced, the missing amount for Shortage and the amount left to allocate
// for Unallocated, always rounded to two places.
type Status struct {
	Kind   Kind
	Amount decimal.Decimal
}

// StatusOf derives the status from the three totals. It keeps no state so it
// is safe to call after every mutation.
func StatusOf(totals Totals) Status {
	if totals.Income.IsZero() && totals.Expense.IsZero() && totals.Saving.IsZero() {
		return Status{Kind: Empty, Amount: decimal.Zero}
	}

	budget := totals.Budget()

	switch budget.Sign() {
	case 0:
		return Status{Kind: Balanced, Amount: decimal.Zero}
	case -1:
		return Status{Kind: Shortage, Amount: budget.Abs().Round(displayPlaces)}
	default:
		return Status{Kind: Unallocated, Amount: budget.Round(displayPlaces)}
	}
}

// Message renders the status the way it is shown to the user.
func (s Status) Message(currency string) string {
	switch s.Kind {
	case Empty:
		return "📓 Empty notebook. No data entered yet."
	case Balanced:
		return "✅ Budget Completed: Well done!"
	case Shortage:
		return fmt.Sprintf("⚠️ Budget limit crossed: %s%s in shortage. Redo budget",
			currency, s.Amount.StringFixed(displayPlaces))
	case Unallocated:
		return fmt.Sprintf("⚠️ Budget incomplete: %s%s left to allocate.",
			currency, s.Amount.StringFixed(displayPlaces))
	default:
		return s.Kind.String()
	}
}

// Sum adds amounts using exact decimal arithmetic. An empty slice sums to 0.
func Sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total
}

type amountReader interface {
	Amounts(ctx context.Context, table storage.Table) ([]decimal.Decimal, error)
}

// Total sums the amount column of a table.
func Total(ctx context.Context, store amountReader, table storage.Table) (decimal.Decimal, error) {
	amounts, err := store.Amounts(ctx, table)
	if err != nil {
		return decimal.Zero, err
	}

	return Sum(amounts), nil
}

// Compute recomputes the three totals from the full tables.
func Compute(ctx context.Context, store amountReader) (Totals, error) {
	var totals Totals
	var err error

	if totals.Income, err = Total(ctx, store, storage.IncomeTable); err != nil {
		return Totals{}, err
	}

	if totals.Expense, err = Total(ctx, store, storage.ExpenseTable); err != nil {
		return Totals{}, err
	}

	if totals.Saving, err = Total(ctx, store, storage.SavingTable); err != nil {
		return Totals{}, err
	}

	return totals, nil
}
