package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GustavoCaso/zerobudget/internal/storage"
	"github.com/GustavoCaso/zerobudget/internal/testutil"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name   string
		totals Totals
		kind   Kind
		amount string
	}{
		{
			name:   "all zero is empty",
			totals: Totals{Income: decimal.Zero, Expense: decimal.Zero, Saving: decimal.Zero},
			kind:   Empty,
			amount: "0",
		},
		{
			name:   "fully allocated",
			totals: Totals{Income: d("5000"), Expense: d("3000"), Saving: d("2000")},
			kind:   Balanced,
			amount: "0",
		},
		{
			name:   "expenses only is a shortage",
			totals: Totals{Income: decimal.Zero, Expense: d("10"), Saving: decimal.Zero},
			kind:   Shortage,
			amount: "10",
		},
		{
			name:   "over allocated",
			totals: Totals{Income: d("5000"), Expense: d("3500"), Saving: d("2000")},
			kind:   Shortage,
			amount: "500",
		},
		{
			name:   "money left to allocate",
			totals: Totals{Income: d("100"), Expense: d("33.333"), Saving: d("0")},
			kind:   Unallocated,
			amount: "66.67",
		},
		{
			name:   "negative income and expense cancel",
			totals: Totals{Income: d("-5"), Expense: d("-5"), Saving: d("0")},
			kind:   Balanced,
			amount: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := StatusOf(tt.totals)
			assert.Equal(t, tt.kind, status.Kind)
			assert.True(t, status.Amount.Equal(d(tt.amount)), "amount %s, want %s", status.Amount, tt.amount)
		})
	}
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "📓 Empty notebook. No data entered yet.", Status{Kind: Empty}.Message("₹"))
	assert.Equal(t, "✅ Budget Completed: Well done!", Status{Kind: Balanced}.Message("₹"))
	assert.Equal(t,
		"⚠️ Budget limit crossed: ₹500.00 in shortage. Redo budget",
		Status{Kind: Shortage, Amount: d("500")}.Message("₹"),
	)
	assert.Equal(t,
		"⚠️ Budget incomplete: $12.50 left to allocate.",
		Status{Kind: Unallocated, Amount: d("12.5")}.Message("$"),
	)
}

func TestSum(t *testing.T) {
	assert.True(t, Sum(nil).Equal(decimal.Zero))
	assert.Equal(t, "0.3", Sum([]decimal.Decimal{d("0.1"), d("0.2")}).String())
	assert.Equal(t, "-1.5", Sum([]decimal.Decimal{d("1"), d("-2.5")}).String())
}

type failingReader struct{}

func (failingReader) Amounts(context.Context, storage.Table) ([]decimal.Decimal, error) {
	return nil, &storage.PersistenceError{Operation: "total", Err: errors.New("disk on fire")}
}

func TestComputePropagatesErrors(t *testing.T) {
	_, err := Compute(context.Background(), failingReader{})

	var persistenceErr *storage.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
}

func TestTotalsFromStorage(t *testing.T) {
	s := testutil.SetupTestStorage(t, testutil.TestLogger(t))
	ctx := context.Background()

	total, err := Total(ctx, s, storage.IncomeTable)
	require.NoError(t, err)
	assert.True(t, total.IsZero(), "empty table total must be exactly zero")

	inserted := []string{"0.1", "0.2", "1000.35", "-50"}
	expected := decimal.Zero
	for _, amount := range inserted {
		_, err = s.Insert(ctx, storage.IncomeTable, storage.NewRecord(0, "Salary", "", d(amount)))
		require.NoError(t, err)
		expected = expected.Add(d(amount))
	}

	total, err = Total(ctx, s, storage.IncomeTable)
	require.NoError(t, err)
	assert.True(t, total.Equal(expected), "total %s, want %s", total, expected)
}

func TestScenario(t *testing.T) {
	s := testutil.SetupTestStorage(t, testutil.TestLogger(t))
	ctx := context.Background()

	status := func() Status {
		totals, err := Compute(ctx, s)
		require.NoError(t, err)
		return StatusOf(totals)
	}

	assert.Equal(t, Empty, status().Kind)

	_, err := s.Insert(ctx, storage.IncomeTable, storage.NewRecord(0, "Salary", "", d("5000")))
	require.NoError(t, err)
	_, err = s.Insert(ctx, storage.ExpenseTable, storage.NewRecord(0, "Rent", "Housing", d("3000")))
	require.NoError(t, err)
	_, err = s.Insert(ctx, storage.SavingTable, storage.NewRecord(0, "Emergency", "", d("2000")))
	require.NoError(t, err)

	assert.Equal(t, Balanced, status().Kind)

	_, err = s.Insert(ctx, storage.ExpenseTable, storage.NewRecord(0, "Food", "Groceries", d("500")))
	require.NoError(t, err)

	got := status()
	assert.Equal(t, Shortage, got.Kind)
	assert.Equal(t, "500.00", got.Amount.StringFixed(2))
}
