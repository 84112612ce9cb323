package ledger

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GustavoCaso/zerobudget/internal/budget"
	"github.com/GustavoCaso/zerobudget/internal/interchange"
	"github.com/GustavoCaso/zerobudget/internal/storage"
	"github.com/GustavoCaso/zerobudget/internal/testutil"
	"github.com/GustavoCaso/zerobudget/internal/validator"
)

func setupLedger(t *testing.T) *Ledger {
	t.Helper()

	logger := testutil.TestLogger(t)
	return New(testutil.SetupTestStorage(t, logger), logger)
}

func TestAdd(t *testing.T) {
	l := setupLedger(t)
	ctx := context.Background()

	record, err := l.Add(ctx, storage.ExpenseTable, "Rent", "Housing", "3000")
	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.Equal(t, "Housing", record.Category)

	records, err := l.ListAll(ctx, storage.ExpenseTable)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
}

func TestAddRejectsInvalidInput(t *testing.T) {
	l := setupLedger(t)
	ctx := context.Background()

	_, err := l.Add(ctx, storage.IncomeTable, "123", "", "10")
	assert.True(t, validator.IsNameError(err))

	_, err = l.Add(ctx, storage.SavingTable, "Emergency", "", "abc")
	assert.True(t, validator.IsAmountError(err))

	for _, table := range storage.Tables {
		records, listErr := l.ListAll(ctx, table)
		require.NoError(t, listErr)
		assert.Empty(t, records, "rejected input must not be committed")
	}
}

func TestDeleteByID(t *testing.T) {
	l := setupLedger(t)
	ctx := context.Background()

	record, err := l.Add(ctx, storage.IncomeTable, "Salary", "", "5000")
	require.NoError(t, err)

	found, err := l.DeleteByID(ctx, storage.IncomeTable, record.ID+1)
	require.NoError(t, err)
	assert.False(t, found)

	total, err := l.Total(ctx, storage.IncomeTable)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(5000)))

	found, err = l.DeleteByID(ctx, storage.IncomeTable, record.ID)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestClear(t *testing.T) {
	l := setupLedger(t)
	ctx := context.Background()

	for _, amount := range []string{"10", "20.5"} {
		_, err := l.Add(ctx, storage.SavingTable, "Pension", "", amount)
		require.NoError(t, err)
	}

	cleared, err := l.Clear(ctx, storage.SavingTable)
	require.NoError(t, err)
	assert.EqualValues(t, 2, cleared)

	total, err := l.Total(ctx, storage.SavingTable)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	records, err := l.ListAll(ctx, storage.SavingTable)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStatusFollowsEveryMutation(t *testing.T) {
	l := setupLedger(t)
	ctx := context.Background()

	kind := func() budget.Kind {
		summary, err := l.Status(ctx)
		require.NoError(t, err)
		return summary.Status.Kind
	}

	assert.Equal(t, budget.Empty, kind())

	_, err := l.Add(ctx, storage.IncomeTable, "Salary", "", "5000")
	require.NoError(t, err)
	assert.Equal(t, budget.Unallocated, kind())

	_, err = l.Add(ctx, storage.ExpenseTable, "Rent", "Housing", "3000")
	require.NoError(t, err)
	_, err = l.Add(ctx, storage.SavingTable, "Emergency", "", "2000")
	require.NoError(t, err)
	assert.Equal(t, budget.Balanced, kind())

	food, err := l.Add(ctx, storage.ExpenseTable, "Food", "Groceries", "500")
	require.NoError(t, err)

	summary, err := l.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, budget.Shortage, summary.Status.Kind)
	assert.Equal(t, "⚠️ Budget limit crossed: ₹500.00 in shortage. Redo budget", summary.Status.Message("₹"))
	assert.True(t, summary.Totals.Expense.Equal(decimal.NewFromInt(3500)))

	_, err = l.DeleteByID(ctx, storage.ExpenseTable, food.ID)
	require.NoError(t, err)
	assert.Equal(t, budget.Balanced, kind())

	_, err = l.Clear(ctx, storage.IncomeTable)
	require.NoError(t, err)
	assert.Equal(t, budget.Shortage, kind())
}

func TestExportImportTable(t *testing.T) {
	source := setupLedger(t)
	target := setupLedger(t)
	ctx := context.Background()

	_, err := source.Add(ctx, storage.IncomeTable, "Salary", "", "5000")
	require.NoError(t, err)
	_, err = source.Add(ctx, storage.IncomeTable, "Freelance", "", "1250.75")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "income.xlsx")
	exported, err := source.ExportTable(ctx, storage.IncomeTable, path)
	require.NoError(t, err)
	assert.Equal(t, 2, exported)

	imported, err := target.ImportTable(ctx, storage.IncomeTable, path, interchange.Options{PreserveIDs: true})
	require.NoError(t, err)
	assert.EqualValues(t, 2, imported)

	want, err := source.Total(ctx, storage.IncomeTable)
	require.NoError(t, err)
	got, err := target.Total(ctx, storage.IncomeTable)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestImportData(t *testing.T) {
	l := setupLedger(t)
	ctx := context.Background()

	data, err := interchange.Read(strings.NewReader("id,name,amount\n1,Salary,5000\n"), interchange.FormatCSV)
	require.NoError(t, err)

	imported, err := l.ImportData(ctx, storage.IncomeTable, data, interchange.Options{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, imported)

	bad, err := interchange.Read(strings.NewReader("id,amount\n1,5000\n"), interchange.FormatCSV)
	require.NoError(t, err)

	_, err = l.ImportData(ctx, storage.IncomeTable, bad, interchange.Options{})
	var mismatch *interchange.SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestValidationHelpers(t *testing.T) {
	l := setupLedger(t)

	assert.False(t, l.IsValidName("123"))
	assert.False(t, l.IsValidName("  "))
	assert.True(t, l.IsValidName("Rent"))
	assert.False(t, l.IsValidAmount("abc"))
	assert.True(t, l.IsValidAmount("12.5"))
	assert.False(t, l.IsValidAmount(""))
}
