package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/zerobudget/internal/storage"
)

// mockCommand implements the Command interface for testing.
type mockCommand struct {
	description string
	runError    error
}

func (c mockCommand) SetFlags(fset *flag.FlagSet) {
	fset.String("test", "", "test flag")
}

func (c mockCommand) Description() string {
	return c.description
}

func (c mockCommand) Run(_ context.Context, _ Env) error {
	return c.runError
}

func TestCommandInterface(t *testing.T) {
	cmd := mockCommand{description: "Test command"}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if fs.Lookup("test") == nil {
		t.Error("SetFlags() did not register the test flag")
	}

	if desc := cmd.Description(); desc != "Test command" {
		t.Errorf("Description() = %v, want %v", desc, "Test command")
	}

	if err := cmd.Run(context.Background(), Env{}); err != nil {
		t.Errorf("Run() error = %v, want nil", err)
	}

	failing := mockCommand{runError: errors.New("boom")}
	if err := failing.Run(context.Background(), Env{}); err == nil || err.Error() != "boom" {
		t.Errorf("Run() error = %v, want boom", err)
	}
}

func TestParseTableFlag(t *testing.T) {
	if _, err := ParseTableFlag(""); !errors.Is(err, ErrMissingTable) {
		t.Errorf("Expected ErrMissingTable, got %v", err)
	}

	table, err := ParseTableFlag("Expenses")
	if err != nil {
		t.Fatalf("ParseTableFlag() error = %v", err)
	}
	if table != storage.ExpenseTable {
		t.Errorf("ParseTableFlag() = %v, want expense", table)
	}

	var unknown *storage.UnknownTableError
	if _, err = ParseTableFlag("debts"); !errors.As(err, &unknown) {
		t.Errorf("Expected UnknownTableError, got %v", err)
	}
}

func TestPrintRecords(t *testing.T) {
	var buf bytes.Buffer
	PrintRecords(&buf, storage.ExpenseTable, []storage.Record{
		storage.NewRecord(3, "Rent", "Housing", decimal.NewFromInt(3000)),
	}, "₹")

	output := buf.String()
	for _, want := range []string{"id", "name", "category", "amount", "Rent", "Housing", "₹3,000.00"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
}
