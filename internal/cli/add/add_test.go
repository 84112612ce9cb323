package add

import (
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/GustavoCaso/zerobudget/internal/cli/clitest"
	"github.com/GustavoCaso/zerobudget/internal/storage"
	"github.com/GustavoCaso/zerobudget/internal/validator"
)

func TestSetFlags(t *testing.T) {
	cmd := NewCommand()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)

	for _, name := range []string{"t", "n", "c", "a"} {
		if fs.Lookup(name) == nil {
			t.Errorf("Expected flag %q to be registered", name)
		}
	}
}

func TestRun(t *testing.T) {
	env, out := clitest.NewEnv(t)
	ctx := context.Background()

	cmd := NewCommand()
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse([]string{"-t", "expense", "-n", "Rent", "-c", "Housing", "-a", "3000"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if err := cmd.Run(ctx, env); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Added expense #1 Rent: ₹3,000.00") {
		t.Errorf("Unexpected output: %q", output)
	}
	if !strings.Contains(output, "in shortage") {
		t.Errorf("Expected status line in output, got %q", output)
	}

	records, err := env.Ledger.ListAll(ctx, storage.ExpenseTable)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(records) != 1 || records[0].Category != "Housing" {
		t.Errorf("Unexpected records: %+v", records)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(error) bool
	}{
		{
			name:  "missing table",
			args:  []string{"-n", "Rent", "-a", "10"},
			check: func(err error) bool { return err != nil && strings.Contains(err.Error(), "-t") },
		},
		{
			name:  "unknown table",
			args:  []string{"-t", "debts", "-n", "Rent", "-a", "10"},
			check: func(err error) bool { return err != nil && strings.Contains(err.Error(), "debts") },
		},
		{
			name:  "numeric name",
			args:  []string{"-t", "income", "-n", "42", "-a", "10"},
			check: validator.IsNameError,
		},
		{
			name:  "invalid amount",
			args:  []string{"-t", "saving", "-n", "Pension", "-a", "ten"},
			check: validator.IsAmountError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, _ := clitest.NewEnv(t)

			cmd := NewCommand()
			fs := flag.NewFlagSet("add", flag.ContinueOnError)
			cmd.SetFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			err := cmd.Run(context.Background(), env)
			if !tt.check(err) {
				t.Errorf("Run() unexpected error = %v", err)
			}
		})
	}
}
