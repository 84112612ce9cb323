package deletecmd

import (
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/GustavoCaso/zerobudget/internal/cli/clitest"
	"github.com/GustavoCaso/zerobudget/internal/storage"
)

func TestDescription(t *testing.T) {
	cmd := NewCommand()
	if desc := cmd.Description(); desc != "Deletes a single record by id" {
		t.Errorf("Description() = %v, want %v", desc, "Deletes a single record by id")
	}
}

func TestSetFlags(t *testing.T) {
	cmd := NewCommand()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)

	idFlag := fs.Lookup("id")
	if idFlag == nil {
		t.Fatal("Expected id flag to be registered")
	}
	if idFlag.DefValue != "0" {
		t.Errorf("id default value = %q, want 0", idFlag.DefValue)
	}
	if fs.Lookup("t") == nil {
		t.Error("Expected table flag to be registered")
	}
}

func TestRun(t *testing.T) {
	env, out := clitest.NewEnv(t)
	ctx := context.Background()

	salary, err := env.Ledger.Add(ctx, storage.IncomeTable, "Salary", "", "5000")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err = env.Ledger.Add(ctx, storage.IncomeTable, "Bonus", "", "200"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	run := func(args ...string) error {
		cmd := NewCommand()
		fs := flag.NewFlagSet("delete", flag.ContinueOnError)
		cmd.SetFlags(fs)
		if parseErr := fs.Parse(args); parseErr != nil {
			t.Fatalf("Parse() error = %v", parseErr)
		}
		return cmd.Run(ctx, env)
	}

	if err = run("-t", "income"); err != errMissingID {
		t.Errorf("Expected missing id error, got %v", err)
	}

	if err = run("-t", "income", "-id", "99"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "No income record with id 99") {
		t.Errorf("Unexpected output: %q", out.String())
	}

	out.Reset()
	if err = run("-t", "income", "-id", "1"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Deleted income #1") {
		t.Errorf("Unexpected output: %q", out.String())
	}

	records, err := env.Ledger.ListAll(ctx, storage.IncomeTable)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(records) != 1 || records[0].ID == salary.ID {
		t.Errorf("Expected only the bonus to remain, got %+v", records)
	}
}
