package cli

import (
	"fmt"
	"io"

	"github.com/GustavoCaso/zerobudget/internal/ledger"
	"github.com/GustavoCaso/zerobudget/internal/storage"
	"github.com/GustavoCaso/zerobudget/internal/util"
)

const Formula = "Formula: Income - (Expenses + Savings) = Zero Budget"

var totalLabels = map[storage.Table]string{
	storage.IncomeTable:  "💰 Total Income",
	storage.ExpenseTable: "💸 Total Expenses",
	storage.SavingTable:  "🏦 Total Savings",
}

func TotalLabel(t storage.Table) string {
	return totalLabels[t]
}

// PrintStatus writes the colored budget status line.
func PrintStatus(out io.Writer, summary ledger.Summary, currency string) {
	status := summary.Status
	fmt.Fprintln(out, util.ColorOutput(status.Message(currency), util.StatusColor(status.Kind.String()), "bold"))
}

// PrintSummary writes the three totals, the formula and the status.
func PrintSummary(out io.Writer, summary ledger.Summary, currency string) {
	for _, t := range storage.Tables {
		fmt.Fprintf(out, "%s: %s\n", TotalLabel(t), util.FormatAmount(summary.Totals.Of(t), currency, ",", "."))
	}
	fmt.Fprintln(out, Formula)
	PrintStatus(out, summary, currency)
}
