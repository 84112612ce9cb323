package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"

	"github.com/GustavoCaso/zerobudget/internal/storage"
	"github.com/GustavoCaso/zerobudget/internal/util"
)

var ErrMissingTable = errors.New("you must provide a table with -t (income, expense or saving)")

// TableFlag registers the -t flag shared by every table scoped command.
func TableFlag(fs *flag.FlagSet, target *string) {
	fs.StringVar(target, "t", "", "table to use: income, expense or saving")
}

func ParseTableFlag(value string) (storage.Table, error) {
	if value == "" {
		return 0, ErrMissingTable
	}
	return storage.ParseTable(value)
}

// PrintRecords writes records as a bordered table in the natural column
// order of t.
func PrintRecords(out io.Writer, t storage.Table, records []storage.Record, currency string) {
	tbl := table.New().Headers(t.Columns()...)

	for _, record := range records {
		row := []string{strconv.FormatInt(record.ID, 10), record.Name}
		if t.HasCategory() {
			row = append(row, record.Category)
		}
		row = append(row, util.FormatAmount(record.Amount, currency, ",", "."))
		tbl.Row(row...)
	}

	fmt.Fprintln(out, tbl.Render())
}
