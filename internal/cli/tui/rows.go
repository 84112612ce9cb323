package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"github.com/GustavoCaso/zerobudget/internal/storage"
	"github.com/GustavoCaso/zerobudget/internal/util"
)

var amountColors = map[storage.Table]string{
	storage.IncomeTable:  "green",
	storage.ExpenseTable: "red",
	storage.SavingTable:  "blue",
}

func toRow(kind storage.Table, record storage.Record, currency string) table.Row {
	row := table.Row{strconv.FormatInt(record.ID, 10), record.Name}
	if kind.HasCategory() {
		row = append(row, record.Category)
	}

	amount := util.FormatAmount(record.Amount, currency, ",", ".")
	return append(row, util.ColorOutput(amount, amountColors[kind]))
}
