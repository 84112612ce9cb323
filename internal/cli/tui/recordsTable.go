package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GustavoCaso/zerobudget/internal/storage"
)

type recordsTable struct {
	kind     storage.Table
	currency string
	records  []storage.Record
	table    table.Model
}

func newRecordsTable(kind storage.Table, currency string, width int) recordsTable {
	t := table.New(
		table.WithColumns(createRecordsColumns(kind, width)),
		table.WithFocused(true),
	)

	return recordsTable{
		kind:     kind,
		currency: currency,
		table:    t,
	}
}

func (r recordsTable) SetRecords(records []storage.Record) recordsTable {
	rows := make([]table.Row, len(records))
	for i, record := range records {
		rows[i] = toRow(r.kind, record, r.currency)
	}

	t := r.table
	t.SetRows(rows)
	if last := len(rows) - 1; last >= 0 && t.Cursor() > last {
		t.SetCursor(last)
	}

	return recordsTable{
		kind:     r.kind,
		currency: r.currency,
		records:  records,
		table:    t,
	}
}

// Selected returns the record under the cursor.
func (r recordsTable) Selected() (storage.Record, bool) {
	cursor := r.table.Cursor()
	if cursor < 0 || cursor >= len(r.records) {
		return storage.Record{}, false
	}
	return r.records[cursor], true
}

func (r recordsTable) Len() int {
	return len(r.records)
}

func (r recordsTable) Update(msg tea.Msg) (recordsTable, tea.Cmd) {
	var cmd tea.Cmd
	r.table.Focus()
	r.table, cmd = r.table.Update(msg)
	return r, cmd
}

func (r recordsTable) UpdateDimensions(width, height int) recordsTable {
	t := r.table
	t.SetColumns(createRecordsColumns(r.kind, width))
	t.SetWidth(width)
	t.SetHeight(height)

	return recordsTable{
		kind:     r.kind,
		currency: r.currency,
		records:  r.records,
		table:    t,
	}
}

func (r recordsTable) View() string {
	return r.table.View()
}

func createRecordsColumns(kind storage.Table, width int) []table.Column {
	names := kind.Columns()
	w := width / len(names)

	columns := make([]table.Column, len(names))
	for i, name := range names {
		columns[i] = table.Column{Title: name, Width: w}
	}
	return columns
}
