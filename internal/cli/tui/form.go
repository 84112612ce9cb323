package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GustavoCaso/zerobudget/internal/storage"
)

const inputCharLimit = 64

var (
	labelStyle   = lipgloss.NewStyle().Width(10).Bold(true)
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type formField struct {
	label string
	input textinput.Model
	valid func(string) bool
}

// addForm collects the fields of a new record for one table.
type addForm struct {
	kind   storage.Table
	fields []formField
	focus  int
	err    string
}

func newAddForm(kind storage.Table, validName, validAmount func(string) bool) addForm {
	fields := []formField{newField("Name", "Salary", validName)}
	if kind.HasCategory() {
		fields = append(fields, newField("Category", "Housing", validName))
	}
	fields = append(fields, newField("Amount", "1500.00", validAmount))

	fields[0].input.Focus()

	return addForm{
		kind:   kind,
		fields: fields,
	}
}

func newField(label, placeholder string, valid func(string) bool) formField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = inputCharLimit

	return formField{label: label, input: input, valid: valid}
}

// Values returns name, category and amount as typed. Category is empty for
// tables without one.
func (f addForm) Values() (string, string, string) {
	name := f.fields[0].input.Value()
	amount := f.fields[len(f.fields)-1].input.Value()

	category := ""
	if f.kind.HasCategory() {
		category = f.fields[1].input.Value()
	}

	return name, category, amount
}

func (f addForm) Move(delta int) addForm {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
	return f
}

func (f addForm) SetError(err error) addForm {
	f.err = err.Error()
	return f
}

func (f addForm) Update(msg tea.Msg) (addForm, tea.Cmd) {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd
}

func (f addForm) View() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("New "+f.kind.String()) + "\n\n")

	for _, field := range f.fields {
		mark := ""
		if value := field.input.Value(); value != "" {
			if field.valid(value) {
				mark = validStyle.Render(" ✓")
			} else {
				mark = invalidStyle.Render(" ✗")
			}
		}
		b.WriteString(labelStyle.Render(field.label) + field.input.View() + mark + "\n")
	}

	if f.err != "" {
		b.WriteString("\n" + invalidStyle.Render(f.err) + "\n")
	}

	return b.String()
}
