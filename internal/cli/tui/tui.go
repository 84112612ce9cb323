package tui

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/GustavoCaso/zerobudget/internal/cli"
	"github.com/GustavoCaso/zerobudget/internal/ledger"
	"github.com/GustavoCaso/zerobudget/internal/storage"
	"github.com/GustavoCaso/zerobudget/internal/util"
)

const (
	// rows taken by tabs, totals, status, message and help
	chromeHeight = 9
)

var tabStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.HiddenBorder())

var activeTabStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("69")).
	Bold(true)

type tuiCommand struct{}

func NewCommand() cli.Command {
	return tuiCommand{}
}

func (c tuiCommand) Description() string {
	return "Interactive terminal user interface"
}

func (c tuiCommand) SetFlags(*flag.FlagSet) {
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeConfirm
)

type browseKeymap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Add    key.Binding
	Delete key.Binding
	Clear  key.Binding
	Exit   key.Binding
}

func (k browseKeymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Add, k.Delete, k.Clear, k.Exit}
}

func (k browseKeymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev}, // first column
		{k.Add, k.Delete, k.Clear},     // second column
		{k.Exit},                       // third column
	}
}

type formKeymap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func (k formKeymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Cancel}
}

func (k formKeymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Submit, k.Cancel}}
}

type confirmKeymap struct {
	Yes key.Binding
	No  key.Binding
}

func (k confirmKeymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}

func (k confirmKeymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Yes, k.No}}
}

func browseKeyMap() browseKeymap {
	return browseKeymap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next table"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "previous table"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete selected"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear table"),
		),
		Exit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "exit"),
		),
	}
}

func formKeyMap() formKeymap {
	return formKeymap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

func confirmKeyMap() confirmKeymap {
	return confirmKeymap{
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
	}
}

// pendingAction is a destructive operation waiting for a yes/no answer.
type pendingAction struct {
	prompt string
	run    func() (string, error)
}

type model struct {
	ctx      context.Context
	ledger   *ledger.Ledger
	currency string

	tables  []recordsTable
	active  int
	form    addForm
	pending pendingAction
	summary ledger.Summary
	message string

	mode mode
	help help.Model

	browseKeyMap  browseKeymap
	formKeyMap    formKeymap
	confirmKeyMap confirmKeymap

	width  int
	height int
}

func initialModel(ctx context.Context, l *ledger.Ledger, currency string, width int, height int) (model, error) {
	tables := make([]recordsTable, len(storage.Tables))
	for i, t := range storage.Tables {
		tables[i] = newRecordsTable(t, currency, width)
	}

	m := model{
		ctx:      ctx,
		ledger:   l,
		currency: currency,
		tables:   tables,
		mode:     modeBrowse,
		help:     help.New(),

		browseKeyMap:  browseKeyMap(),
		formKeyMap:    formKeyMap(),
		confirmKeyMap: confirmKeyMap(),

		width:  width,
		height: height,
	}

	if err := m.refresh(); err != nil {
		return model{}, err
	}

	m.resize()
	return m, nil
}

// refresh reloads every table and recomputes the status.
func (m *model) refresh() error {
	for i, t := range storage.Tables {
		records, err := m.ledger.ListAll(m.ctx, t)
		if err != nil {
			return err
		}
		m.tables[i] = m.tables[i].SetRecords(records)
	}

	summary, err := m.ledger.Status(m.ctx)
	if err != nil {
		return err
	}
	m.summary = summary

	return nil
}

func (m *model) resize() {
	height := m.height - chromeHeight
	if height < 1 {
		height = 1
	}

	for i := range m.tables {
		m.tables[i] = m.tables[i].UpdateDimensions(m.width, height)
	}
}

func (m model) activeTable() storage.Table {
	return storage.Tables[m.active]
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		m.SetHeight(msg.Height)
		m.resize()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.browseKeyMap.Exit):
		return m, tea.Quit
	case key.Matches(msg, m.browseKeyMap.Next):
		m.active = (m.active + 1) % len(m.tables)
	case key.Matches(msg, m.browseKeyMap.Prev):
		m.active = (m.active - 1 + len(m.tables)) % len(m.tables)
	case key.Matches(msg, m.browseKeyMap.Add):
		m.form = newAddForm(m.activeTable(), m.ledger.IsValidName, m.ledger.IsValidAmount)
		m.mode = modeAdd
		m.message = ""
		return m, textinput.Blink
	case key.Matches(msg, m.browseKeyMap.Delete):
		m.askDelete()
	case key.Matches(msg, m.browseKeyMap.Clear):
		m.askClear()
	case key.Matches(msg, m.browseKeyMap.Up), key.Matches(msg, m.browseKeyMap.Down):
		m.tables[m.active], cmd = m.tables[m.active].Update(msg)
	}

	return m, cmd
}

func (m *model) askDelete() {
	ctx, l, table := m.ctx, m.ledger, m.activeTable()

	record, ok := m.tables[m.active].Selected()
	if !ok {
		m.message = fmt.Sprintf("No %s record selected", table)
		return
	}

	m.pending = pendingAction{
		prompt: fmt.Sprintf("Delete %s #%d %s?", table, record.ID, record.Name),
		run: func() (string, error) {
			deleted, err := l.DeleteByID(ctx, table, record.ID)
			if err != nil {
				return "", err
			}
			if !deleted {
				return fmt.Sprintf("No %s record with id %d", table, record.ID), nil
			}
			return fmt.Sprintf("Deleted %s #%d", table, record.ID), nil
		},
	}
	m.mode = modeConfirm
}

func (m *model) askClear() {
	ctx, l, table := m.ctx, m.ledger, m.activeTable()

	if m.tables[m.active].Len() == 0 {
		m.message = fmt.Sprintf("%s is already empty", table.Title())
		return
	}

	m.pending = pendingAction{
		prompt: fmt.Sprintf("Clear every %s record?", table),
		run: func() (string, error) {
			cleared, err := l.Clear(ctx, table)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s data cleared successfully! (%d records)", table.Title(), cleared), nil
		},
	}
	m.mode = modeConfirm
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.confirmKeyMap.Yes):
		message, err := m.pending.run()
		m.message = message
		if err == nil {
			err = m.refresh()
		}
		if err != nil {
			m.message = fmt.Sprintf("Error: %s", err)
		}
	case key.Matches(msg, m.confirmKeyMap.No):
		m.message = "Cancelled"
	default:
		return m, nil
	}

	m.pending = pendingAction{}
	m.mode = modeBrowse
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.formKeyMap.Cancel):
		m.mode = modeBrowse
		m.message = "Cancelled"
		return m, nil
	case key.Matches(msg, m.formKeyMap.Next):
		m.form = m.form.Move(1)
	case key.Matches(msg, m.formKeyMap.Prev):
		m.form = m.form.Move(-1)
	case key.Matches(msg, m.formKeyMap.Submit):
		return m.submitForm()
	default:
		m.form, cmd = m.form.Update(msg)
	}

	return m, cmd
}

func (m model) submitForm() (tea.Model, tea.Cmd) {
	table := m.activeTable()
	name, category, amount := m.form.Values()

	record, err := m.ledger.Add(m.ctx, table, name, category, amount)
	if err != nil {
		m.form = m.form.SetError(err)
		return m, nil
	}

	m.mode = modeBrowse
	m.message = fmt.Sprintf("Added %s #%d %s", table, record.ID, record.Name)
	if err = m.refresh(); err != nil {
		m.message = fmt.Sprintf("Error: %s", err)
	}

	return m, nil
}

func (m model) View() string {
	var body string
	var helpView string

	switch m.mode {
	case modeAdd:
		body = m.form.View()
		helpView = m.help.View(m.formKeyMap)
	case modeConfirm:
		body = m.tables[m.active].View() + "\n" +
			util.ColorOutput(m.pending.prompt+" (y/n)", "bold")
		helpView = m.help.View(m.confirmKeyMap)
	default:
		body = m.tables[m.active].View()
		helpView = m.help.View(m.browseKeyMap)
	}

	parts := []string{m.tabsView(), body, m.totalsView(), m.statusView()}
	if m.message != "" {
		parts = append(parts, m.message)
	}
	parts = append(parts, helpView)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m model) tabsView() string {
	tabs := make([]string, len(storage.Tables))
	for i, t := range storage.Tables {
		title := fmt.Sprintf("%s (%d)", t.Title(), m.tables[i].Len())
		if i == m.active {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = tabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m model) totalsView() string {
	totals := make([]string, len(storage.Tables))
	for i, t := range storage.Tables {
		totals[i] = fmt.Sprintf("%s: %s", cli.TotalLabel(t),
			util.FormatAmount(m.summary.Totals.Of(t), m.currency, ",", "."))
	}
	return strings.Join(totals, "  ")
}

func (m model) statusView() string {
	status := m.summary.Status
	return util.ColorOutput(status.Message(m.currency), util.StatusColor(status.Kind.String()), "bold")
}

func (m *model) SetHeight(height int) {
	m.height = height
}

func (m *model) SetWidth(width int) {
	m.width = width
}

func (c tuiCommand) Run(ctx context.Context, env cli.Env) error {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		return fmt.Errorf("failed to get terminal size: %w", err)
	}

	if len(os.Getenv("ZEROBUDGET_DEBUG")) > 0 {
		f, logErr := tea.LogToFile("debug.log", "debug")
		if logErr != nil {
			return fmt.Errorf("failed to log to file: %w", logErr)
		}
		defer f.Close()
	}

	m, err := initialModel(ctx, env.Ledger, env.Config.Currency, w, h)
	if err != nil {
		return fmt.Errorf("failed to create initial model: %w", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
