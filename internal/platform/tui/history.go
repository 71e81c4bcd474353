package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmatthews/ladders/internal/storage"
)

// maxHistoryRows caps how many saved runs the table loads.
const maxHistoryRows = 100

// HistoryModel is the Bubble Tea model for the run-history table.
type HistoryModel struct {
	store    *storage.Store
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
	loadErr  error
}

// NewHistoryModel creates a history model and loads recent runs.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates the table with run columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 17},
		{Title: "Games", Width: 9},
		{Title: "Seed", Width: 12},
		{Title: "Last", Width: 6},
		{Title: "Min", Width: 5},
		{Title: "Max", Width: 6},
		{Title: "Mean", Width: 7},
	}

	height := m.height - 6 // Title, help, margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	return t
}

// loadRuns fills the table from storage.
func (m *HistoryModel) loadRuns() {
	if m.store == nil {
		return
	}

	runs, err := m.store.RecentRuns(maxHistoryRows)
	if err != nil {
		m.loadErr = err
		return
	}

	rows := make([]table.Row, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, table.Row{
			r.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", r.Games),
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.LastRolls),
			fmt.Sprintf("%d", r.MinRolls),
			fmt.Sprintf("%d", r.MaxRolls),
			fmt.Sprintf("%.1f", r.MeanRolls),
		})
	}
	m.table.SetRows(rows)
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 6)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with a title and help line.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Run History"))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(fmt.Sprintf("could not load runs: %v\n", m.loadErr))
	} else if len(m.table.Rows()) == 0 {
		b.WriteString("No saved runs yet. Use 'ladders run --save' to record one.\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// RunHistory runs the history table in the local terminal until the user quits.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewHistoryModel(store, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: history view failed: %w", err)
	}
	return nil
}
