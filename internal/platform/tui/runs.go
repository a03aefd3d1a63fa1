package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jws412/Facade/internal/storage"
)

// Run board layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show level list sidebar
	sidebarWidth       = 20  // Width of level list sidebar
	maxRuns            = 100 // Max runs to load
)

// RunsKeyMap defines the key bindings for the run board.
type RunsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Back, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for browsing the run journal.
type RunsModel struct {
	levels      []string // Level IDs with recorded runs
	cursor      int
	store       *storage.Store
	runs        []storage.Run
	table       table.Model
	help        help.Model
	keys        RunsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewRunsModel creates a new run board model.
func NewRunsModel(store *storage.Store, width, height int) RunsModel {
	var levels []string
	if store != nil {
		levels, _ = store.LevelIDs()
	}

	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		levels:      levels,
		store:       store,
		keys:        DefaultRunsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	if len(m.levels) > 0 {
		m.loadRuns(m.levels[0])
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Time", Width: 7},
		{Title: "Deaths", Width: 6},
		{Title: "Stomps", Width: 6},
		{Title: "FPS", Width: 5},
		{Title: "End", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads runs for the given level ID.
func (m *RunsModel) loadRuns(levelID string) {
	m.runs = nil
	if m.store != nil {
		if runs, err := m.store.RecentRuns(levelID, maxRuns); err == nil {
			m.runs = runs
		}
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// runRows formats runs as table rows.
func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			formatTicks(r.Ticks, 60),
			fmt.Sprintf("%d", r.Deaths),
			fmt.Sprintf("%d", r.Stomps),
			fmt.Sprintf("%.0f", r.AvgFPS),
			r.EndReason,
		}
	}
	return rows
}

// Init initializes the run board model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run board.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + 1) % len(m.levels)
				m.loadRuns(m.levels[m.cursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor - 1 + len(m.levels)) % len(m.levels)
				m.loadRuns(m.levels[m.cursor])
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(runRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run board.
func (m RunsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RUNS"
	if len(m.levels) > 0 {
		title = fmt.Sprintf("RUNS - %s", m.levels[m.cursor])
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := boxStyle.Render(m.renderTableContent())
	if m.showSidebar {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content)
	}
	b.WriteString(content)

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the level list.
func (m RunsModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Levels\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, id := range m.levels {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := id
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or empty message.
func (m RunsModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay a level to start the journal!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RunsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RunsModel) IsQuitting() bool {
	return m.quitting
}

// RunRuns runs the run board screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunRuns(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewRunsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RunsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
