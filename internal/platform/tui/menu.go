package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jws412/Facade/internal/core"
	"github.com/jws412/Facade/internal/registry"
	"github.com/jws412/Facade/internal/storage"
)

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Best   string // Summary of the best recorded run, if any
}

// MenuModel is the Bubble Tea model for the level picker menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	quitting bool
	selected *MenuItem // Set when user selects a level
	openRuns bool      // True if user pressed Tab for the run journal
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		items = append(items, MenuItem{
			GameID: g.ID,
			Title:  g.Title,
			Best:   bestSummary(store, g.ID),
		})
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
}

// bestSummary describes the best run on a level, or "" without one.
func bestSummary(store *storage.Store, levelID string) string {
	if store == nil {
		return ""
	}
	best, err := store.BestRun(levelID)
	if err != nil || best == nil {
		return ""
	}
	return fmt.Sprintf("best: %d deaths, %d stomps", best.Deaths, best.Stomps)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionRuns:
		m.openRuns = true
		return m, tea.Quit
	}

	return m, nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))
	menuDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("F A C A D E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(menuDimStyle.Render("No levels found."), m.width))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Title)
		}
		if item.Best != "" {
			line += menuDimStyle.Render("  " + item.Best)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Runs  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsRuns returns true if user requested the run journal.
func (m MenuModel) WantsRuns() bool {
	return m.openRuns
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring visible cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID    string
	Config    core.RuntimeConfig
	WantsRuns bool
	Quit      bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsRuns() {
		result.WantsRuns = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
	} else {
		result.Quit = true
	}

	return result, nil
}
