package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jws412/Facade/internal/core"
	"github.com/jws412/Facade/internal/registry"
	"github.com/jws412/Facade/internal/storage"
)

// chromeRows is the number of terminal rows used by the HUD and help bar.
const chromeRows = 2

// debugger is implemented by games that can describe their internals.
type debugger interface {
	DebugLines() []string
}

// Model is the Bubble Tea model for playing one level.
type Model struct {
	game      registry.Game
	fb        *core.Framebuffer
	store     *storage.Store
	config    core.RuntimeConfig
	keys      GameKeyMap
	help      help.Model
	held      *HeldKeys
	fps       *FPSMeter
	logger    *log.Logger
	gameState core.GameState
	frame     string // Last presented framebuffer
	status    string // Transient message under the playfield
	embedded  bool   // Back returns to a menu instead of quitting
	showDebug bool
	quitting  bool
	back      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	w, h := game.Resolution()
	return Model{
		game:   game,
		fb:     core.NewFramebuffer(w, h),
		store:  store,
		config: cfg,
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		held:   NewHeldKeys(cfg.HoldTicks),
		fps:    &FPSMeter{},
		logger: log.Default(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.FocusMsg:
		m.setFocused(true)
		return m, nil

	case tea.BlurMsg:
		m.setFocused(false)
		m.held.Release()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) setFocused(focused bool) {
	if f, ok := m.game.(registry.Focusable); ok {
		f.SetFocused(focused)
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finish("quit")
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.finish("quit")
		if m.embedded {
			m.back = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Snapshot):
		path, err := SaveSnapshot(m.fb, "", m.game.ID())
		if err != nil {
			m.logger.Warn("snapshot failed", "err", err)
			m.status = "snapshot failed: " + err.Error()
		} else {
			m.logger.Info("snapshot saved", "path", path)
			m.status = "saved " + path
		}
		return m, nil

	case key.Matches(msg, m.keys.Debug):
		m.showDebug = !m.showDebug
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.keys.MapGameKey(msg, m.held)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}

	in := m.held.Frame()
	if in.Has(core.ActionRestart) {
		m.finish("restart")
		m.status = ""
	}

	result := m.game.Step(in)
	m.gameState = result.State
	m.fps.Tick(now)

	m.game.Render(m.fb)
	m.frame = RenderFramebuffer(m.fb, m.scale())

	if m.gameState.GameOver {
		m.finish("game over")
		if m.embedded {
			m.back = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// scale picks the downsampling factor for the current terminal size.
func (m Model) scale() int {
	return Scale(m.fb.Width(), m.fb.Height(), m.config.ScreenW, m.config.ScreenH-chromeRows)
}

// finish records the current run in the journal. Runs that never ticked
// are not worth keeping.
func (m Model) finish(reason string) {
	s := m.game.State()
	if m.store == nil || s.Ticks == 0 {
		return
	}
	run := storage.Run{
		LevelID:   m.game.ID(),
		Ticks:     s.Ticks,
		Deaths:    s.Deaths,
		Stomps:    s.Stomps,
		AvgFPS:    m.fps.Average(),
		EndReason: reason,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "level", run.LevelID, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderHUD(m.game.Title(), m.gameState, m.fps.FPS(), m.config.TickRate, m.config.ScreenW))
	b.WriteByte('\n')
	b.WriteString(m.frame)

	if m.showDebug {
		if d, ok := m.game.(debugger); ok {
			b.WriteByte('\n')
			b.WriteString(debugStyle.Render(strings.Join(d.DebugLines(), "\n")))
		}
	}

	b.WriteByte('\n')
	if m.status != "" {
		b.WriteString(hudDimStyle.Render(m.status))
		b.WriteString("  ")
	}
	b.WriteString(hudDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

var debugStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("10")).
	Border(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // FocusMsg/BlurMsg gate the buttons
	)

	_, err := p.Run()
	return err
}
