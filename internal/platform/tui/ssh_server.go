package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/jws412/Facade/internal/core"
	"github.com/jws412/Facade/internal/registry"
	"github.com/jws412/Facade/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.facade/host_key.
	HostKeyPath string

	// DBPath is the path to the run journal database.
	DBPath string

	// TickRate and HoldTicks pace every session.
	TickRate  int
	HoldTicks int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.facade/runs.db",
		TickRate:    60,
		HoldTicks:   8,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server so levels can be played remotely.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "facade-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".facade", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	// Create runtime config from PTY size
	cfg := core.RuntimeConfig{
		ScreenW:   pty.Window.Width,
		ScreenH:   pty.Window.Height,
		TickRate:  s.config.TickRate,
		HoldTicks: s.config.HoldTicks,
	}

	// Create session model that handles menu + game flow
	logger := s.logger.With("user", sshSession.User())
	model := NewSessionModel(s.store, cfg, logger)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is which screen a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenRuns
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the run journal one key away. This is the top-level model used for SSH
// sessions.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	logger   *log.Logger
	screen   sessionScreen
	menu     MenuModel
	game     *Model
	runs     RunsModel
	status   string // Last error shown above the menu
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		logger: logger,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenRuns:
		return m.updateRuns(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, _ := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsRuns() {
		m.screen = screenRuns
		m.runs = NewRunsModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.runs.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID)
		if err != nil {
			m.logger.Error("could not start level", "level", selected.GameID, "err", err)
			m.status = err.Error()
			m.menu = NewMenuModel(m.store, m.config)
			return m, nil
		}
		m.logger.Info("level started", "level", game.ID())

		gameModel := NewModel(game, m.store, m.config)
		gameModel.embedded = true
		gameModel.logger = m.logger
		m.game = &gameModel
		m.screen = screenGame
		m.status = ""

		return m, m.game.Init()
	}

	// The menu's own tea.Quit is dropped; the session owns the program.
	return m, nil
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.logger.Info("level left", "level", m.game.game.ID())
		m.screen = screenMenu
		m.game = nil
		m.menu = NewMenuModel(m.store, m.config)
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateRuns handles updates when the run journal is open.
func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	newRuns, cmd := m.runs.Update(msg)
	if runsModel, ok := newRuns.(RunsModel); ok {
		m.runs = runsModel
	}

	if m.runs.IsGoingBack() {
		m.screen = screenMenu
		m.menu = NewMenuModel(m.store, m.config)
		return m, m.menu.Init()
	}

	if m.runs.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenRuns:
		return m.runs.View()
	}

	if m.status != "" {
		return menuDimStyle.Render(m.status) + "\n" + m.menu.View()
	}
	return m.menu.View()
}
