package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jws412/Facade/internal/core"
)

// GameKeyMap defines the key bindings while playing.
type GameKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	RunLeft  key.Binding
	RunRight key.Binding
	Jump     key.Binding
	Run      key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Back     key.Binding
	Quit     key.Binding
	Snapshot key.Binding
	Debug    key.Binding
	Help     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Run, k.Pause, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.RunLeft, k.RunRight},
		{k.Jump, k.Run, k.Pause, k.Restart},
		{k.Snapshot, k.Debug, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		RunLeft: key.NewBinding(
			key.WithKeys("shift+left", "A"),
			key.WithHelp("S-←/A", "run left"),
		),
		RunRight: key.NewBinding(
			key.WithKeys("shift+right", "D"),
			key.WithHelp("S-→/D", "run right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "jump"),
		),
		Run: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "run"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "snapshot"),
		),
		Debug: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("^d", "debug"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// HeldKeys turns key presses into held buttons. Terminals report presses
// and auto-repeats but never releases, so a button stays down for a few
// ticks after its last press; auto-repeat keeps refreshing it.
type HeldKeys struct {
	ticks     [16]int
	holdTicks int
	once      core.InputFrame // One-shot actions for the next tick only
}

// NewHeldKeys creates a tracker holding each press for holdTicks ticks.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldKeys{holdTicks: holdTicks}
}

// Press holds actions for the hold window.
func (h *HeldKeys) Press(actions ...core.Action) {
	for _, a := range actions {
		if int(a) < len(h.ticks) {
			h.ticks[a] = h.holdTicks
		}
	}
}

// Tap sets actions for the next frame only.
func (h *HeldKeys) Tap(a core.Action) {
	h.once.Set(a)
}

// Frame returns the buttons for this tick and ages every hold by one tick.
func (h *HeldKeys) Frame() core.InputFrame {
	f := h.once
	h.once = 0
	for a := range h.ticks {
		if h.ticks[a] > 0 {
			f.Set(core.Action(a))
			h.ticks[a]--
		}
	}
	return f
}

// Release drops every held and pending button.
func (h *HeldKeys) Release() {
	h.ticks = [16]int{}
	h.once = 0
}

// MapGameKey applies a gameplay key to the held set. It reports whether
// the key was a simulation button.
func (k GameKeyMap) MapGameKey(msg tea.KeyMsg, held *HeldKeys) bool {
	switch {
	case key.Matches(msg, k.RunLeft):
		held.Press(core.ActionMoveLeft, core.ActionRun)
	case key.Matches(msg, k.RunRight):
		held.Press(core.ActionMoveRight, core.ActionRun)
	case key.Matches(msg, k.Left):
		held.Press(core.ActionMoveLeft)
	case key.Matches(msg, k.Right):
		held.Press(core.ActionMoveRight)
	case key.Matches(msg, k.Jump):
		held.Press(core.ActionJump)
	case key.Matches(msg, k.Run):
		held.Press(core.ActionRun)
	case key.Matches(msg, k.Pause):
		held.Tap(core.ActionPause)
	case key.Matches(msg, k.Restart):
		held.Tap(core.ActionRestart)
	default:
		return false
	}
	return true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionRuns
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionRuns
	}

	return MenuActionNone
}
