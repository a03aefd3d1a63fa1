package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action uint8

const (
	ActionNone      Action = iota
	ActionMoveLeft         // A, Left arrow
	ActionMoveRight        // D, Right arrow
	ActionJump             // Space, W, Up
	ActionRun              // Shift or X - full horizontal speed
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - respawn at the level start
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause
	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "Left"
	case ActionMoveRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionRun:
		return "Run"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the button snapshot for one simulation tick. It is a plain
// bitset so it can be passed by value every tick without allocating.
type InputFrame uint16

// NewInputFrame builds a frame with the given actions held.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	*f |= 1 << a
}

// Unset releases an action.
func (f *InputFrame) Unset(a Action) {
	*f &^= 1 << a
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if a == ActionNone || a >= actionCount {
		return false
	}
	return f&(1<<a) != 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	*f = 0
}

// Actions lists the held actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
