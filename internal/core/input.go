package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games see intents such as "move cursor left" or "swap up-right", never keys.
type Action int

const (
	ActionNone Action = iota

	// Cursor movement
	ActionUp    // Up arrow - cursor up one row, menu up
	ActionDown  // Down arrow - cursor down one row, menu down
	ActionLeft  // Left arrow - cursor one column left
	ActionRight // Right arrow - cursor one column right

	// Swap the cursor cell with one of its six hex neighbors
	ActionSwapUp        // I
	ActionSwapDown      // K
	ActionSwapLeftUp    // U
	ActionSwapLeftDown  // J
	ActionSwapRightUp   // O
	ActionSwapRightDown // L

	ActionHint    // H - highlight a playable swap
	ActionConfirm // Enter - confirm selection in menu
	ActionBack    // B, Escape - go back to menu
	ActionRestart // R key - restart game after game over
	ActionQuit    // Q, Ctrl+C - exit game/session
	ActionPause   // P - pause/unpause game
)

var actionNames = map[Action]string{
	ActionNone:          "None",
	ActionUp:            "Up",
	ActionDown:          "Down",
	ActionLeft:          "Left",
	ActionRight:         "Right",
	ActionSwapUp:        "SwapUp",
	ActionSwapDown:      "SwapDown",
	ActionSwapLeftUp:    "SwapLeftUp",
	ActionSwapLeftDown:  "SwapLeftDown",
	ActionSwapRightUp:   "SwapRightUp",
	ActionSwapRightDown: "SwapRightDown",
	ActionHint:          "Hint",
	ActionConfirm:       "Confirm",
	ActionBack:          "Back",
	ActionRestart:       "Restart",
	ActionQuit:          "Quit",
	ActionPause:         "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// SwapActions returns the six swap actions in a fixed order:
// up, down, left-up, left-down, right-up, right-down.
func SwapActions() []Action {
	return []Action{
		ActionSwapUp,
		ActionSwapDown,
		ActionSwapLeftUp,
		ActionSwapLeftDown,
		ActionSwapRightUp,
		ActionSwapRightDown,
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty returns true if no action was triggered this frame.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
