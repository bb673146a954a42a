package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexfleet/internal/core"
)

// GameKeyMap defines the in-game key bindings. It doubles as the help.KeyMap
// shown under the board.
type GameKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	SwapUp        key.Binding
	SwapDown      key.Binding
	SwapLeftUp    key.Binding
	SwapLeftDown  key.Binding
	SwapRightUp   key.Binding
	SwapRightDown key.Binding

	Hint       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.SwapUp, k.Hint, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.SwapLeftUp, k.SwapUp, k.SwapRightUp},
		{k.SwapLeftDown, k.SwapDown, k.SwapRightDown},
		{k.Hint, k.Pause, k.Restart, k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings. The six swap keys form a
// hexagon on a QWERTY keyboard: u i o above, j k l below.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("arrows/wasd", "move"),
		),
		Down:  key.NewBinding(key.WithKeys("down", "s")),
		Left:  key.NewBinding(key.WithKeys("left", "a")),
		Right: key.NewBinding(key.WithKeys("right", "d")),
		SwapUp: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("u/i/o j/k/l", "swap"),
		),
		SwapDown: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "swap down"),
		),
		SwapLeftUp: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "swap left-up"),
		),
		SwapLeftDown: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "swap left-down"),
		),
		SwapRightUp: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "swap right-up"),
		),
		SwapRightDown: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "swap right-down"),
		),
		Hint: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hint"),
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
			key.WithHelp("esc/b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys    GameKeyMap
	actions []boundAction
}

type boundAction struct {
	binding *key.Binding
	action  core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWith(DefaultGameKeyMap())
}

// NewKeyMapperWith creates a key mapper over custom bindings.
func NewKeyMapperWith(keys GameKeyMap) *KeyMapper {
	km := &KeyMapper{keys: keys}
	k := &km.keys
	km.actions = []boundAction{
		{&k.Up, core.ActionUp},
		{&k.Down, core.ActionDown},
		{&k.Left, core.ActionLeft},
		{&k.Right, core.ActionRight},
		{&k.SwapUp, core.ActionSwapUp},
		{&k.SwapDown, core.ActionSwapDown},
		{&k.SwapLeftUp, core.ActionSwapLeftUp},
		{&k.SwapLeftDown, core.ActionSwapLeftDown},
		{&k.SwapRightUp, core.ActionSwapRightUp},
		{&k.SwapRightDown, core.ActionSwapRightDown},
		{&k.Hint, core.ActionHint},
		{&k.Pause, core.ActionPause},
		{&k.Restart, core.ActionRestart},
		{&k.Back, core.ActionBack},
	}
	return km
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.keys.Quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.actions {
		if key.Matches(msg, *b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// IsScreenshot reports whether msg requests a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
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
		return MenuActionScoreboard
	}

	return MenuActionNone
}
