package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

// KeyMapper translates Bubble Tea key messages to simulator actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ":
		return core.ActionPause, false
	case "n":
		return core.ActionStep, false
	case "r":
		return core.ActionReset, false
	case "c":
		return core.ActionClear, false
	case "enter", "t":
		return core.ActionToggle, false
	case "g":
		return core.ActionGlider, false
	case "p":
		return core.ActionPulsar, false
	case "+", "=":
		return core.ActionSpeedUp, false
	case "-", "_":
		return core.ActionSpeedDown, false
	case "up", "w", "k": // vim-style k for up
		return core.ActionCursorUp, false
	case "down", "s", "j": // vim-style j for down
		return core.ActionCursorDown, false
	case "left", "a", "h":
		return core.ActionCursorLeft, false
	case "right", "d", "l":
		return core.ActionCursorRight, false
	case "]":
		return core.ActionGrowWidth, false
	case "[":
		return core.ActionShrinkWidth, false
	case "}":
		return core.ActionGrowHeight, false
	case "{":
		return core.ActionShrinkHeight, false
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
