package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nlopatin/hackergrid/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left", "h":
		return core.ActionRotateLeft, false
	case "d", "right", "l":
		return core.ActionRotateRight, false
	case "c", " ":
		return core.ActionCollect, false
	case "x", "enter":
		return core.ActionDestroy, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "ctrl+s":
		return core.ActionSave, false
	case "ctrl+o":
		return core.ActionLoad, false
	}

	return core.ActionNone, false
}
