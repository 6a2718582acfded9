package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mindgym/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game input.
// Returns the input (ActionNone if unbound) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (in core.Input, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.Press(core.ActionQuit), true
	}

	// Digits are typed answers (number memory)
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if r := msg.Runes[0]; r >= '0' && r <= '9' {
			return core.Type(r), false
		}
	}

	switch key {
	case "w", "up", "k":
		return core.Press(core.ActionUp), false
	case "s", "down", "j":
		return core.Press(core.ActionDown), false
	case "a", "left", "h":
		return core.Press(core.ActionLeft), false
	case "d", "right", "l":
		return core.Press(core.ActionRight), false
	case "enter", " ":
		return core.Press(core.ActionConfirm), false
	case "backspace":
		return core.Press(core.ActionErase), false
	case "y":
		return core.Press(core.ActionSeen), false
	case "n":
		return core.Press(core.ActionNew), false
	case "b", "esc":
		return core.Press(core.ActionBack), false
	case "r":
		return core.Press(core.ActionRestart), false
	}

	return core.Press(core.ActionNone), false
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
