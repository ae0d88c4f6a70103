package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions. It
// centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action for the simulation.
// Returns the action (may be ActionNone) and whether it is a quit
// request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true

	case "a", "left":
		return core.ActionMoveLeft, false
	case "d", "right":
		return core.ActionMoveRight, false

	case "1":
		return core.ActionSpeedDown, false
	case "2":
		return core.ActionSpeedReset, false
	case "3":
		return core.ActionSpeedUp, false

	case "c":
		return core.ActionPierce, false
	case "n":
		return core.ActionNukeRow, false

	case "f":
		return core.ActionBuyFreeze, false
	case "e":
		return core.ActionBuyLife, false
	case "x":
		return core.ActionBuyMagnet, false
	case "t":
		return core.ActionBuyMult, false
	case "y":
		return core.ActionBuyGod, false

	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame from a key message. Returns true
// if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
