package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform layer maps keys to actions; the simulation only
// sees per-frame key-down snapshots.
type Action int

const (
	ActionNone       Action = iota
	ActionMoveLeft          // A, Left arrow
	ActionMoveRight         // D, Right arrow
	ActionSpeedDown         // 1 - halve target ball speed
	ActionSpeedReset        // 2 - restore configured ball speed
	ActionSpeedUp           // 3 - raise target ball speed by 50%
	ActionPierce            // C - activate pierce mode
	ActionRestart           // R - restart after win/lose
	ActionBuyFreeze         // F - shop: freeze ball
	ActionBuyLife           // E - shop: +1 life
	ActionBuyMagnet         // X - shop: magnet
	ActionBuyMult           // T - shop: score multiplier
	ActionBuyGod            // Y - shop: invincibility
	ActionNukeRow           // N - destroy the brick row at ball height
	ActionPause             // P - pause/unpause simulation
	ActionQuit              // Q, Ctrl+C - exit (handled by the platform)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionSpeedReset:
		return "SpeedReset"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionPierce:
		return "Pierce"
	case ActionRestart:
		return "Restart"
	case ActionBuyFreeze:
		return "BuyFreeze"
	case ActionBuyLife:
		return "BuyLife"
	case ActionBuyMagnet:
		return "BuyMagnet"
	case ActionBuyMult:
		return "BuyMult"
	case ActionBuyGod:
		return "BuyGod"
	case ActionNukeRow:
		return "NukeRow"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is a snapshot of key-down state for a single simulation frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
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
