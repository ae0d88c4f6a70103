package core

// RuntimeConfig is passed to games at initialization. Games use it for
// deterministic simulation and to locate their settings file; screen
// dimensions belong to the renderer and never leak into world space.
type RuntimeConfig struct {
	ScreenW    int    // Terminal width in characters
	ScreenH    int    // Terminal height in characters
	TickRate   int    // Simulation ticks per second (default 60)
	Seed       int64  // RNG seed for gameplay randomness (0 = time-based, set by platform)
	ConfigPath string // Optional explicit settings YAML path
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Phase is the top-level game state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWin
	PhaseLose
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWin:
		return "win"
	case PhaseLose:
		return "lose"
	default:
		return "unknown"
	}
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Phase  Phase
	Score  int
	Lives  int
	Paused bool
}

// Terminal reports whether the game has ended. Win and Lose are both
// terminal until an explicit restart.
func (s GameState) Terminal() bool {
	return s.Phase == PhaseWin || s.Phase == PhaseLose
}

// StepResult is returned by Game.Step after each simulation frame.
type StepResult struct {
	State GameState
	Hits  []Hit // World-space collision log for this frame, for debug overlays
}
