package arkanoid

import (
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/game"
)

// Paddle vertical placement: distance from the bottom of the world to
// the paddle's top edge.
const paddleMarginBottom = 40.0

func init() {
	game.Register("arkanoid", func() game.Game { return New() })
}

// Game is the arkanoid simulation. All coordinates are world units; the
// renderer scales to its own output. Step is the only mutator during
// play, so the whole state advances deterministically from identical
// inputs.
type Game struct {
	runtime  core.RuntimeConfig
	settings config.Settings
	world    core.Vec

	level  *Level
	paddle core.Rect

	ballPos    core.Vec
	ballVel    core.Vec
	ballRadius float64

	speedCur    float64
	speedTarget float64

	phase      core.Phase
	score      int
	lives      int
	paused     bool
	frame      uint64
	comboMult  int
	comboTimer float64
	destroyed  int

	pierce    effect
	slowMo    effect
	magnet    effect
	scoreMult effect
	multValue int

	invincible  bool
	freezeTimer float64

	trailOn bool
	trail   []core.Vec

	bonuses   []Bonus
	particles []Particle
	hits      []core.Hit

	wallet wallet
	rng    *rng

	draw core.DrawData
}

// New returns an unstarted game. Call Reset before stepping.
func New() *Game {
	g := &Game{}
	g.applySettings(config.Default())
	return g
}

// ID implements game.Game.
func (g *Game) ID() string { return "arkanoid" }

// Title implements game.Game.
func (g *Game) Title() string { return "Arkanoid" }

// Reset loads settings and restarts the game from scratch: fresh level,
// centered paddle, ball relaunched, score and effects cleared.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	s, err := config.Load(cfg.ConfigPath)
	if err != nil {
		s = config.Default()
	}
	g.applySettings(s)
}

// applySettings rebuilds the whole simulation from a settings record.
// The record is clamped first so out-of-range values never reach the
// physics.
func (g *Game) applySettings(s config.Settings) {
	g.settings = s.Clamped()
	g.world = core.V(g.settings.World.Width, g.settings.World.Height)

	g.level = buildLevel(g.settings, g.world)

	pw := core.ClampF(g.settings.Paddle.Width, config.PaddleWidthMin, g.world.X()*config.PaddleWidthMaxFrac)
	g.paddle = core.NewRect(
		(g.world.X()-pw)*0.5,
		g.world.Y()-paddleMarginBottom,
		pw,
		g.settings.Paddle.Height,
	)

	g.ballRadius = g.settings.Ball.Radius
	g.speedTarget = g.settings.Ball.Speed
	g.speedCur = g.settings.Ball.Speed

	g.phase = core.PhasePlaying
	g.score = 0
	g.lives = g.settings.Gameplay.Lives
	g.paused = false
	g.frame = 0
	g.comboMult = 1
	g.comboTimer = 0
	g.destroyed = 0

	g.pierce = effect{duration: pierceDuration}
	g.slowMo = effect{duration: slowMoDuration}
	g.magnet = effect{duration: magnetDuration}
	g.scoreMult = effect{duration: scoreMultDuration}
	g.multValue = 1
	g.invincible = false
	g.freezeTimer = 0

	g.bonuses = g.bonuses[:0]
	g.particles = g.particles[:0]
	g.hits = g.hits[:0]
	g.trail = g.trail[:0]

	g.wallet = newWallet(g.settings.Gameplay.ScorePerDollar)

	seed := g.runtime.Seed
	if seed == 0 {
		seed = levelSeed
	}
	g.rng = newRNG(seed)

	g.respawnBall()
}

// Step advances the simulation by dt seconds under one input frame.
// Order is fixed: economy conversion, controls and timers, ball motion,
// bonuses, particles, collisions, then the win check.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	g.frame++
	g.hits = g.hits[:0]

	if g.phase != core.PhasePlaying {
		// Terminal screens only accept a restart
		if in.Has(core.ActionRestart) {
			g.applySettings(g.settings)
		}
		return g.result()
	}

	if in.Has(core.ActionRestart) {
		g.applySettings(g.settings)
		return g.result()
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	effDt := dt
	if g.slowMo.active() {
		effDt *= slowMoFactor
		g.slowMo.tick(dt)
	}

	g.wallet.ConvertScore(g.score)
	g.handleControls(in, effDt)

	if g.paused {
		return g.result()
	}

	g.integrateBall(effDt)
	g.integrateBonuses(effDt)
	g.integrateParticles(effDt)

	if g.phase == core.PhasePlaying {
		g.handleCollisions()
		if g.level.AliveCount() == 0 {
			g.phase = core.PhaseWin
		}
	}

	return g.result()
}

// State implements game.Game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:  g.phase,
		Score:  g.score,
		Lives:  g.lives,
		Paused: g.paused,
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Hits: g.hits}
}

// Settings returns the active clamped settings record.
func (g *Game) Settings() config.Settings { return g.settings }

// UpdateSettings applies a new settings record and restarts the game.
func (g *Game) UpdateSettings(s config.Settings) {
	g.applySettings(s)
}

// RebuildLevel regenerates the brick grid without touching score,
// lives, wallet or active effects. With unchanged settings the rebuilt
// grid is identical to the original.
func (g *Game) RebuildLevel() {
	g.level = buildLevel(g.settings, g.world)
	g.destroyed = 0
}

// EnableTrail toggles recording of recent ball positions for rendering.
func (g *Game) EnableTrail(on bool) {
	g.trailOn = on
	if !on {
		g.trail = g.trail[:0]
	}
}

// Balance returns the spendable wallet balance.
func (g *Game) Balance() int { return g.wallet.Balance }

// TotalEarned returns the cumulative dollars earned this run.
func (g *Game) TotalEarned() int { return g.wallet.TotalEarned }
