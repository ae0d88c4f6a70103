package arkanoid

import "math"

// Snapshot captures the complete simulation state in primitive form.
// Float fields are carried as IEEE 754 bit patterns so two states hash
// equal iff they are bit-for-bit identical.
type Snapshot struct {
	Frame uint64
	Phase int
	Score int
	Lives int

	PaddleX     uint64
	PaddleWidth uint64

	BallX  uint64
	BallY  uint64
	BallVX uint64
	BallVY uint64

	SpeedCur    uint64
	SpeedTarget uint64

	ComboMult  int
	ComboTimer uint64
	Destroyed  int

	PierceTimer    uint64
	SlowMoTimer    uint64
	MagnetTimer    uint64
	ScoreMultTimer uint64
	MultValue      int
	FreezeTimer    uint64
	Invincible     bool

	Balance     int
	TotalEarned int

	// Bonuses are 4 values each: kind, x, y, vy
	BonusCount int
	BonusData  []uint64

	ParticleCount int

	// Bricks are 2 values each: alive, hp, row-major
	BrickData []int

	RNGState uint64
}

// Snapshot returns the current state in snapshot form.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, len(g.level.Bricks)*2)
	for i := range g.level.Bricks {
		b := &g.level.Bricks[i]
		if b.Alive {
			brickData[i*2] = 1
		}
		brickData[i*2+1] = b.HP
	}

	bonusData := make([]uint64, 0, len(g.bonuses)*4)
	for i := range g.bonuses {
		b := &g.bonuses[i]
		bonusData = append(bonusData,
			uint64(b.Kind),
			math.Float64bits(b.Rect.Pos.X()),
			math.Float64bits(b.Rect.Pos.Y()),
			math.Float64bits(b.Vel.Y()),
		)
	}

	return Snapshot{
		Frame: g.frame,
		Phase: int(g.phase),
		Score: g.score,
		Lives: g.lives,

		PaddleX:     math.Float64bits(g.paddle.Pos.X()),
		PaddleWidth: math.Float64bits(g.paddle.Size.X()),

		BallX:  math.Float64bits(g.ballPos.X()),
		BallY:  math.Float64bits(g.ballPos.Y()),
		BallVX: math.Float64bits(g.ballVel.X()),
		BallVY: math.Float64bits(g.ballVel.Y()),

		SpeedCur:    math.Float64bits(g.speedCur),
		SpeedTarget: math.Float64bits(g.speedTarget),

		ComboMult:  g.comboMult,
		ComboTimer: math.Float64bits(g.comboTimer),
		Destroyed:  g.destroyed,

		PierceTimer:    math.Float64bits(g.pierce.timer),
		SlowMoTimer:    math.Float64bits(g.slowMo.timer),
		MagnetTimer:    math.Float64bits(g.magnet.timer),
		ScoreMultTimer: math.Float64bits(g.scoreMult.timer),
		MultValue:      g.multValue,
		FreezeTimer:    math.Float64bits(g.freezeTimer),
		Invincible:     g.invincible,

		Balance:     g.wallet.Balance,
		TotalEarned: g.wallet.TotalEarned,

		BonusCount: len(g.bonuses),
		BonusData:  bonusData,

		ParticleCount: len(g.particles),

		BrickData: brickData,

		RNGState: g.rng.state,
	}
}

// Hash folds a snapshot into a single value for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ComboMult) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Destroyed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MultValue) //#nosec G115 -- hash computation
	if snap.Invincible {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.Balance)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TotalEarned)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BonusCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation

	for _, v := range []uint64{
		snap.PaddleX, snap.PaddleWidth,
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY,
		snap.SpeedCur, snap.SpeedTarget,
		snap.ComboTimer,
		snap.PierceTimer, snap.SlowMoTimer, snap.MagnetTimer,
		snap.ScoreMultTimer, snap.FreezeTimer,
	} {
		h = h*31 + v
	}
	for _, v := range snap.BonusData {
		h = h*31 + v
	}
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + snap.RNGState
	return h
}
