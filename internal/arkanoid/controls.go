package arkanoid

import (
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Combo and pacing constants.
const (
	comboWindow      = 1.2
	comboMax         = 9
	bricksPerSpeedup = 10
	speedupFactor    = 1.10

	trailMaxLen = 16
)

// handleControls applies one input frame and advances the per-frame
// timers: paddle movement, speed hotkeys, pierce, shop purchases, the
// row nuke, effect countdowns, combo decay and the ball trail.
func (g *Game) handleControls(in core.InputFrame, dt float64) {
	dx := 0.0
	if in.Has(core.ActionMoveRight) {
		dx += 1
	}
	if in.Has(core.ActionMoveLeft) {
		dx -= 1
	}
	g.paddle.Pos[0] += dx * g.settings.Paddle.Speed * dt
	g.clampPaddle()

	// Speed hotkeys adjust the target; the current speed eases after it
	if in.Has(core.ActionSpeedDown) {
		g.speedTarget = max(0.5*g.speedTarget, minSpeed)
	}
	if in.Has(core.ActionSpeedReset) {
		g.speedTarget = g.settings.Ball.Speed
	}
	if in.Has(core.ActionSpeedUp) {
		g.speedTarget = min(1.5*g.speedTarget, maxSpeedCap)
	}
	if in.Has(core.ActionPierce) {
		g.pierce.activate()
	}

	// Shop purchases; the wallet posts success or rejection notices
	if in.Has(core.ActionBuyMagnet) && g.wallet.TryPurchase(costMagnet) {
		g.magnet.activate()
	}
	if in.Has(core.ActionBuyMult) && g.wallet.TryPurchase(costScoreMult) {
		g.scoreMult.activate()
		g.multValue = 3
	}
	if in.Has(core.ActionBuyFreeze) && g.wallet.TryPurchase(costFreeze) {
		if g.freezeTimer <= 0 {
			g.freezeTimer = freezeDuration
		}
	}
	if in.Has(core.ActionBuyGod) && g.wallet.TryPurchase(costInvincible) {
		g.invincible = true
	}
	if in.Has(core.ActionBuyLife) && g.wallet.TryPurchase(costExtraLife) {
		g.lives++
	}

	// Row nuke clears every live brick whose vertical band contains the
	// ball; nuked bricks skip combo but still pace the speedup cadence
	if in.Has(core.ActionNukeRow) {
		for i := range g.level.Bricks {
			b := &g.level.Bricks[i]
			if !b.Alive {
				continue
			}
			if g.ballPos.Y() >= b.Rect.Top() && g.ballPos.Y() <= b.Rect.Bottom() {
				b.Alive = false
				g.score += b.Score * g.multValue
				g.onBrickDestroyed()
			}
		}
	}

	// Effect timers
	g.magnet.tick(dt)
	if g.scoreMult.tick(dt) {
		g.multValue = 1
	}
	g.pierce.tick(dt)

	if g.comboTimer > 0 {
		g.comboTimer -= dt
		if g.comboTimer <= 0 {
			g.comboMult = 1
			g.comboTimer = 0
		}
	}

	if g.trailOn {
		g.trail = append(g.trail, g.ballPos)
		if len(g.trail) > trailMaxLen {
			g.trail = g.trail[1:]
		}
	} else if len(g.trail) > 0 {
		g.trail = g.trail[:0]
	}

	g.wallet.Tick(dt)
}

// clampPaddle keeps the paddle fully inside the world horizontally.
func (g *Game) clampPaddle() {
	g.paddle.Pos[0] = core.ClampF(g.paddle.Pos.X(), 0, g.world.X()-g.paddle.Size.X())
}

// resizePaddle grows or shrinks the paddle around its center, bounded
// by the configured minimum width and 95% of the world width.
func (g *Game) resizePaddle(width float64) {
	width = core.ClampF(width, config.PaddleWidthMin, g.world.X()*config.PaddleWidthMaxFrac)
	center := g.paddle.Center().X()
	g.paddle.Size[0] = width
	g.paddle.Pos[0] = center - width*0.5
	g.clampPaddle()
}
