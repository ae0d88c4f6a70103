package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Ball speed envelope and tuning.
const (
	ballAccel   = 800.0  // speed easing rate toward target, units/s^2
	minSpeed    = 60.0   // floor for current and target speed
	maxSpeedCap = 5000.0 // absolute ceiling for target speed

	reflectMinFrac = 0.15 // minimum velocity component as fraction of speed
	wallBounceGain = 2.0  // positional correction factor on wall contact

	launchDiag = 0.7071067 // unit 45-degree launch component
)

// integrateBall moves the ball one step: ease current speed toward the
// target, renormalize velocity to that speed, advance, bounce off the
// side and top walls, and handle the bottom-edge life loss.
func (g *Game) integrateBall(dt float64) {
	if g.freezeTimer > 0 {
		g.freezeTimer -= dt
		g.speedCur = max(minSpeed, g.speedTarget*freezeSpeedFactor)
	} else {
		// Ease toward the target rather than snapping, so speed
		// changes read as acceleration
		diff := g.speedTarget - g.speedCur
		step := ballAccel * dt
		if math.Abs(diff) <= step {
			g.speedCur = g.speedTarget
		} else {
			g.speedCur += core.Sign(diff) * step
		}
	}

	if l := g.ballVel.Len(); l > 1e-6 {
		g.ballVel = g.ballVel.Mul(g.speedCur / l)
	}
	g.ballPos = g.ballPos.Add(g.ballVel.Mul(dt))

	// Side and top walls reflect with a positional correction so the
	// ball ends the step inside the world
	if g.ballPos.X() < g.ballRadius {
		overshoot := g.ballRadius - g.ballPos.X()
		g.ballPos[0] += overshoot * wallBounceGain
		g.reflectBall(core.V(1, 0))
	} else if g.ballPos.X() > g.world.X()-g.ballRadius {
		overshoot := g.ballPos.X() - (g.world.X() - g.ballRadius)
		g.ballPos[0] -= overshoot * wallBounceGain
		g.reflectBall(core.V(-1, 0))
	}
	if g.ballPos.Y() < g.ballRadius {
		overshoot := g.ballRadius - g.ballPos.Y()
		g.ballPos[1] += overshoot * wallBounceGain
		g.reflectBall(core.V(0, 1))
	}

	// Bottom edge: the ball is lost once fully below the world
	if g.ballPos.Y() > g.world.Y()+g.ballRadius {
		if !g.invincible {
			g.lives--
		}
		g.comboMult = 1
		g.comboTimer = 0
		g.pierce.reset()

		if g.lives <= 0 {
			g.lives = 0
			g.phase = core.PhaseLose
			return
		}
		g.respawnBall()
	}
}

// respawnBall reseats the ball on the paddle and relaunches it up-right
// at 45 degrees at the target speed.
func (g *Game) respawnBall() {
	g.ballPos = core.V(g.paddle.Center().X(), g.paddle.Top()-g.ballRadius-1)
	g.ballVel = core.V(launchDiag, -launchDiag).Mul(g.speedTarget)
	g.trail = g.trail[:0]
}

// reflectBall mirrors the velocity across a surface normal and then
// enforces a minimum component on each axis so the ball never settles
// into a near-horizontal or near-vertical shuttle.
func (g *Game) reflectBall(normal core.Vec) {
	v := g.ballVel
	reflected := v.Sub(normal.Mul(2 * v.Dot(normal)))

	minComp := reflectMinFrac * g.speedCur
	if math.Abs(reflected.X()) < minComp {
		s := core.Sign(reflected.X())
		if reflected.X() == 0 {
			s = float64(g.rng.Intn(2)*2 - 1)
		}
		reflected[0] = s * minComp
	}
	if math.Abs(reflected.Y()) < minComp {
		s := core.Sign(reflected.Y())
		if reflected.Y() == 0 {
			s = -1
		}
		reflected[1] = s * minComp
	}
	g.ballVel = reflected
}

// bounceFromPaddle redirects the ball based on where it struck the
// paddle: center hits go straight up, edge hits go out at up to about
// 34 degrees.
func (g *Game) bounceFromPaddle(hit core.Vec) {
	t := (hit.X() - g.paddle.Left()) / max(1, g.paddle.Size.X())
	angle := (t - 0.5) * 1.2
	g.ballVel = core.FromAngle(angle).Mul(g.speedCur)
}
