package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// collideBallRect tests the ball circle against a rectangle. On contact
// it reports the closest point on the rectangle to the ball center and
// the outward normal of the side with minimal penetration.
func (g *Game) collideBallRect(r core.Rect) (normal, hit core.Vec, ok bool) {
	closest := r.ClosestPoint(g.ballPos)
	d := g.ballPos.Sub(closest)
	if d.LenSqr() > g.ballRadius*g.ballRadius {
		return core.Vec{}, core.Vec{}, false
	}

	dxLeft := math.Abs(g.ballPos.X() + g.ballRadius - r.Left())
	dxRight := math.Abs(r.Right() - (g.ballPos.X() - g.ballRadius))
	dyTop := math.Abs(g.ballPos.Y() + g.ballRadius - r.Top())
	dyBottom := math.Abs(r.Bottom() - (g.ballPos.Y() - g.ballRadius))

	minPen := min(dxLeft, dxRight, dyTop, dyBottom)
	switch minPen {
	case dxLeft:
		normal = core.V(-1, 0)
	case dxRight:
		normal = core.V(1, 0)
	case dyTop:
		normal = core.V(0, -1)
	default:
		normal = core.V(0, 1)
	}
	return normal, closest, true
}

// handleCollisions resolves the ball against the paddle first, then
// against live bricks in row-major order. Without pierce the first
// brick contact ends the scan; with pierce the ball plows through every
// brick it overlaps this step.
func (g *Game) handleCollisions() {
	if _, hit, ok := g.collideBallRect(g.paddle); ok {
		// Reseat just above the paddle so the ball cannot tunnel in
		g.ballPos[1] = g.paddle.Top() - g.ballRadius - 0.5
		g.bounceFromPaddle(hit)
		g.recordHit(hit, core.V(0, -1))
	}

	piercing := g.pierce.active()
	for i := range g.level.Bricks {
		b := &g.level.Bricks[i]
		if !b.Alive {
			continue
		}
		normal, hit, ok := g.collideBallRect(b.Rect)
		if !ok {
			continue
		}
		if !piercing {
			g.reflectBall(normal)
		}
		g.hitBrick(b)
		g.recordHit(hit, normal)
		if !piercing {
			break
		}
	}
}

// hitBrick applies one ball contact to a brick: multi-hit bricks lose a
// hit point and darken, single-hit bricks are destroyed with full score,
// a combo bump, a particle burst and a possible bonus drop.
func (g *Game) hitBrick(b *Brick) {
	if b.HP > 1 {
		b.HP--
		g.score += (b.Score / 3) * g.multValue
		b.Color = damageTint(b.BaseColor, b.HP)
		g.spawnParticles(b.Rect.Center(), b.Color, hitBurstCount)
		g.extendCombo()
		return
	}

	b.Alive = false
	g.score += b.Score * g.comboMult * g.multValue
	g.extendCombo()
	g.spawnParticles(b.Rect.Center(), b.Color, destroyBurstCount)
	if b.Bonus {
		g.rollBonus(b.Rect.Center())
	}
	g.onBrickDestroyed()
}

// extendCombo bumps the chain multiplier and rewinds its decay window.
func (g *Game) extendCombo() {
	g.comboMult = min(comboMax, g.comboMult+1)
	g.comboTimer = comboWindow
}

// onBrickDestroyed advances the destruction tally and speeds the ball
// up every few bricks to keep late-game pressure up.
func (g *Game) onBrickDestroyed() {
	g.destroyed++
	if g.destroyed%bricksPerSpeedup == 0 {
		g.speedTarget = min(g.speedTarget*speedupFactor, maxSpeedCap)
	}
}

func (g *Game) recordHit(pos, normal core.Vec) {
	g.hits = append(g.hits, core.Hit{Pos: pos, Normal: normal})
}
