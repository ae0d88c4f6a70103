package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// BonusKind enumerates the falling powerup types.
type BonusKind int

const (
	BonusSpeedUp BonusKind = iota
	BonusEnlargePaddle
	BonusExtraLife
	BonusPierce
	BonusSlowMo
	BonusPoints
	BonusMagnet
	BonusScoreMult

	bonusKindCount // sentinel for uniform spawning
)

// String returns the bonus name.
func (k BonusKind) String() string {
	switch k {
	case BonusSpeedUp:
		return "SpeedUp"
	case BonusEnlargePaddle:
		return "EnlargePaddle"
	case BonusExtraLife:
		return "ExtraLife"
	case BonusPierce:
		return "Pierce"
	case BonusSlowMo:
		return "SlowMo"
	case BonusPoints:
		return "Points"
	case BonusMagnet:
		return "Magnet"
	case BonusScoreMult:
		return "ScoreMult"
	default:
		return "Unknown"
	}
}

// Label returns the single-character tag renderers draw on the bonus.
func (k BonusKind) Label() rune {
	switch k {
	case BonusSpeedUp:
		return 'S'
	case BonusEnlargePaddle:
		return 'P'
	case BonusExtraLife:
		return 'L'
	case BonusPierce:
		return 'X'
	case BonusSlowMo:
		return 'Z'
	case BonusPoints:
		return '+'
	case BonusMagnet:
		return 'M'
	case BonusScoreMult:
		return '★'
	default:
		return '?'
	}
}

func (k BonusKind) color() core.RGB {
	switch k {
	case BonusSpeedUp:
		return core.Color(255, 180, 80)
	case BonusEnlargePaddle:
		return core.Color(120, 200, 255)
	case BonusExtraLife:
		return core.Color(200, 240, 140)
	case BonusPierce:
		return core.Color(255, 120, 120)
	case BonusSlowMo:
		return core.Color(180, 140, 255)
	case BonusPoints:
		return core.Color(255, 220, 120)
	case BonusMagnet:
		return core.Color(160, 255, 200)
	case BonusScoreMult:
		return core.Color(255, 160, 220)
	default:
		return core.Color(255, 255, 255)
	}
}

// Bonus physics constants.
const (
	bonusFallSpeed  = 80.0
	bonusSizeFrac   = 0.7 // of brick size
	bonusGlowRate   = 6.0
	bonusPointValue = 50
	bonusDespawnPad = 20.0 // how far below the world a bonus may fall
)

// Bonus is a falling powerup. It is created when a bonus-flagged brick is
// destroyed and dies on paddle pickup or when it leaves the world below.
type Bonus struct {
	Rect   core.Rect
	Kind   BonusKind
	Vel    core.Vec
	Alive  bool
	Points int     // Only meaningful for BonusPoints
	Glow   float64 // Pulse phase for rendering
}

// spawnBonusAt drops a bonus of the given kind centered on a world position.
func (g *Game) spawnBonusAt(pos core.Vec, kind BonusKind) {
	w := g.level.BrickSize.X() * bonusSizeFrac
	h := g.level.BrickSize.Y() * bonusSizeFrac
	b := Bonus{
		Rect:  core.NewRect(pos.X()-w*0.5, pos.Y()-h*0.5, w, h),
		Kind:  kind,
		Vel:   core.V(0, bonusFallSpeed),
		Alive: true,
	}
	if kind == BonusPoints {
		b.Points = bonusPointValue
	}
	g.bonuses = append(g.bonuses, b)
}

// rollBonus spawns one bonus at a destroyed brick's center, with the kind
// picked uniformly by a position-seeded generator so identical bricks
// drop identical bonuses.
func (g *Game) rollBonus(center core.Vec) {
	r := newRNG(coordSeed(center))
	g.spawnBonusAt(center, BonusKind(r.Intn(int(bonusKindCount))))
}

// integrateBonuses advances every live bonus: glow pulse, magnet seek or
// plain downward drift, paddle pickup, off-world despawn.
func (g *Game) integrateBonuses(dt float64) {
	for i := range g.bonuses {
		b := &g.bonuses[i]
		if !b.Alive {
			continue
		}

		b.Glow += dt * bonusGlowRate
		if b.Glow > 2*math.Pi {
			b.Glow -= 2 * math.Pi
		}

		if g.magnet.active() {
			// Pull toward the paddle center, stronger when close
			dir := g.paddle.Center().Sub(b.Rect.Center())
			dist := dir.Len()
			if dist > 1e-4 {
				force := magnetStrength / (0.5 + dist*0.02)
				b.Vel = b.Vel.Add(dir.Normalize().Mul(force * dt))
			}
		} else {
			b.Vel[1] = bonusFallSpeed
		}

		b.Rect.Pos = b.Rect.Pos.Add(b.Vel.Mul(dt))

		if b.Rect.Overlaps(g.paddle) {
			g.applyBonus(b)
			b.Alive = false
			continue
		}
		if b.Rect.Top() > g.world.Y()+bonusDespawnPad {
			b.Alive = false
		}
	}

	// Compact dead bonuses
	live := g.bonuses[:0]
	for _, b := range g.bonuses {
		if b.Alive {
			live = append(live, b)
		}
	}
	g.bonuses = live
}

// applyBonus applies a bonus's effect exactly once. The switch covers
// every BonusKind; bonusKindCount keeps spawning in sync with the enum.
func (g *Game) applyBonus(b *Bonus) {
	switch b.Kind {
	case BonusSpeedUp:
		g.speedTarget = min(g.speedTarget*1.15+10, maxSpeedCap)
	case BonusEnlargePaddle:
		g.resizePaddle(g.paddle.Size.X() * 1.3)
	case BonusExtraLife:
		g.lives++
	case BonusPierce:
		g.pierce.activate()
	case BonusSlowMo:
		g.slowMo.activate()
		g.speedTarget *= slowMoSpeedFactor
	case BonusPoints:
		g.score += b.Points * g.multValue
	case BonusMagnet:
		g.magnet.activate()
	case BonusScoreMult:
		g.scoreMult.activate()
		g.multValue = 2 + g.rng.Intn(2)
	}
}
