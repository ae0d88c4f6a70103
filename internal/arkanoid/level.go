// Package arkanoid implements the simulation core of a brick-breaking
// arcade game: per-frame ball physics, collision resolution against a
// paddle and a destructible brick grid, a falling-powerup economy and a
// cosmetic particle feed. The core performs no I/O and never reads a
// clock; the platform supplies elapsed time and input snapshots.
package arkanoid

import (
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Level layout constants. The grid occupies the top 45% of the world,
// inside fixed margins, and bricks never shrink below a minimum size.
const (
	levelSeed      = 1337
	gridTopMargin  = 40.0
	gridSideMargin = 20.0
	gridAreaFrac   = 0.45
	brickMinWidth  = 5.0
	brickMinHeight = 8.0

	bonusBrickChance = 0.15
)

// Brick is a single destructible cell of the level grid. Bricks are
// created once per build and mutated on hit; they are never resurrected
// except by a full rebuild.
type Brick struct {
	Rect      core.Rect
	Alive     bool
	Score     int // Base score; multipliers apply on top
	Bonus     bool
	HP        int // 1..3
	BaseColor core.RGB
	Color     core.RGB // Current color, tinted as damage accumulates
}

// Level is the brick grid plus its computed geometry.
type Level struct {
	Cols, Rows int
	BrickSize  core.Vec
	Origin     core.Vec
	Bricks     []Brick // Row-major: index = row*Cols + col
}

// buildLevel lays out the brick grid for the given settings. The
// generator uses a fixed seed, so rebuilding with identical settings
// reproduces an identical grid: same hit points, bonus flags and colors
// in the same draw order.
func buildLevel(s config.Settings, world core.Vec) *Level {
	cols := s.Bricks.Columns
	rows := s.Bricks.Rows
	padX := s.Bricks.PaddingX
	padY := s.Bricks.PaddingY

	areaW := world.X() - gridSideMargin*2
	areaH := world.Y()*gridAreaFrac - gridTopMargin

	totalPadX := padX * float64(cols-1)
	totalPadY := padY * float64(rows-1)
	bw := max(brickMinWidth, (areaW-totalPadX)/float64(cols))
	bh := max(brickMinHeight, (areaH-totalPadY)/float64(rows))

	lvl := &Level{
		Cols:      cols,
		Rows:      rows,
		BrickSize: core.V(bw, bh),
		Origin:    core.V(gridSideMargin, gridTopMargin),
		Bricks:    make([]Brick, 0, cols*rows),
	}

	r := newRNG(levelSeed)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := lvl.Origin.X() + float64(col)*(bw+padX)
			y := lvl.Origin.Y() + float64(row)*(bh+padY)

			b := Brick{
				Rect:  core.NewRect(x, y, bw, bh),
				Alive: true,
				// Higher rows are worth more
				Score: 10 + (rows-1-row)*2,
			}

			b.Bonus = r.Float64() < bonusBrickChance
			if b.Bonus {
				b.BaseColor = core.Color(255, 200, 80)
			} else {
				b.BaseColor = core.Color(140+90*row/max(1, rows-1), 180, 230)
			}

			switch roll := r.Intn(100); {
			case roll < 5:
				b.HP = 3
			case roll < 25:
				b.HP = 2
			default:
				b.HP = 1
			}

			b.Color = b.BaseColor
			lvl.Bricks = append(lvl.Bricks, b)
		}
	}
	return lvl
}

// AliveCount returns the number of bricks still standing.
func (l *Level) AliveCount() int {
	count := 0
	for i := range l.Bricks {
		if l.Bricks[i].Alive {
			count++
		}
	}
	return count
}

// damageTint shifts a brick's base color toward a "scorched" hue as hit
// points drop: warmer red, dimmer green/blue, with floors so bricks stay
// visible.
func damageTint(base core.RGB, hp int) core.RGB {
	r, g, b := int(base.R), int(base.G), int(base.B)
	switch hp {
	case 2:
		r = min(255, r+30)
		g = max(60, g-20)
		b = max(30, b-60)
	case 1:
		r = min(255, r+60)
		g = max(40, g-40)
		b = max(20, b-100)
	}
	return core.Color(r, g, b)
}
