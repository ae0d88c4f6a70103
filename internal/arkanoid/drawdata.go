package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// DrawData exports the world-space render state for the current frame.
// The returned value is owned by the game and reused between frames;
// renderers must not hold on to it across steps.
func (g *Game) DrawData() *core.DrawData {
	d := &g.draw

	d.World = g.world
	d.Ball = core.BallView{
		Pos:    g.ballPos,
		Radius: g.ballRadius,
		Pierce: g.pierce.active(),
		Frozen: g.freezeTimer > 0,
		Trail:  g.trail,
	}
	d.Paddle = g.paddle
	d.Magnet = g.magnet.active()

	d.Bricks = d.Bricks[:0]
	for i := range g.level.Bricks {
		b := &g.level.Bricks[i]
		if !b.Alive {
			continue
		}
		d.Bricks = append(d.Bricks, core.BrickView{
			Rect:  b.Rect,
			Color: b.Color,
			HP:    b.HP,
		})
	}

	d.Bonuses = d.Bonuses[:0]
	for i := range g.bonuses {
		b := &g.bonuses[i]
		d.Bonuses = append(d.Bonuses, core.BonusView{
			Rect:  b.Rect,
			Color: b.Kind.color(),
			Label: b.Kind.Label(),
			Glow:  b.Glow,
		})
	}

	d.Particles = d.Particles[:0]
	for i := range g.particles {
		p := &g.particles[i]
		d.Particles = append(d.Particles, core.ParticleView{
			Pos:   p.Pos,
			Size:  p.Size,
			Color: p.Color,
			Alpha: p.Alpha(),
		})
	}

	d.Hits = g.hits
	d.HUD = core.HUDView{
		Score:       g.score,
		Lives:       g.lives,
		ComboMult:   g.comboMult,
		Balance:     g.wallet.Balance,
		TotalEarned: g.wallet.TotalEarned,
		SpeedCur:    g.speedCur,
		SpeedTarget: g.speedTarget,
		Message:     g.wallet.Message,
		Effects:     g.effectTags(),
	}
	d.State = g.State()
	return d
}

// effectTags lists short labels for every active modifier, in a stable
// order for the HUD.
func (g *Game) effectTags() []string {
	var tags []string
	if g.magnet.active() {
		tags = append(tags, "MAGNET")
	}
	if g.scoreMult.active() {
		tags = append(tags, fmt.Sprintf("x%d SCORE", g.multValue))
	}
	if g.pierce.active() {
		tags = append(tags, "PIERCE")
	}
	if g.slowMo.active() {
		tags = append(tags, "SLOW")
	}
	if g.trailOn {
		tags = append(tags, "TRAIL")
	}
	if g.invincible {
		tags = append(tags, "GOD")
	}
	if g.freezeTimer > 0 {
		tags = append(tags, "FREEZE")
	}
	return tags
}
