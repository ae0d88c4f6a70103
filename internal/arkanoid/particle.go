package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Particle tuning constants.
const (
	particleGravity  = 200.0
	particleDamping  = 2.0
	particleMinSpeed = 60.0
	particleMaxSpeed = 220.0
	particleMinSize  = 1.0
	particleMaxSize  = 4.0
	particleBaseLife = 0.6
	particleLifeJit  = 0.2
	particleFadeLife = 0.8 // life divisor for the alpha ramp

	hitBurstCount     = 6
	destroyBurstCount = 14
)

// Particle is one cosmetic spark. Particles never influence physics or
// scoring; they exist only for the draw feed.
type Particle struct {
	Pos   core.Vec
	Vel   core.Vec
	Life  float64
	Size  float64
	Color core.RGB
}

// Alpha returns the render opacity in [0, 1], fading out as life drains.
func (p *Particle) Alpha() float64 {
	return core.ClampF(p.Life/particleFadeLife, 0, 1)
}

// spawnParticles bursts count sparks at a world position. The generator
// is seeded from the position so an identical impact produces an
// identical burst.
func (g *Game) spawnParticles(pos core.Vec, color core.RGB, count int) {
	r := newRNG(coordSeed(pos))
	for i := 0; i < count; i++ {
		a := r.Range(-math.Pi, math.Pi)
		speed := r.Range(particleMinSpeed, particleMaxSpeed)
		g.particles = append(g.particles, Particle{
			Pos:   pos,
			Vel:   core.V(math.Cos(a), math.Sin(a)).Mul(speed),
			Life:  particleBaseLife + r.Float64()*particleLifeJit,
			Size:  r.Range(particleMinSize, particleMaxSize),
			Color: color,
		})
	}
}

// integrateParticles advances sparks under gravity and drag and drops
// the ones whose life has run out.
func (g *Game) integrateParticles(dt float64) {
	live := g.particles[:0]
	for i := range g.particles {
		p := &g.particles[i]
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
		p.Vel[1] += particleGravity * dt
		p.Vel = p.Vel.Mul(1 - particleDamping*dt)
		p.Life -= dt
		if p.Life > 0 {
			live = append(live, *p)
		}
	}
	g.particles = live
}
