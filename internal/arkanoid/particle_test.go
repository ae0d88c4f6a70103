package arkanoid

import (
	"testing"

	"github.com/vovakirdan/arkanoid/internal/core"
)

func TestSpawnParticlesBounds(t *testing.T) {
	g := New()
	color := core.Color(255, 100, 50)
	g.spawnParticles(core.V(100, 100), color, destroyBurstCount)

	if len(g.particles) != destroyBurstCount {
		t.Fatalf("particle count = %d, want %d", len(g.particles), destroyBurstCount)
	}
	for i, p := range g.particles {
		speed := p.Vel.Len()
		if speed < particleMinSpeed-1e-9 || speed > particleMaxSpeed+1e-9 {
			t.Errorf("particle %d speed = %v, want [%v,%v]", i, speed, particleMinSpeed, particleMaxSpeed)
		}
		if p.Size < particleMinSize || p.Size > particleMaxSize {
			t.Errorf("particle %d size = %v, want [%v,%v]", i, p.Size, particleMinSize, particleMaxSize)
		}
		if p.Life < particleBaseLife || p.Life > particleBaseLife+particleLifeJit {
			t.Errorf("particle %d life = %v", i, p.Life)
		}
		if p.Color != color {
			t.Errorf("particle %d color = %+v, want %+v", i, p.Color, color)
		}
	}
}

func TestSpawnParticlesDeterministic(t *testing.T) {
	g1 := New()
	g2 := New()
	pos := core.V(321.5, 87.25)

	g1.spawnParticles(pos, core.Color(200, 200, 200), hitBurstCount)
	g2.spawnParticles(pos, core.Color(200, 200, 200), hitBurstCount)

	for i := range g1.particles {
		if g1.particles[i] != g2.particles[i] {
			t.Fatalf("particle %d differs between identical bursts", i)
		}
	}
}

func TestIntegrateParticlesGravityAndDecay(t *testing.T) {
	g := New()
	g.particles = append(g.particles, Particle{
		Pos:  core.V(100, 100),
		Vel:  core.V(50, 0),
		Life: 1.0,
		Size: 2,
	})

	g.integrateParticles(1.0 / 60)

	p := g.particles[0]
	if p.Vel.Y() <= 0 {
		t.Errorf("gravity did not pull down: vy = %v", p.Vel.Y())
	}
	if p.Vel.X() >= 50 {
		t.Errorf("damping did not slow particle: vx = %v", p.Vel.X())
	}
	if p.Pos.X() <= 100 {
		t.Errorf("particle did not advance: %v", p.Pos)
	}
	if p.Life >= 1.0 {
		t.Errorf("life did not drain: %v", p.Life)
	}
}

func TestIntegrateParticlesDropsDead(t *testing.T) {
	g := New()
	g.particles = append(g.particles,
		Particle{Pos: core.V(0, 0), Life: 0.005},
		Particle{Pos: core.V(0, 0), Life: 1.0},
	)

	g.integrateParticles(0.01)

	if len(g.particles) != 1 {
		t.Fatalf("particles = %d, want 1", len(g.particles))
	}
	if !approx(g.particles[0].Life, 0.99, 1e-9) {
		t.Errorf("wrong particle survived: life = %v", g.particles[0].Life)
	}
}

func TestParticleAlphaFadesWithLife(t *testing.T) {
	full := Particle{Life: particleFadeLife}
	if full.Alpha() != 1 {
		t.Errorf("alpha at full life = %v, want 1", full.Alpha())
	}
	half := Particle{Life: particleFadeLife / 2}
	if !approx(half.Alpha(), 0.5, 1e-9) {
		t.Errorf("alpha at half life = %v, want 0.5", half.Alpha())
	}
	dead := Particle{Life: -0.1}
	if dead.Alpha() != 0 {
		t.Errorf("alpha past death = %v, want 0", dead.Alpha())
	}
}
