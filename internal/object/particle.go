package object

import (
	"math"
	"math/rand"
	"time"
)

// Particle is a short-lived visual effect in playfield units.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity, units per second
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity kept per 1/60 s (1.0 = no drag)
}

// Visible reports whether the particle has not yet faded out. Particles are
// hidden for the last quarter of their life.
func (p Particle) Visible() bool {
	if p.MaxLifetime <= 0 {
		return p.Lifetime > 0
	}
	return p.Lifetime/p.MaxLifetime >= 0.25
}

// ParticleSystem owns the effect particles of one front end. Particles are
// presentation only and never feed back into the simulation.
type ParticleSystem struct {
	particles []Particle
	rng       *rand.Rand
	drag      float64
}

// NewParticleSystem creates an empty system. A nil rng is replaced with a
// time-seeded source.
func NewParticleSystem(rng *rand.Rand, drag float64) *ParticleSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ParticleSystem{rng: rng, drag: drag}
}

// Explode creates count particles in a circular burst around (x, y).
func (s *ParticleSystem) Explode(x, y float64, count int, speed, lifetime float64) {
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		// Speed varies 50% to 150%, lifetime 50% to 100%.
		spd := speed * (0.5 + s.rng.Float64())
		life := lifetime * (0.5 + s.rng.Float64()*0.5)

		s.particles = append(s.particles, Particle{
			X:           x,
			Y:           y,
			VX:          math.Cos(angle) * spd,
			VY:          math.Sin(angle) * spd,
			Lifetime:    life,
			MaxLifetime: life,
			Drag:        s.drag,
		})
	}
}

// Update moves particles by dt seconds and drops expired ones and those that
// left the playfield.
func (s *ParticleSystem) Update(dt float64) {
	kept := s.particles[:0]
	for _, p := range s.particles {
		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			continue
		}

		dragFactor := math.Pow(p.Drag, dt*60)
		p.VX *= dragFactor
		p.VY *= dragFactor
		p.X += p.VX * dt
		p.Y += p.VY * dt

		if p.X < PlayfieldMin || p.X > PlayfieldMax || p.Y < PlayfieldMin || p.Y > PlayfieldMax {
			continue
		}
		kept = append(kept, p)
	}
	clear(s.particles[len(kept):])
	s.particles = kept
}

// Particles returns a copy of the live particles.
func (s *ParticleSystem) Particles() []Particle {
	return append([]Particle(nil), s.particles...)
}

// Len returns the number of live particles.
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}

// Clear removes every particle.
func (s *ParticleSystem) Clear() {
	s.particles = s.particles[:0]
}
