package object

import (
	"math"

	"github.com/bomma/arcade/internal/physics"
)

// Projectile is a shot flying from the player toward a target point.
type Projectile struct {
	ID               int
	OriginX, OriginY float64
	TargetX, TargetY float64
	TargetID         int     // Intended enemy; 0 when fired at empty space
	Progress         float64 // Flight completion in [0, 1]
}

// Position interpolates between origin and target by Progress.
func (p Projectile) Position() Point {
	return Point{
		X: physics.Lerp(p.OriginX, p.TargetX, p.Progress),
		Y: physics.Lerp(p.OriginY, p.TargetY, p.Progress),
	}
}

// Arrived reports whether the projectile has completed its flight.
func (p Projectile) Arrived() bool {
	return p.Progress >= 1
}

// ProjectilePool owns the in-flight projectiles of one session.
// It is not safe for concurrent use.
type ProjectilePool struct {
	projectiles []*Projectile // Fire order
	nextID      int
}

// NewProjectilePool creates an empty pool.
func NewProjectilePool() *ProjectilePool {
	return &ProjectilePool{nextID: 1}
}

// Fire launches a projectile from origin toward target.
func (p *ProjectilePool) Fire(origin, target Point, targetID int) Projectile {
	proj := &Projectile{
		ID:       p.nextID,
		OriginX:  origin.X,
		OriginY:  origin.Y,
		TargetX:  target.X,
		TargetY:  target.Y,
		TargetID: targetID,
	}
	p.nextID++
	p.projectiles = append(p.projectiles, proj)
	return *proj
}

// Advance moves every projectile forward by delta, clamped so progress never
// exceeds 1. It returns every projectile in fire order; those that arrived are
// included once and then dropped from the pool. A non-positive delta leaves
// progress unchanged and deltas above 1 are treated as 1. A non-finite delta
// counts as 0.
func (p *ProjectilePool) Advance(delta float64) []Projectile {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		delta = 0
	}
	delta = physics.Clamp(delta, 0, 1)

	out := make([]Projectile, 0, len(p.projectiles))
	kept := p.projectiles[:0]
	for _, proj := range p.projectiles {
		proj.Progress = physics.Clamp(proj.Progress+delta, 0, 1)
		out = append(out, *proj)
		if !proj.Arrived() {
			kept = append(kept, proj)
		}
	}
	clear(p.projectiles[len(kept):])
	p.projectiles = kept
	return out
}

// Remove drops a projectile, returning false if it was not in flight.
func (p *ProjectilePool) Remove(id int) bool {
	for i, proj := range p.projectiles {
		if proj.ID == id {
			p.projectiles = append(p.projectiles[:i], p.projectiles[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of projectiles in flight.
func (p *ProjectilePool) Len() int {
	return len(p.projectiles)
}

// Projectiles returns copies of the in-flight projectiles in fire order.
func (p *ProjectilePool) Projectiles() []Projectile {
	out := make([]Projectile, len(p.projectiles))
	for i, proj := range p.projectiles {
		out[i] = *proj
	}
	return out
}
