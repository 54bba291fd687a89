package object

import "github.com/bomma/arcade/internal/physics"

// Player tracks the player's position and health.
type Player struct {
	X, Y      float64
	health    int
	maxHealth int
}

// NewPlayer creates a player at (x, y) with full health.
func NewPlayer(x, y float64, maxHealth int) *Player {
	if maxHealth < 1 {
		maxHealth = 1
	}
	p := &Player{health: maxHealth, maxHealth: maxHealth}
	p.X = physics.Clamp(x, PlayfieldMin, PlayfieldMax)
	p.Y = physics.Clamp(y, PlayfieldMin, PlayfieldMax)
	return p
}

// Position returns the player's current position.
func (p *Player) Position() Point {
	return Point{X: p.X, Y: p.Y}
}

// Health returns the current health.
func (p *Player) Health() int {
	return p.health
}

// MaxHealth returns the health the player started with.
func (p *Player) MaxHealth() int {
	return p.maxHealth
}

// IsDefeated reports whether health has reached 0.
func (p *Player) IsDefeated() bool {
	return p.health <= 0
}

// ApplyDamage subtracts amount from health, flooring at 0. defeated is true
// whenever health is 0 after the call, including calls made at 0 health.
func (p *Player) ApplyDamage(amount int) (newHealth int, defeated bool) {
	if amount < 0 {
		amount = 0
	}
	p.health -= amount
	if p.health < 0 {
		p.health = 0
	}
	return p.health, p.health == 0
}

// Move shifts the player by (dx, dy), keeping it on the playfield.
func (p *Player) Move(dx, dy float64) {
	p.X = physics.Clamp(p.X+dx, PlayfieldMin, PlayfieldMax)
	p.Y = physics.Clamp(p.Y+dy, PlayfieldMin, PlayfieldMax)
}
