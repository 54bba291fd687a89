// Package config centralizes all tunable game parameters.
package config

import "time"

// Simulation tick rate. Each tick is one fixed time quantum.
const (
	TickRate = 30
	TickTime = time.Second / TickRate
)

// Player
const (
	PlayerMaxHealth = 100
	PlayerStartX    = 50.0
	PlayerStartY    = 98.0
	PlayerSpeed     = 1.5 // Playfield units per tick of held movement
)

// Projectiles
const (
	ProjectileStep    = 0.125 // Progress per tick (8 ticks of flight)
	ProjectileDamage  = 1
	HitRadius         = 3.0
	FireCooldownTicks = 5
	PointerSnapRadius = 8.0 // Pointer shots target an enemy this close to the click
)

// Enemies
const (
	EnemySpeed  = 0.12 // Playfield units per tick toward the player
	MeleeRadius = 5.0
	MeleeDamage = 15 // Applied per enemy in range, per tick
)

// Kill effects
const (
	ExplosionParticles = 12
	ExplosionSpeed     = 30.0 // Playfield units per second
	ExplosionLifetime  = 0.5  // Seconds
	ParticleDrag       = 0.9
)

// Client
const (
	MessageDisplayTicks = TickRate * 2 // How long score messages stay on screen
	MaxTermWidth        = 160
	MaxTermHeight       = 60
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)
