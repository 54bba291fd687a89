package object

import (
	"math"
	"math/rand"
	"time"

	"github.com/bomma/arcade/internal/catalog"
	"github.com/bomma/arcade/internal/physics"
)

// Spawn area. Enemies keep away from the playfield edges.
const (
	SpawnMin = 10.0
	SpawnMax = 90.0
)

// Enemy is one member of a wave.
type Enemy struct {
	ID        int
	X, Y      float64
	Health    int
	MaxHealth int
	Type      string  // Presentational tag derived from the genre
	Size      float64 // Presentational diameter
}

// HealthFraction returns Health/MaxHealth in [0, 1].
func (e Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}

// EnemyPool owns the live enemies of one session.
type EnemyPool struct {
	enemies []*Enemy // Spawn order
	nextID  int
	rng     *rand.Rand
}

// NewEnemyPool creates an empty pool drawing spawn positions from rng.
// A nil rng is replaced with a time-seeded source.
func NewEnemyPool(rng *rand.Rand) *EnemyPool {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &EnemyPool{
		nextID: 1,
		rng:    rng,
	}
}

// Spawn replaces the pool's members with a new wave sized and armored by the
// config's difficulty.
func (p *EnemyPool) Spawn(cfg catalog.GameConfig) []Enemy {
	count := cfg.Difficulty.WaveSize()
	health := cfg.Difficulty.EnemyHealth()
	enemyType := catalog.EnemyType(cfg.Genre)
	size := cfg.Difficulty.EnemySize()

	p.enemies = p.enemies[:0]
	wave := make([]Enemy, 0, count)
	for i := 0; i < count; i++ {
		e := &Enemy{
			ID:        p.nextID,
			X:         SpawnMin + p.rng.Float64()*(SpawnMax-SpawnMin),
			Y:         SpawnMin + p.rng.Float64()*(SpawnMax-SpawnMin),
			Health:    health,
			MaxHealth: health,
			Type:      enemyType,
			Size:      size,
		}
		p.nextID++
		p.enemies = append(p.enemies, e)
		wave = append(wave, *e)
	}
	return wave
}

// ApplyHit decrements an enemy's health. The enemy is removed, and removed is
// reported true, on the hit that takes it to 0. Unknown ids are a no-op
// returning (0, false) so late hits against an already destroyed enemy are
// tolerated.
func (p *EnemyPool) ApplyHit(id, damage int) (remaining int, removed bool) {
	if damage < 1 {
		damage = 1
	}
	idx := p.indexOf(id)
	if idx < 0 {
		return 0, false
	}

	e := p.enemies[idx]
	e.Health -= damage
	if e.Health > 0 {
		return e.Health, false
	}

	e.Health = 0
	p.enemies = append(p.enemies[:idx], p.enemies[idx+1:]...)
	return 0, true
}

// IsEmpty reports whether the wave has been cleared.
func (p *EnemyPool) IsEmpty() bool {
	return len(p.enemies) == 0
}

// Len returns the number of live enemies.
func (p *EnemyPool) Len() int {
	return len(p.enemies)
}

// Get returns a copy of the enemy with the given id.
func (p *EnemyPool) Get(id int) (Enemy, bool) {
	idx := p.indexOf(id)
	if idx < 0 {
		return Enemy{}, false
	}
	return *p.enemies[idx], true
}

// Enemies returns copies of the live enemies in spawn order.
func (p *EnemyPool) Enemies() []Enemy {
	out := make([]Enemy, len(p.enemies))
	for i, e := range p.enemies {
		out[i] = *e
	}
	return out
}

// Nearest returns the live enemy closest to (x, y). Ties go to the earlier spawn.
func (p *EnemyPool) Nearest(x, y float64) (Enemy, bool) {
	var best *Enemy
	bestDist := math.Inf(1)
	for _, e := range p.enemies {
		d := physics.DistanceSquared(x, y, e.X, e.Y)
		if d < bestDist {
			best = e
			bestDist = d
		}
	}
	if best == nil {
		return Enemy{}, false
	}
	return *best, true
}

// Approach moves every live enemy toward (x, y) by at most speed units.
func (p *EnemyPool) Approach(x, y, speed float64) {
	if speed <= 0 {
		return
	}
	for _, e := range p.enemies {
		e.X, e.Y = physics.MoveToward(e.X, e.Y, x, y, speed)
		e.X = physics.Clamp(e.X, PlayfieldMin, PlayfieldMax)
		e.Y = physics.Clamp(e.Y, PlayfieldMin, PlayfieldMax)
	}
}

// Clear removes every enemy.
func (p *EnemyPool) Clear() {
	p.enemies = p.enemies[:0]
}

func (p *EnemyPool) indexOf(id int) int {
	for i, e := range p.enemies {
		if e.ID == id {
			return i
		}
	}
	return -1
}
