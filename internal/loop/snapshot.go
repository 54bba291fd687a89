package loop

import (
	"github.com/bomma/arcade/internal/catalog"
	"github.com/bomma/arcade/internal/object"
)

// PlayerView is the player's presentation state.
type PlayerView struct {
	X, Y      float64
	Health    int
	MaxHealth int
}

// EnemyView is one live enemy as the presentation layer sees it.
type EnemyView struct {
	ID             int
	X, Y           float64
	Health         int
	HealthFraction float64
	Type           string
	Size           float64
}

// ProjectileView is an in-flight projectile at its interpolated position.
type ProjectileView struct {
	ID       int
	X, Y     float64
	Progress float64
}

// Snapshot is an immutable copy of a session's state.
type Snapshot struct {
	Phase       Phase
	Config      catalog.GameConfig
	Tick        uint64
	Wave        int
	Player      PlayerView
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Score       int
	Kills       int
	Message     string // Most recent score message
	MessageAge  uint64 // Ticks since Message was produced
}

// Snapshot copies the current state. In Idle only Phase is set.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{Phase: s.phase}
	if s.phase == PhaseIdle {
		return snap
	}

	snap.Config = s.cfg
	snap.Tick = s.tick
	snap.Wave = s.wave
	snap.Player = PlayerView{
		X:         s.player.X,
		Y:         s.player.Y,
		Health:    s.player.Health(),
		MaxHealth: s.player.MaxHealth(),
	}

	enemies := s.enemies.Enemies()
	snap.Enemies = make([]EnemyView, len(enemies))
	for i, e := range enemies {
		snap.Enemies[i] = enemyView(e)
	}

	projectiles := s.projectiles.Projectiles()
	snap.Projectiles = make([]ProjectileView, len(projectiles))
	for i, p := range projectiles {
		pos := p.Position()
		snap.Projectiles[i] = ProjectileView{ID: p.ID, X: pos.X, Y: pos.Y, Progress: p.Progress}
	}

	snap.Score = s.score.Score()
	snap.Kills = s.score.Kills()
	if s.message != "" {
		snap.Message = s.message
		snap.MessageAge = s.tick - s.messageTick
	}
	return snap
}

func enemyView(e object.Enemy) EnemyView {
	return EnemyView{
		ID:             e.ID,
		X:              e.X,
		Y:              e.Y,
		Health:         e.Health,
		HealthFraction: e.HealthFraction(),
		Type:           e.Type,
		Size:           e.Size,
	}
}
