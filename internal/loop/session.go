// Package loop drives the arcade simulation: a Session owns one game's state
// holders and advances them one fixed tick at a time.
package loop

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bomma/arcade/internal/catalog"
	"github.com/bomma/arcade/internal/object"
	"github.com/bomma/arcade/internal/physics"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	Rand   *rand.Rand  // Spawn position source; time-seeded when nil
	Logger *log.Logger // Discards output when nil
	Tuning Tuning      // DefaultTuning when zero
}

// TickResult summarizes what happened during one tick.
type TickResult struct {
	Hits        int         // Projectiles that landed on a live enemy
	Kills       int         // Enemies removed this tick
	Destroyed   []EnemyView // Enemies removed this tick, as last seen
	Points      int         // Score awarded this tick
	Message     string      // Score message, empty when nothing was killed
	WaveSpawned bool        // A new wave replaced a cleared one
	Damage      int         // Health the player lost
	GameOver    bool        // The player was defeated this tick
}

// Session is one single-player game. All methods are safe for concurrent use;
// ticks are serialized and never overlap with each other or with End.
type Session struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *log.Logger
	tuning Tuning

	phase       Phase
	cfg         catalog.GameConfig
	player      *object.Player
	enemies     *object.EnemyPool
	projectiles *object.ProjectilePool
	score       *object.ScoreKeeper

	tick        uint64
	wave        int
	lastFire    uint64
	hasFired    bool
	message     string
	messageTick uint64
}

// NewSession creates an idle session.
func NewSession(opts SessionOptions) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tuning := opts.Tuning
	if tuning == (Tuning{}) {
		tuning = DefaultTuning()
	}
	return &Session{
		rng:    rng,
		logger: logger,
		tuning: tuning,
		phase:  PhaseIdle,
	}
}

// Start begins a new game with cfg, discarding any previous game's state.
// The first wave is spawned before Start returns.
func (s *Session) Start(cfg catalog.GameConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = cfg
	s.player = object.NewPlayer(s.tuning.PlayerStartX, s.tuning.PlayerStartY, s.tuning.PlayerMaxHealth)
	s.enemies = object.NewEnemyPool(s.rng)
	s.projectiles = object.NewProjectilePool()
	s.score = object.NewScoreKeeper()
	s.tick = 0
	s.wave = 0
	s.hasFired = false
	s.message = ""

	s.logger.Info("session started", "difficulty", cfg.Difficulty, "genre", cfg.Genre)
	s.spawnWaveLocked()
	s.phase = PhaseRunning
}

// End discards all game state and returns the session to Idle.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseIdle {
		return
	}
	s.logger.Info("session ended", "phase", s.phase, "score", s.score.Score(), "wave", s.wave)
	s.phase = PhaseIdle
	s.player = nil
	s.enemies = nil
	s.projectiles = nil
	s.score = nil
	s.message = ""
}

// Phase returns the current state.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Tuning returns the session's simulation constants.
func (s *Session) Tuning() Tuning {
	return s.tuning
}

// Tick advances the game by one time quantum. Outside Running it does nothing.
func (s *Session) Tick() TickResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res TickResult
	if s.phase != PhaseRunning {
		return res
	}
	s.tick++

	pos := s.player.Position()
	s.enemies.Approach(pos.X, pos.Y, s.tuning.EnemySpeed)

	for _, p := range s.projectiles.Advance(s.tuning.ProjectileStep) {
		if !s.projectileLandedLocked(p) {
			continue
		}
		if !p.Arrived() {
			s.projectiles.Remove(p.ID)
		}
		target, _ := s.enemies.Get(p.TargetID)
		remaining, removed := s.enemies.ApplyHit(p.TargetID, s.tuning.ProjectileDamage)
		if removed || remaining > 0 {
			res.Hits++
		}
		if removed {
			res.Kills++
			target.Health = 0
			res.Destroyed = append(res.Destroyed, enemyView(target))
		}
	}

	if res.Kills > 0 {
		res.Points, res.Message = s.score.RegisterKills(res.Kills, s.cfg)
		s.message = res.Message
		s.messageTick = s.tick
	}

	if s.enemies.IsEmpty() {
		s.spawnWaveLocked()
		s.phase = PhaseRunning
		res.WaveSpawned = true
	}

	before := s.player.Health()
	for _, e := range s.enemies.Enemies() {
		if !physics.PointInCircle(e.X, e.Y, pos.X, pos.Y, s.tuning.MeleeRadius) {
			continue
		}
		if _, defeated := s.player.ApplyDamage(s.tuning.MeleeDamage); defeated {
			res.GameOver = true
			break
		}
	}
	res.Damage = before - s.player.Health()

	if res.GameOver {
		s.phase = PhaseGameOver
		s.logger.Info("game over", "score", s.score.Score(), "wave", s.wave, "ticks", s.tick)
	}
	return res
}

// Move shifts the player by (dx, dy) playfield units while Running.
func (s *Session) Move(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return
	}
	s.player.Move(dx, dy)
}

// Fire launches a projectile from the player toward target, aimed at the enemy
// targetID (0 for none). It reports false when not Running or still cooling down.
func (s *Session) Fire(target object.Point, targetID int) (object.Projectile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fireLocked(target, targetID)
}

// FireAtNearest fires at the live enemy closest to the player.
func (s *Session) FireAtNearest() (object.Projectile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return object.Projectile{}, false
	}
	pos := s.player.Position()
	e, ok := s.enemies.Nearest(pos.X, pos.Y)
	if !ok {
		return object.Projectile{}, false
	}
	return s.fireLocked(object.Point{X: e.X, Y: e.Y}, e.ID)
}

// FireAt fires toward a pointer location. An enemy within the pointer snap
// radius of the location becomes the projectile's target.
func (s *Session) FireAt(target object.Point) (object.Projectile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return object.Projectile{}, false
	}
	targetID := 0
	if e, ok := s.enemies.Nearest(target.X, target.Y); ok &&
		physics.PointInCircle(e.X, e.Y, target.X, target.Y, s.tuning.PointerSnapRadius) {
		target = object.Point{X: e.X, Y: e.Y}
		targetID = e.ID
	}
	return s.fireLocked(target, targetID)
}

func (s *Session) fireLocked(target object.Point, targetID int) (object.Projectile, bool) {
	if s.phase != PhaseRunning {
		return object.Projectile{}, false
	}
	if s.hasFired && s.tick-s.lastFire < s.tuning.FireCooldownTicks {
		return object.Projectile{}, false
	}
	s.hasFired = true
	s.lastFire = s.tick

	target.X = physics.Clamp(target.X, object.PlayfieldMin, object.PlayfieldMax)
	target.Y = physics.Clamp(target.Y, object.PlayfieldMin, object.PlayfieldMax)
	return s.projectiles.Fire(s.player.Position(), target, targetID), true
}

// projectileLandedLocked reports whether p hits this tick: on arrival, or once
// it is within the hit radius of its live target.
func (s *Session) projectileLandedLocked(p object.Projectile) bool {
	if p.Arrived() {
		return true
	}
	e, ok := s.enemies.Get(p.TargetID)
	if !ok {
		return false
	}
	pos := p.Position()
	return physics.PointInCircle(pos.X, pos.Y, e.X, e.Y, s.tuning.HitRadius)
}

func (s *Session) spawnWaveLocked() {
	s.phase = PhaseSpawning
	wave := s.enemies.Spawn(s.cfg)
	s.wave++
	s.logger.Debug("wave spawned", "wave", s.wave, "enemies", len(wave))
}
