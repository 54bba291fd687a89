package loop

import (
	"math/rand"
	"reflect"
	"sync"
	"testing"

	"github.com/bomma/arcade/internal/catalog"
	"github.com/bomma/arcade/internal/object"
)

// testTuning disables enemy movement and fire cooldown so scenarios are exact.
func testTuning() Tuning {
	t := DefaultTuning()
	t.EnemySpeed = 0
	t.FireCooldownTicks = 0
	return t
}

func newTestSession(t Tuning) *Session {
	return NewSession(SessionOptions{
		Rand:   rand.New(rand.NewSource(42)),
		Tuning: t,
	})
}

func TestSessionPhases(t *testing.T) {
	s := newTestSession(testTuning())
	if s.Phase() != PhaseIdle {
		t.Fatalf("expected idle, got %v", s.Phase())
	}
	if res := s.Tick(); !reflect.DeepEqual(res, TickResult{}) {
		t.Errorf("expected idle tick to be a no-op, got %+v", res)
	}
	if _, ok := s.FireAtNearest(); ok {
		t.Error("expected fire to be rejected while idle")
	}

	s.Start(catalog.GameConfig{Difficulty: catalog.DifficultyMedium, Genre: "ocean"})
	if s.Phase() != PhaseRunning {
		t.Fatalf("expected running after start, got %v", s.Phase())
	}
	snap := s.Snapshot()
	if snap.Wave != 1 || len(snap.Enemies) != 5 {
		t.Errorf("expected wave 1 with 5 enemies, got wave %d with %d", snap.Wave, len(snap.Enemies))
	}
	if snap.Player.Health != 100 {
		t.Errorf("expected full health, got %d", snap.Player.Health)
	}

	s.End()
	if s.Phase() != PhaseIdle {
		t.Errorf("expected idle after end, got %v", s.Phase())
	}
	if snap := s.Snapshot(); snap.Enemies != nil || snap.Score != 0 {
		t.Errorf("expected empty snapshot after end, got %+v", snap)
	}
}

func TestSessionTwoProjectilesSameTarget(t *testing.T) {
	s := newTestSession(testTuning())
	cfg := catalog.GameConfig{Difficulty: catalog.DifficultyMedium, Genre: "ocean"}
	s.Start(cfg)

	target := s.Snapshot().Enemies[0]
	point := object.Point{X: target.X, Y: target.Y}
	if _, ok := s.Fire(point, target.ID); !ok {
		t.Fatal("expected first shot to fire")
	}
	if _, ok := s.Fire(point, target.ID); !ok {
		t.Fatal("expected second shot to fire")
	}

	var kills, points, killTicks int
	var message string
	for i := 0; i < 20; i++ {
		res := s.Tick()
		if res.Kills > 0 {
			killTicks++
			kills += res.Kills
			points += res.Points
			message = res.Message
		}
	}

	if killTicks != 1 || kills != 1 {
		t.Errorf("expected one kill registered once, got %d kills over %d ticks", kills, killTicks)
	}
	if points != 10 || s.Snapshot().Score != 10 {
		t.Errorf("expected 10 points, got %d (score %d)", points, s.Snapshot().Score)
	}
	if message != "You shot down a shark!" {
		t.Errorf("unexpected message %q", message)
	}

	snap := s.Snapshot()
	if len(snap.Enemies) != 4 {
		t.Errorf("expected 4 enemies left, got %d", len(snap.Enemies))
	}
	for _, e := range snap.Enemies {
		if e.ID == target.ID {
			t.Errorf("expected enemy %d to be removed", target.ID)
		}
	}
	if len(snap.Projectiles) != 0 {
		t.Errorf("expected both projectiles consumed, got %d", len(snap.Projectiles))
	}
}

func TestSessionEasyWaveOneHitEach(t *testing.T) {
	s := newTestSession(testTuning())
	s.Start(catalog.GameConfig{Difficulty: catalog.DifficultyEasy, Genre: "space"})

	wave := s.Snapshot().Enemies
	if len(wave) != 3 {
		t.Fatalf("expected 3 enemies, got %d", len(wave))
	}
	for _, e := range wave {
		if e.Health != 1 {
			t.Errorf("expected health 1, got %d", e.Health)
		}
		if _, ok := s.Fire(object.Point{X: e.X, Y: e.Y}, e.ID); !ok {
			t.Fatalf("expected shot at enemy %d", e.ID)
		}
	}

	var kills, spawned int
	destroyed := map[int]EnemyView{}
	for i := 0; i < 20; i++ {
		res := s.Tick()
		kills += res.Kills
		if len(res.Destroyed) != res.Kills {
			t.Errorf("expected one destroyed view per kill, got %d for %d", len(res.Destroyed), res.Kills)
		}
		for _, d := range res.Destroyed {
			destroyed[d.ID] = d
		}
		if res.WaveSpawned {
			spawned++
		}
	}

	if kills != 3 {
		t.Errorf("expected 3 kills, got %d", kills)
	}
	for _, e := range wave {
		d, ok := destroyed[e.ID]
		if !ok {
			t.Errorf("expected enemy %d reported destroyed", e.ID)
			continue
		}
		if d.Health != 0 || d.Type != "ufo" {
			t.Errorf("expected destroyed ufo at 0 health, got %+v", d)
		}
	}
	if spawned != 1 {
		t.Errorf("expected exactly one respawn, got %d", spawned)
	}
	snap := s.Snapshot()
	if snap.Score != 15 {
		t.Errorf("expected score 15, got %d", snap.Score)
	}
	if snap.Wave != 2 || len(snap.Enemies) != 3 {
		t.Errorf("expected wave 2 with 3 enemies, got wave %d with %d", snap.Wave, len(snap.Enemies))
	}
	for _, e := range snap.Enemies {
		for _, old := range wave {
			if e.ID == old.ID {
				t.Errorf("enemy id %d reused in the new wave", e.ID)
			}
		}
	}
}

func TestSessionMeleeDefeat(t *testing.T) {
	tuning := testTuning()
	tuning.PlayerMaxHealth = 10
	s := newTestSession(tuning)
	s.Start(catalog.GameConfig{Difficulty: catalog.DifficultyEasy})

	snap := s.Snapshot()
	e := snap.Enemies[0]
	s.Move(e.X-snap.Player.X, e.Y-snap.Player.Y)

	res := s.Tick()
	if !res.GameOver {
		t.Fatal("expected game over")
	}
	if res.Damage != 10 {
		t.Errorf("expected 10 health lost, got %d", res.Damage)
	}
	if s.Phase() != PhaseGameOver {
		t.Errorf("expected game over phase, got %v", s.Phase())
	}
	if h := s.Snapshot().Player.Health; h != 0 {
		t.Errorf("expected health clamped to 0, got %d", h)
	}

	// Later ticks and commands are ignored.
	if res := s.Tick(); !reflect.DeepEqual(res, TickResult{}) {
		t.Errorf("expected no-op tick after game over, got %+v", res)
	}
	if _, ok := s.FireAtNearest(); ok {
		t.Error("expected fire to be rejected after game over")
	}
}

func TestSessionMeleeDamagePerTick(t *testing.T) {
	s := newTestSession(testTuning())
	s.Start(catalog.GameConfig{Difficulty: catalog.DifficultyEasy})

	snap := s.Snapshot()
	e := snap.Enemies[0]
	s.Move(e.X-snap.Player.X, e.Y-snap.Player.Y)

	last := snap.Player.Health
	for i := 0; i < 20 && s.Phase() == PhaseRunning; i++ {
		res := s.Tick()
		h := s.Snapshot().Player.Health
		if h > last {
			t.Fatalf("player health increased from %d to %d", last, h)
		}
		if h < 0 || h > 100 {
			t.Fatalf("player health %d out of range", h)
		}
		if res.Damage != last-h {
			t.Errorf("expected reported damage %d, got %d", last-h, res.Damage)
		}
		last = h
	}
	if s.Phase() != PhaseGameOver {
		t.Errorf("expected the player to be defeated by melee, phase %v", s.Phase())
	}
}

func TestSessionFireCooldown(t *testing.T) {
	tuning := testTuning()
	tuning.FireCooldownTicks = 3
	s := newTestSession(tuning)
	s.Start(catalog.GameConfig{Difficulty: catalog.DifficultyHard})

	if _, ok := s.FireAtNearest(); !ok {
		t.Fatal("expected first shot")
	}
	if _, ok := s.FireAtNearest(); ok {
		t.Error("expected second shot in the same tick to be rejected")
	}
	s.Tick()
	s.Tick()
	if _, ok := s.FireAtNearest(); ok {
		t.Error("expected shot before cooldown expiry to be rejected")
	}
	s.Tick()
	if _, ok := s.FireAtNearest(); !ok {
		t.Error("expected shot after cooldown")
	}
}

func TestSessionFireAtPointer(t *testing.T) {
	s := newTestSession(testTuning())
	s.Start(catalog.GameConfig{Difficulty: catalog.DifficultyMedium})
	e := s.Snapshot().Enemies[2]

	p, ok := s.FireAt(object.Point{X: e.X + 1, Y: e.Y - 1})
	if !ok {
		t.Fatal("expected pointer shot")
	}
	if p.TargetID != e.ID || p.TargetX != e.X || p.TargetY != e.Y {
		t.Errorf("expected shot snapped to enemy %d, got target %d at (%f, %f)", e.ID, p.TargetID, p.TargetX, p.TargetY)
	}

	// A miss at empty space expires without touching any enemy.
	s2 := newTestSession(testTuning())
	s2.Start(catalog.GameConfig{Difficulty: catalog.DifficultyEasy})
	before := s2.Snapshot().Enemies
	miss, ok := s2.Fire(object.Point{X: 0, Y: 0}, 0)
	if !ok || miss.TargetID != 0 {
		t.Fatalf("expected untargeted shot, got %+v (ok=%v)", miss, ok)
	}
	for i := 0; i < 10; i++ {
		if res := s2.Tick(); res.Hits != 0 {
			t.Errorf("expected no hits from an untargeted shot, got %d", res.Hits)
		}
	}
	after := s2.Snapshot().Enemies
	if len(after) != len(before) {
		t.Errorf("expected %d enemies untouched, got %d", len(before), len(after))
	}
}

func TestSessionStartResetsState(t *testing.T) {
	s := newTestSession(testTuning())
	cfg := catalog.GameConfig{Difficulty: catalog.DifficultyEasy}
	s.Start(cfg)

	e := s.Snapshot().Enemies[0]
	s.Fire(object.Point{X: e.X, Y: e.Y}, e.ID)
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if s.Snapshot().Score == 0 {
		t.Fatal("expected a score before restart")
	}

	s.Start(cfg)
	snap := s.Snapshot()
	if snap.Score != 0 || snap.Wave != 1 || snap.Tick != 0 || snap.Message != "" {
		t.Errorf("expected fresh state after restart, got score=%d wave=%d tick=%d message=%q",
			snap.Score, snap.Wave, snap.Tick, snap.Message)
	}
}

func TestSessionEnemiesApproachPlayer(t *testing.T) {
	s := newTestSession(DefaultTuning())
	s.Start(catalog.GameConfig{Difficulty: catalog.DifficultyEasy})

	before := s.Snapshot()
	s.Tick()
	after := s.Snapshot()

	px, py := before.Player.X, before.Player.Y
	for i := range before.Enemies {
		b, a := before.Enemies[i], after.Enemies[i]
		db := (b.X-px)*(b.X-px) + (b.Y-py)*(b.Y-py)
		da := (a.X-px)*(a.X-px) + (a.Y-py)*(a.Y-py)
		if da >= db {
			t.Errorf("enemy %d did not approach the player", b.ID)
		}
	}
}

func TestSessionConcurrentTicksSerialize(t *testing.T) {
	s := newTestSession(testTuning())
	s.Start(catalog.GameConfig{Difficulty: catalog.DifficultyHard})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				s.Tick()
				s.FireAtNearest()
				_ = s.Snapshot()
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	if snap.Tick != 200 {
		t.Errorf("expected 200 ticks, got %d", snap.Tick)
	}
	for _, e := range snap.Enemies {
		if e.Health < 0 {
			t.Errorf("enemy %d has negative health", e.ID)
		}
	}
	for _, p := range snap.Projectiles {
		if p.Progress < 0 || p.Progress > 1 {
			t.Errorf("projectile %d progress %f out of range", p.ID, p.Progress)
		}
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		PhaseIdle:     "idle",
		PhaseSpawning: "spawning",
		PhaseRunning:  "running",
		PhaseGameOver: "game over",
		Phase(9):      "unknown",
	}
	for p, want := range tests {
		if p.String() != want {
			t.Errorf("expected %q, got %q", want, p.String())
		}
	}
}
