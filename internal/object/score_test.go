package object

import (
	"testing"

	"github.com/bomma/arcade/internal/catalog"
)

func TestScoreKeeperRegisterKills(t *testing.T) {
	tests := []struct {
		name    string
		cfg     catalog.GameConfig
		count   int
		points  int
		message string
	}{
		{
			name:    "single easy",
			cfg:     catalog.GameConfig{Difficulty: catalog.DifficultyEasy, Genre: "horror"},
			count:   1,
			points:  5,
			message: "You shot down a zombie!",
		},
		{
			name:    "plural medium",
			cfg:     catalog.GameConfig{Difficulty: catalog.DifficultyMedium, Genre: "ocean"},
			count:   3,
			points:  30,
			message: "You defeated 3 sharks!",
		},
		{
			name:    "plural hard unmapped genre",
			cfg:     catalog.GameConfig{Difficulty: catalog.DifficultyHard, Genre: "disco"},
			count:   2,
			points:  30,
			message: "You defeated 2 enemys!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScoreKeeper()
			points, msg := s.RegisterKills(tt.count, tt.cfg)
			if points != tt.points {
				t.Errorf("expected %d points, got %d", tt.points, points)
			}
			if msg != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, msg)
			}
			if s.Score() != tt.points {
				t.Errorf("expected score %d, got %d", tt.points, s.Score())
			}
		})
	}
}

func TestScoreKeeperAccumulates(t *testing.T) {
	s := NewScoreKeeper()
	cfg := catalog.GameConfig{Difficulty: catalog.DifficultyHard}

	total := 0
	for _, n := range []int{1, 4, 2} {
		points, _ := s.RegisterKills(n, cfg)
		if points != n*15 {
			t.Errorf("expected %d points for %d kills, got %d", n*15, n, points)
		}
		total += points
		if s.Score() != total {
			t.Errorf("expected running score %d, got %d", total, s.Score())
		}
	}
	if s.Kills() != 7 {
		t.Errorf("expected 7 kills, got %d", s.Kills())
	}
}

func TestScoreKeeperZeroKillsIsNoop(t *testing.T) {
	s := NewScoreKeeper()
	for _, n := range []int{0, -3} {
		points, msg := s.RegisterKills(n, catalog.GameConfig{})
		if points != 0 || msg != "" {
			t.Errorf("RegisterKills(%d): expected (0, \"\"), got (%d, %q)", n, points, msg)
		}
	}
	if s.Score() != 0 || s.Kills() != 0 {
		t.Errorf("expected untouched keeper, got score=%d kills=%d", s.Score(), s.Kills())
	}
}
