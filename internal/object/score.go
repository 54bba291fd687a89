package object

import (
	"fmt"

	"github.com/bomma/arcade/internal/catalog"
)

// ScoreKeeper turns defeated enemies into points and toast messages.
type ScoreKeeper struct {
	score int
	kills int
}

// NewScoreKeeper creates a keeper at zero.
func NewScoreKeeper() *ScoreKeeper {
	return &ScoreKeeper{}
}

// RegisterKills awards points for count defeated enemies and returns the
// message to show the player. A non-positive count is a no-op returning (0, "").
func (s *ScoreKeeper) RegisterKills(count int, cfg catalog.GameConfig) (points int, message string) {
	if count <= 0 {
		return 0, ""
	}

	points = count * cfg.Difficulty.PointsPerKill()
	s.score += points
	s.kills += count

	name := catalog.EnemyName(cfg.Genre)
	if count == 1 {
		return points, fmt.Sprintf("You shot down a %s!", name)
	}
	return points, fmt.Sprintf("You defeated %d %ss!", count, name)
}

// Score returns the accumulated score.
func (s *ScoreKeeper) Score() int {
	return s.score
}

// Kills returns the number of enemies defeated.
func (s *ScoreKeeper) Kills() int {
	return s.kills
}
