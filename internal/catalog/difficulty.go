// Package catalog holds the static game definitions and the per-difficulty and
// per-genre lookup tables the arcade simulation is configured from.
package catalog

import "strings"

// Difficulty selects wave size, enemy health and points per kill.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// DefaultDifficulty is used for unrecognized difficulty values.
const DefaultDifficulty = DifficultyMedium

type difficultyTable struct {
	name          string
	waveSize      int
	enemyHealth   int
	pointsPerKill int
	enemySize     float64
}

var difficulties = map[Difficulty]difficultyTable{
	DifficultyEasy:   {name: "easy", waveSize: 3, enemyHealth: 1, pointsPerKill: 5, enemySize: 8},
	DifficultyMedium: {name: "medium", waveSize: 5, enemyHealth: 2, pointsPerKill: 10, enemySize: 6},
	DifficultyHard:   {name: "hard", waveSize: 7, enemyHealth: 3, pointsPerKill: 15, enemySize: 5},
}

func (d Difficulty) table() difficultyTable {
	if t, ok := difficulties[d]; ok {
		return t
	}
	return difficulties[DefaultDifficulty]
}

// ParseDifficulty maps "easy", "medium" or "hard" (case-insensitive) to a
// Difficulty. Anything else falls back to DefaultDifficulty.
func ParseDifficulty(s string) Difficulty {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, t := range difficulties {
		if t.name == s {
			return d
		}
	}
	return DefaultDifficulty
}

// String returns the lowercase difficulty name.
func (d Difficulty) String() string {
	return d.table().name
}

// WaveSize is the number of enemies spawned per wave.
func (d Difficulty) WaveSize() int {
	return d.table().waveSize
}

// EnemyHealth is the starting health of every enemy in a wave.
func (d Difficulty) EnemyHealth() int {
	return d.table().enemyHealth
}

// PointsPerKill is the score awarded for each defeated enemy.
func (d Difficulty) PointsPerKill() int {
	return d.table().pointsPerKill
}

// EnemySize is the presentational enemy diameter in playfield units.
func (d Difficulty) EnemySize() float64 {
	return d.table().enemySize
}

// MarshalText encodes the difficulty by name.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a difficulty name; unknown names become DefaultDifficulty.
func (d *Difficulty) UnmarshalText(text []byte) error {
	*d = ParseDifficulty(string(text))
	return nil
}
