package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownGame is returned by Lookup for ids not in the catalog.
var ErrUnknownGame = errors.New("unknown game")

// GameConfig fixes the rules of one session. It is immutable once a session starts.
type GameConfig struct {
	Difficulty Difficulty `json:"difficulty"`
	Genre      string     `json:"genre"`
}

// Game is a selectable mini-game built from user-submitted artwork.
type Game struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Config      GameConfig `json:"config"`
}

// Games is the static catalog, in menu order.
var Games = []Game{
	{
		ID:          "doodle-invaders",
		Title:       "Doodle Invaders",
		Description: "Hand-drawn saucers drift down from the gallery.",
		Config:      GameConfig{Difficulty: DifficultyEasy, Genre: "space"},
	},
	{
		ID:          "sketchy-seas",
		Title:       "Sketchy Seas",
		Description: "Crayon sharks circle your little boat.",
		Config:      GameConfig{Difficulty: DifficultyMedium, Genre: "ocean"},
	},
	{
		ID:          "scribble-knights",
		Title:       "Scribble Knights",
		Description: "Fend off a flight of marker dragons.",
		Config:      GameConfig{Difficulty: DifficultyMedium, Genre: "fantasy"},
	},
	{
		ID:          "night-of-the-doodles",
		Title:       "Night of the Doodles",
		Description: "Pencil zombies shamble out of the sketchbook.",
		Config:      GameConfig{Difficulty: DifficultyHard, Genre: "horror"},
	},
	{
		ID:          "robo-rumble",
		Title:       "Robo Rumble",
		Description: "Ballpoint robots march in formation.",
		Config:      GameConfig{Difficulty: DifficultyHard, Genre: "robots"},
	},
}

// Lookup returns the catalog entry with the given id.
func Lookup(id string) (Game, error) {
	for _, g := range Games {
		if g.ID == id {
			return g, nil
		}
	}
	return Game{}, fmt.Errorf("%w: %q", ErrUnknownGame, id)
}

// At returns the game at a 0-based menu index.
func At(index int) (Game, bool) {
	if index < 0 || index >= len(Games) {
		return Game{}, false
	}
	return Games[index], true
}
