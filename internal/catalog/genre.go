package catalog

import "strings"

// Fallbacks for genres missing from the lookup tables.
const (
	DefaultEnemyType = "blob"
	DefaultEnemyName = "enemy"
)

type genreInfo struct {
	enemyType string
	enemyName string
}

var genres = map[string]genreInfo{
	"space":   {enemyType: "ufo", enemyName: "alien ship"},
	"fantasy": {enemyType: "dragon", enemyName: "dragon"},
	"horror":  {enemyType: "zombie", enemyName: "zombie"},
	"ocean":   {enemyType: "shark", enemyName: "shark"},
	"robots":  {enemyType: "robot", enemyName: "robot"},
	"jungle":  {enemyType: "monkey", enemyName: "monkey"},
}

func lookupGenre(genre string) (genreInfo, bool) {
	info, ok := genres[strings.ToLower(strings.TrimSpace(genre))]
	return info, ok
}

// EnemyType returns the presentational enemy tag for a genre.
func EnemyType(genre string) string {
	if info, ok := lookupGenre(genre); ok {
		return info.enemyType
	}
	return DefaultEnemyType
}

// EnemyName returns the singular enemy noun used in score messages.
func EnemyName(genre string) string {
	if info, ok := lookupGenre(genre); ok {
		return info.enemyName
	}
	return DefaultEnemyName
}
