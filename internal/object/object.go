// Package object holds the arcade simulation's state holders: the player, the
// enemy and projectile pools, and the score keeper. Positions are percentages of
// the playfield, so the simulation never depends on display resolution.
package object

// Playfield bounds in percentage units.
const (
	PlayfieldMin = 0.0
	PlayfieldMax = 100.0
)

// Point is a playfield position.
type Point struct {
	X, Y float64
}
