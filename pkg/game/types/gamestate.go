package types

import "github.com/cbodonnell/snake/pkg/grid"

// Booster is a timed pickup on the grid.
type Booster struct {
	// Position is the cell the booster occupies.
	Position grid.Point
	// Remaining is how long, in seconds, the booster stays on the grid.
	Remaining float64
}

// GameState is a read-only snapshot of a round, logged when the round ends.
type GameState struct {
	RoundID   string
	Score     int
	Alive     bool
	Head      grid.Point
	Body      []grid.Point
	Food      grid.Point
	Obstacles []grid.Point
	Boosters  []Booster
	Boosted   bool
}
