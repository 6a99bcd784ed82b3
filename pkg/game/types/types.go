package types

import "github.com/cbodonnell/snake/pkg/grid"

const (
	CollisionSpaceTagSnake    string = "snake"
	CollisionSpaceTagFood     string = "food"
	CollisionSpaceTagObstacle string = "obstacle"
	CollisionSpaceTagBooster  string = "booster"
	CollisionSpaceTagProbe    string = "probe"
)

// Direction is the heading of the snake's head.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	}
	return "Unknown"
}

// Vector returns the one cell offset of a step in direction d.
func (d Direction) Vector() grid.Point {
	switch d {
	case DirectionUp:
		return grid.Point{X: 0, Y: -1}
	case DirectionDown:
		return grid.Point{X: 0, Y: 1}
	case DirectionLeft:
		return grid.Point{X: -1, Y: 0}
	case DirectionRight:
		return grid.Point{X: 1, Y: 0}
	}
	return grid.Point{}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	default:
		return DirectionLeft
	}
}
