package game

import (
	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/grid"
	"github.com/solarlune/resolv"
)

// NewCollisionSpace returns a space with one 1x1 cell per grid cell.
func NewCollisionSpace(gridWidth, gridHeight int) *resolv.Space {
	return resolv.NewSpace(gridWidth, gridHeight, 1, 1)
}

// NewCellObject returns a collision object covering exactly the cell at p.
func NewCellObject(p grid.Point, tags ...string) *resolv.Object {
	return resolv.NewObject(float64(p.X), float64(p.Y), 1, 1, tags...)
}

// moveTo places the object on the cell at p and refreshes its cell membership.
func moveTo(object *resolv.Object, p grid.Point) {
	object.Position.X = float64(p.X)
	object.Position.Y = float64(p.Y)
	object.Update()
}

// cellHasTags reports whether any object with one of the tags occupies the cell
// the probe would occupy after moving by (dx, dy). With no tags any object counts.
func cellHasTags(probe *resolv.Object, dx, dy int, tags ...string) bool {
	return probe.Check(float64(dx), float64(dy), tags...) != nil
}

var occupyingTags = []string{
	types.CollisionSpaceTagFood,
	types.CollisionSpaceTagObstacle,
	types.CollisionSpaceTagBooster,
}
