package game

import (
	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/grid"
	"github.com/solarlune/resolv"
)

// Obstacles is the static set of cells that kill the snake on contact.
type Obstacles struct {
	objects map[grid.Point]*resolv.Object
	order   []grid.Point
}

func NewObstacles() *Obstacles {
	return &Obstacles{
		objects: make(map[grid.Point]*resolv.Object),
		order:   make([]grid.Point, 0),
	}
}

func (o *Obstacles) add(p grid.Point, object *resolv.Object) {
	o.objects[p] = object
	o.order = append(o.order, p)
}

// Coordinates returns the obstacle cells in placement order.
func (o *Obstacles) Coordinates() []grid.Point {
	coordinates := make([]grid.Point, len(o.order))
	copy(coordinates, o.order)
	return coordinates
}

func (o *Obstacles) Contains(p grid.Point) bool {
	_, ok := o.objects[p]
	return ok
}

func (o *Obstacles) Len() int {
	return len(o.order)
}

type booster struct {
	types.Booster
	object *resolv.Object
}

// Boosters is the set of timed pickups currently on the grid.
type Boosters struct {
	items []*booster
}

func NewBoosters() *Boosters {
	return &Boosters{
		items: make([]*booster, 0),
	}
}

// Coordinates returns the cells of the boosters still on the grid.
func (b *Boosters) Coordinates() []grid.Point {
	coordinates := make([]grid.Point, 0, len(b.items))
	for _, item := range b.items {
		coordinates = append(coordinates, item.Position)
	}
	return coordinates
}

func (b *Boosters) Len() int {
	return len(b.items)
}

// List returns copies of the boosters on the grid.
func (b *Boosters) List() []types.Booster {
	list := make([]types.Booster, 0, len(b.items))
	for _, item := range b.items {
		list = append(list, item.Booster)
	}
	return list
}

func (b *Boosters) add(p grid.Point, lifetime float64, object *resolv.Object) {
	b.items = append(b.items, &booster{
		Booster: types.Booster{Position: p, Remaining: lifetime},
		object:  object,
	})
}

// remove takes the booster at p off the grid and returns its collision object.
func (b *Boosters) remove(p grid.Point) *resolv.Object {
	for i, item := range b.items {
		if item.Position == p {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return item.object
		}
	}
	return nil
}

// age decrements every booster's lifetime by dt seconds and returns the
// collision objects of those that expired.
func (b *Boosters) age(dt float64) []*resolv.Object {
	expired := make([]*resolv.Object, 0)
	kept := b.items[:0]
	for _, item := range b.items {
		item.Remaining -= dt
		if item.Remaining <= 0 {
			expired = append(expired, item.object)
			continue
		}
		kept = append(kept, item)
	}
	b.items = kept
	return expired
}
