package game

import (
	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/grid"
)

// Snake is the player controlled snake. Body holds the segments behind the
// head in tail to head order.
type Snake struct {
	head      grid.Point
	body      []grid.Point
	direction types.Direction
	alive     bool
	growing   int
}

func NewSnake(head grid.Point, direction types.Direction) *Snake {
	return &Snake{
		head:      head,
		body:      make([]grid.Point, 0),
		direction: direction,
		alive:     true,
	}
}

func (s *Snake) Head() grid.Point {
	return s.head
}

func (s *Snake) Alive() bool {
	return s.alive
}

// Body returns a copy of the body segments.
func (s *Snake) Body() []grid.Point {
	body := make([]grid.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Size returns the number of cells the snake occupies, head included.
func (s *Snake) Size() int {
	return len(s.body) + 1
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// SetDirection changes the heading. Turning back onto the neck is ignored
// once the snake has a body.
func (s *Snake) SetDirection(direction types.Direction) bool {
	if len(s.body) > 0 && direction == s.direction.Opposite() {
		return false
	}
	s.direction = direction
	return true
}

// Next returns the cell the head would enter on the next step.
func (s *Snake) Next(m grid.Mapping) grid.Point {
	return m.Wrap(s.head.Add(s.direction.Vector()))
}

// Step advances the snake one cell. The snake dies if its head runs into its own body.
func (s *Snake) Step(m grid.Mapping) {
	if !s.alive {
		return
	}

	previous := s.head
	s.head = s.Next(m)

	s.body = append(s.body, previous)
	if s.growing > 0 {
		s.growing--
	} else {
		s.body = s.body[1:]
	}

	for _, p := range s.body {
		if p == s.head {
			s.alive = false
			return
		}
	}
}

// Grow queues n segments to be added over the next steps.
func (s *Snake) Grow(n int) {
	s.growing += n
}

func (s *Snake) Kill() {
	s.alive = false
}

// Occupies reports whether the head or any body segment is on p.
func (s *Snake) Occupies(p grid.Point) bool {
	if s.head == p {
		return true
	}
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}
