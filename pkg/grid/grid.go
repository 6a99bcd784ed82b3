package grid

import "image"

// Point is a (column, row) position in the logical game grid.
type Point struct {
	X int
	Y int
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Rect is the on-screen pixel block of a single grid cell.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Image converts the rectangle to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Mapping converts grid coordinates to pixel rectangles. The grid dimensions
// are expected to divide the screen dimensions evenly; any remainder is left undrawn.
type Mapping struct {
	screenWidth  int
	screenHeight int
	gridWidth    int
	gridHeight   int
	blockWidth   int
	blockHeight  int
}

func NewMapping(screenWidth, screenHeight, gridWidth, gridHeight int) Mapping {
	m := Mapping{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		gridWidth:    gridWidth,
		gridHeight:   gridHeight,
	}
	if gridWidth > 0 {
		m.blockWidth = screenWidth / gridWidth
	}
	if gridHeight > 0 {
		m.blockHeight = screenHeight / gridHeight
	}
	return m
}

// Block returns the pixel size of one grid cell.
func (m Mapping) Block() (width, height int) {
	return m.blockWidth, m.blockHeight
}

// GridSize returns the grid dimensions in cells.
func (m Mapping) GridSize() (width, height int) {
	return m.gridWidth, m.gridHeight
}

// ScreenSize returns the screen dimensions in pixels.
func (m Mapping) ScreenSize() (width, height int) {
	return m.screenWidth, m.screenHeight
}

// Rect returns the pixel rectangle for the cell at p.
func (m Mapping) Rect(p Point) Rect {
	return Rect{
		X: p.X * m.blockWidth,
		Y: p.Y * m.blockHeight,
		W: m.blockWidth,
		H: m.blockHeight,
	}
}

// Contains reports whether p lies inside the grid.
func (m Mapping) Contains(p Point) bool {
	return p.X >= 0 && p.X < m.gridWidth && p.Y >= 0 && p.Y < m.gridHeight
}

// Wrap folds p back onto the grid so that leaving one edge enters the opposite one.
func (m Mapping) Wrap(p Point) Point {
	if m.gridWidth > 0 {
		p.X = ((p.X % m.gridWidth) + m.gridWidth) % m.gridWidth
	}
	if m.gridHeight > 0 {
		p.Y = ((p.Y % m.gridHeight) + m.gridHeight) % m.gridHeight
	}
	return p
}
