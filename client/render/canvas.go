package render

import (
	"image/color"

	"github.com/cbodonnell/snake/client/textures"
	"github.com/cbodonnell/snake/pkg/grid"
)

// Canvas is the back buffer a frame is composited onto.
type Canvas interface {
	// Clear fills the whole back buffer.
	Clear(clr color.Color)
	// FillRect fills one block.
	FillRect(r grid.Rect, clr color.Color)
	// DrawTexture composites texture scaled into r.
	DrawTexture(texture textures.Drawable, r grid.Rect)
	// Present shows the composited back buffer.
	Present()
}

// Window is the OS window the game is shown in.
type Window interface {
	SetTitle(title string)
	SetSize(width, height int)
}

// SnakeView is the read-only view of the snake a frame needs.
type SnakeView interface {
	Head() grid.Point
	Alive() bool
	Body() []grid.Point
}

// CoordinateSet is a read-only set of grid cells.
type CoordinateSet interface {
	Coordinates() []grid.Point
}

var (
	BackgroundColor = color.RGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	FoodColor       = color.RGBA{R: 0xFF, G: 0xCC, B: 0x00, A: 0xFF}
	BodyColor       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	HeadColor       = color.RGBA{R: 0x00, G: 0x7A, B: 0xCC, A: 0xFF}
	DeadHeadColor   = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
)
