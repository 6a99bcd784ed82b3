package textures

import "image"

// Drawable is a GPU resident image that a canvas can composite.
// *ebiten.Image satisfies it.
type Drawable interface {
	Bounds() image.Rectangle
	Deallocate()
}

// Kind names one of the published decorative textures.
type Kind int

const (
	KindObstacle Kind = iota
	KindBooster
)

func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindBooster:
		return "booster"
	}
	return "unknown"
}

// Pair holds a decoded surface and the texture derived from it. The zero
// value is the absent sentinel: consumers skip drawing instead of dereferencing.
type Pair struct {
	// Surface is the CPU side decoded image.
	Surface image.Image
	// Texture is derived from Surface and is only set once Surface is.
	Texture Drawable
}

// Absent is the well-defined "not loaded" pair.
var Absent = Pair{}

// Present reports whether the pair holds a drawable, non-empty texture.
func (p Pair) Present() bool {
	return p.Surface != nil && p.Texture != nil && !p.Texture.Bounds().Empty()
}

// Release frees the GPU texture. The surface is left to the garbage collector.
func (p Pair) Release() {
	if p.Texture != nil {
		p.Texture.Deallocate()
	}
}
