package display

import (
	"fmt"
	"image"
	"image/color"

	"github.com/cbodonnell/snake/client/render"
	"github.com/cbodonnell/snake/client/textures"
	"github.com/cbodonnell/snake/pkg/grid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas composites a frame onto an offscreen back buffer and presents it to
// the screen image ebiten hands to Draw.
type Canvas struct {
	back   *ebiten.Image
	screen *ebiten.Image
}

var _ render.Canvas = &Canvas{}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		back: ebiten.NewImage(width, height),
	}
}

// SetScreen sets the image the next Present draws onto.
func (c *Canvas) SetScreen(screen *ebiten.Image) {
	c.screen = screen
}

func (c *Canvas) Clear(clr color.Color) {
	c.back.Fill(clr)
}

func (c *Canvas) FillRect(r grid.Rect, clr color.Color) {
	vector.DrawFilledRect(c.back, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func (c *Canvas) DrawTexture(texture textures.Drawable, r grid.Rect) {
	img, ok := texture.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	b := img.Bounds()
	if b.Empty() || r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{
		Filter: ebiten.FilterNearest,
	}
	op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	c.back.DrawImage(img, op)
}

func (c *Canvas) Present() {
	if c.screen == nil {
		return
	}
	c.screen.DrawImage(c.back, nil)
}

// Deallocate frees the back buffer.
func (c *Canvas) Deallocate() {
	c.back.Deallocate()
}

// Window controls the ebiten window.
type Window struct{}

var _ render.Window = Window{}

func (Window) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (Window) SetSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// Uploader creates ebiten images. Image creation is safe from any goroutine.
type Uploader struct{}

var _ textures.Uploader = Uploader{}

func (Uploader) Upload(surface image.Image) (textures.Drawable, error) {
	if surface == nil || surface.Bounds().Empty() {
		return nil, fmt.Errorf("cannot upload an empty surface")
	}
	return ebiten.NewImageFromImage(surface), nil
}
