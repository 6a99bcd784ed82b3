package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/cbodonnell/snake/client/textures"
	"github.com/cbodonnell/snake/pkg/grid"
	"github.com/stretchr/testify/mock"
)

type opKind string

const (
	opClear   opKind = "clear"
	opFill    opKind = "fill"
	opTexture opKind = "texture"
	opPresent opKind = "present"
)

type op struct {
	kind    opKind
	rect    grid.Rect
	color   color.Color
	texture textures.Drawable
}

// recordingCanvas records every draw call of the frames rendered onto it.
type recordingCanvas struct {
	ops []op
}

func (c *recordingCanvas) Clear(clr color.Color) {
	c.ops = append(c.ops, op{kind: opClear, color: clr})
}

func (c *recordingCanvas) FillRect(r grid.Rect, clr color.Color) {
	c.ops = append(c.ops, op{kind: opFill, rect: r, color: clr})
}

func (c *recordingCanvas) DrawTexture(texture textures.Drawable, r grid.Rect) {
	c.ops = append(c.ops, op{kind: opTexture, rect: r, texture: texture})
}

func (c *recordingCanvas) Present() {
	c.ops = append(c.ops, op{kind: opPresent})
}

func (c *recordingCanvas) reset() {
	c.ops = nil
}

func (c *recordingCanvas) count(kind opKind) int {
	n := 0
	for _, o := range c.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) texturesDrawn(texture textures.Drawable) int {
	n := 0
	for _, o := range c.ops {
		if o.kind == opTexture && o.texture == texture {
			n++
		}
	}
	return n
}

type mockWindow struct {
	mock.Mock
}

func (w *mockWindow) SetTitle(title string) {
	w.Called(title)
}

func (w *mockWindow) SetSize(width, height int) {
	w.Called(width, height)
}

type fakeSnake struct {
	head  grid.Point
	alive bool
	body  []grid.Point
}

func (s fakeSnake) Head() grid.Point   { return s.head }
func (s fakeSnake) Alive() bool        { return s.alive }
func (s fakeSnake) Body() []grid.Point { return s.body }

type cells []grid.Point

func (c cells) Coordinates() []grid.Point { return c }

type fakeDrawable struct {
	name   string
	bounds image.Rectangle
}

func (d *fakeDrawable) Bounds() image.Rectangle { return d.bounds }
func (d *fakeDrawable) Deallocate()             {}

// namedUploader hands out one drawable per uploaded surface, named after the
// surface's width so tests can tell the obstacle and booster textures apart.
type namedUploader struct {
	mu       sync.Mutex
	uploaded []*fakeDrawable
}

func (u *namedUploader) Upload(surface image.Image) (textures.Drawable, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	d := &fakeDrawable{name: fmt.Sprintf("w%d", surface.Bounds().Dx()), bounds: surface.Bounds()}
	u.uploaded = append(u.uploaded, d)
	return d, nil
}

// gatedSource serves fixed surfaces once its gate is opened.
type gatedSource struct {
	gate     chan struct{}
	surfaces map[string]image.Image
}

func newGatedSource() *gatedSource {
	return &gatedSource{
		gate: make(chan struct{}),
		surfaces: map[string]image.Image{
			textures.ObstacleAssetPath: image.NewNRGBA(image.Rect(0, 0, 20, 15)),
			textures.BoosterAssetPath:  image.NewNRGBA(image.Rect(0, 0, 20, 15)),
		},
	}
}

func (s *gatedSource) LoadSurface(ctx context.Context, path string) (image.Image, error) {
	select {
	case <-s.gate:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	surface, ok := s.surfaces[path]
	if !ok {
		return nil, fmt.Errorf("no such asset: %s", path)
	}
	return surface, nil
}
