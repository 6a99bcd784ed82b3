package render

import (
	"context"
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/cbodonnell/snake/client/textures"
	"github.com/cbodonnell/snake/pkg/grid"
	"github.com/cbodonnell/snake/pkg/log"
)

const (
	// WindowTitle is the caption shown until the first score update.
	WindowTitle = "Snake Game"
)

// Renderer draws the grid world once per frame. Decorative textures are loaded
// on a background goroutine started at construction; until they are published
// frames are drawn without them.
type Renderer struct {
	mapping grid.Mapping
	window  Window
	store   *textures.Store
	loader  *textures.Loader
	fps     *FPSCounter

	closeOnce sync.Once
	closeErr  error
}

// NewRendererOptions contains options for creating a new Renderer.
type NewRendererOptions struct {
	ScreenWidth  int
	ScreenHeight int
	GridWidth    int
	GridHeight   int
	// Window receives the size and title. Nil leaves the renderer without a window.
	Window Window
	// Source decodes the texture assets.
	Source textures.SurfaceSource
	// Uploader derives GPU textures from decoded surfaces.
	Uploader textures.Uploader
	// Clock drives the frame rate shown in the title. Nil uses time.Now.
	Clock func() time.Time
}

// NewRenderer sets up the window and starts loading textures. Setup problems
// are logged and leave a renderer whose draws may do nothing.
func NewRenderer(opts NewRendererOptions) *Renderer {
	r := &Renderer{
		mapping: grid.NewMapping(opts.ScreenWidth, opts.ScreenHeight, opts.GridWidth, opts.GridHeight),
		window:  opts.Window,
		store:   textures.NewStore(),
		fps:     NewFPSCounter(opts.Clock),
	}

	if opts.GridWidth <= 0 || opts.GridHeight <= 0 || opts.ScreenWidth <= 0 || opts.ScreenHeight <= 0 {
		log.Error("Invalid renderer dimensions: screen %dx%d, grid %dx%d", opts.ScreenWidth, opts.ScreenHeight, opts.GridWidth, opts.GridHeight)
	} else if opts.ScreenWidth%opts.GridWidth != 0 || opts.ScreenHeight%opts.GridHeight != 0 {
		log.Warn("Grid %dx%d does not divide screen %dx%d evenly", opts.GridWidth, opts.GridHeight, opts.ScreenWidth, opts.ScreenHeight)
	}

	if r.window == nil {
		log.Error("Window could not be created")
	} else {
		r.window.SetSize(opts.ScreenWidth, opts.ScreenHeight)
		r.window.SetTitle(WindowTitle)
	}

	blockWidth, blockHeight := r.mapping.Block()
	r.loader = textures.NewLoader(textures.NewLoaderOptions{
		Source:      opts.Source,
		Uploader:    opts.Uploader,
		Store:       r.store,
		BlockWidth:  blockWidth,
		BlockHeight: blockHeight,
	})
	if opts.Source == nil || opts.Uploader == nil {
		log.Error("Texture loading disabled: missing surface source or uploader")
		if err := r.store.Write(textures.Absent, textures.Absent); err != nil {
			log.Error("Failed to publish absent textures: %v", err)
		}
	} else {
		r.loader.LoadAsync(context.Background())
	}

	return r
}

// Mapping returns the grid to pixel mapping.
func (r *Renderer) Mapping() grid.Mapping {
	return r.mapping
}

// TexturesPublished is closed once the loader has published its textures.
func (r *Renderer) TexturesPublished() <-chan struct{} {
	return r.store.PublishedChan()
}

// Render composites one frame: background, food, snake body, snake head,
// obstacles, boosters, then presents it. It never blocks on texture loading.
func (r *Renderer) Render(canvas Canvas, snake SnakeView, food grid.Point, obstacles, boosters CoordinateSet) {
	if canvas == nil {
		return
	}

	r.clearScreen(canvas)
	r.drawFood(canvas, food)
	if snake != nil {
		r.drawSnakeBody(canvas, snake.Body())
		r.drawSnakeHead(canvas, snake.Head(), snake.Alive())
	}

	// one snapshot for both decorations keeps a frame from showing one
	// texture published and the other not
	snapshot := r.store.Snapshot()
	r.drawDecorations(canvas, obstacles, snapshot.Obstacle)
	r.drawDecorations(canvas, boosters, snapshot.Booster)

	canvas.Present()
}

func (r *Renderer) clearScreen(canvas Canvas) {
	canvas.Clear(BackgroundColor)
}

func (r *Renderer) drawFood(canvas Canvas, food grid.Point) {
	r.fillBlock(canvas, food, FoodColor)
}

func (r *Renderer) drawSnakeBody(canvas Canvas, body []grid.Point) {
	for _, p := range body {
		r.fillBlock(canvas, p, BodyColor)
	}
}

func (r *Renderer) drawSnakeHead(canvas Canvas, head grid.Point, alive bool) {
	r.fillBlock(canvas, head, headColor(alive))
}

func headColor(alive bool) color.Color {
	if alive {
		return HeadColor
	}
	return DeadHeadColor
}

func (r *Renderer) fillBlock(canvas Canvas, p grid.Point, clr color.Color) {
	block := r.mapping.Rect(p)
	if block.Empty() {
		return
	}
	canvas.FillRect(block, clr)
}

// drawDecorations composites the texture into every cell of the set. An
// absent texture draws nothing.
func (r *Renderer) drawDecorations(canvas Canvas, cells CoordinateSet, texture textures.Pair) {
	if cells == nil || !texture.Present() {
		return
	}
	for _, p := range cells.Coordinates() {
		block := r.mapping.Rect(p)
		if block.Empty() {
			continue
		}
		canvas.DrawTexture(texture.Texture, block)
	}
}

// UpdateWindowTitle shows the score and frame rate in the window caption.
func (r *Renderer) UpdateWindowTitle(score, fps int) {
	if r.window == nil {
		return
	}
	r.window.SetTitle(fmt.Sprintf("Snake Score: %d FPS: %d", score, fps))
}

// FrameDrawn counts a presented frame and, once per second, shows the score
// and the frames drawn in that second in the window title.
func (r *Renderer) FrameDrawn(score int) {
	if fps, ok := r.fps.Frame(); ok {
		r.UpdateWindowTitle(score, fps)
	}
}

// Close stops the texture loader, waiting until it returns or ctx expires,
// and frees the published textures.
func (r *Renderer) Close(ctx context.Context) error {
	r.closeOnce.Do(func() {
		if err := r.loader.Stop(ctx); err != nil {
			r.closeErr = fmt.Errorf("failed to stop texture loader: %v", err)
		}
		r.store.Release()
	})
	return r.closeErr
}
