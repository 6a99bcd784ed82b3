package textures

import (
	"context"
	"image"
	"sync"

	"github.com/cbodonnell/snake/pkg/log"
	"github.com/disintegration/imaging"
)

// Loader decodes and uploads the decorative textures on its own goroutine and
// publishes them to a Store exactly once.
type Loader struct {
	source       SurfaceSource
	uploader     Uploader
	store        *Store
	obstaclePath string
	boosterPath  string
	blockWidth   int
	blockHeight  int

	once   sync.Once
	cancel context.CancelFunc
	done   chan struct{}
}

// NewLoaderOptions contains options for creating a new Loader.
type NewLoaderOptions struct {
	// Source decodes the asset files.
	Source SurfaceSource
	// Uploader derives GPU textures from decoded surfaces.
	Uploader Uploader
	// Store receives the published textures.
	Store *Store
	// ObstaclePath is the obstacle asset path. Defaults to ObstacleAssetPath.
	ObstaclePath string
	// BoosterPath is the booster asset path. Defaults to BoosterAssetPath.
	BoosterPath string
	// BlockWidth and BlockHeight, when set, are the size surfaces are scaled
	// to before upload.
	BlockWidth  int
	BlockHeight int
}

func NewLoader(opts NewLoaderOptions) *Loader {
	obstaclePath := opts.ObstaclePath
	if obstaclePath == "" {
		obstaclePath = ObstacleAssetPath
	}
	boosterPath := opts.BoosterPath
	if boosterPath == "" {
		boosterPath = BoosterAssetPath
	}
	return &Loader{
		source:       opts.Source,
		uploader:     opts.Uploader,
		store:        opts.Store,
		obstaclePath: obstaclePath,
		boosterPath:  boosterPath,
		blockWidth:   opts.BlockWidth,
		blockHeight:  opts.BlockHeight,
		done:         make(chan struct{}),
	}
}

// LoadAsync starts the loading goroutine. Only the first call has any effect.
func (l *Loader) LoadAsync(ctx context.Context) {
	l.once.Do(func() {
		ctx, cancel := context.WithCancel(ctx)
		l.cancel = cancel
		go func() {
			defer close(l.done)
			defer cancel()
			l.load(ctx)
		}()
	})
}

// Done is closed once the loading goroutine has returned.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Stop cancels loading and waits for the goroutine to return or ctx to expire.
// A loader that was never started is already stopped.
func (l *Loader) Stop(ctx context.Context) error {
	started := true
	l.once.Do(func() {
		started = false
		close(l.done)
	})
	if !started {
		return nil
	}

	l.cancel()
	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loader) load(ctx context.Context) {
	obstacle := l.loadPair(ctx, KindObstacle, l.obstaclePath)
	booster := l.loadPair(ctx, KindBooster, l.boosterPath)

	if err := ctx.Err(); err != nil {
		log.Debug("Texture loading cancelled: %v", err)
		obstacle.Release()
		booster.Release()
		return
	}

	if err := l.Publish(obstacle, booster); err != nil {
		log.Warn("Failed to publish textures: %v", err)
		obstacle.Release()
		booster.Release()
		return
	}
	log.Info("Published textures (obstacle present: %t, booster present: %t)", obstacle.Present(), booster.Present())
}

// loadPair decodes the surface at path and derives its texture. Any failure
// yields the absent pair.
func (l *Loader) loadPair(ctx context.Context, kind Kind, path string) Pair {
	if ctx.Err() != nil {
		return Absent
	}

	surface, err := l.source.LoadSurface(ctx, path)
	if err != nil {
		log.Warn("Failed to load %s texture: %v", kind, err)
		return Absent
	}
	if surface == nil || surface.Bounds().Empty() {
		log.Warn("Failed to load %s texture: empty surface from %s", kind, path)
		return Absent
	}

	texture, err := l.uploader.Upload(l.scale(surface))
	if err != nil {
		log.Warn("Failed to create %s texture: %v", kind, err)
		return Absent
	}
	if texture == nil {
		return Absent
	}

	log.Debug("Loaded %s texture from %s (%dx%d)", kind, path, surface.Bounds().Dx(), surface.Bounds().Dy())
	return Pair{
		Surface: surface,
		Texture: texture,
	}
}

// scale resizes the surface to the block size before upload.
func (l *Loader) scale(surface image.Image) image.Image {
	if l.blockWidth <= 0 || l.blockHeight <= 0 {
		return surface
	}
	b := surface.Bounds()
	if b.Dx() == l.blockWidth && b.Dy() == l.blockHeight {
		return surface
	}
	return imaging.Resize(surface, l.blockWidth, l.blockHeight, imaging.NearestNeighbor)
}

// Publish writes both pairs to the store in one critical section.
func (l *Loader) Publish(obstacle, booster Pair) error {
	return l.store.Write(obstacle, booster)
}
