package textures

import (
	"context"
	"fmt"
	"image"
	"io/fs"

	"github.com/disintegration/imaging"

	// register the bmp format with image.Decode
	_ "golang.org/x/image/bmp"
)

const (
	// ObstacleAssetPath is the obstacle image inside the assets directory.
	ObstacleAssetPath = "unlit-bomb.bmp"
	// BoosterAssetPath is the booster image inside the assets directory.
	BoosterAssetPath = "rocket.bmp"
)

// SurfaceSource decodes an image file into a CPU side surface.
type SurfaceSource interface {
	LoadSurface(ctx context.Context, path string) (image.Image, error)
}

// Uploader derives a GPU texture from a decoded surface.
type Uploader interface {
	Upload(surface image.Image) (Drawable, error)
}

// FSSource decodes surfaces from a file system, typically os.DirFS of the assets directory.
type FSSource struct {
	fsys fs.FS
}

var _ SurfaceSource = &FSSource{}

func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{
		fsys: fsys,
	}
}

func (s *FSSource) LoadSurface(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	surface, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %v", path, err)
	}
	if surface.Bounds().Empty() {
		return nil, fmt.Errorf("decoded %s has no pixels", path)
	}

	return surface, nil
}
