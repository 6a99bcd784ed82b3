package textures

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"
	"sync/atomic"
	"testing"

	"golang.org/x/image/bmp"
)

type fakeDrawable struct {
	bounds      image.Rectangle
	deallocated atomic.Bool
}

func newFakeDrawable(w, h int) *fakeDrawable {
	return &fakeDrawable{bounds: image.Rect(0, 0, w, h)}
}

func (d *fakeDrawable) Bounds() image.Rectangle {
	return d.bounds
}

func (d *fakeDrawable) Deallocate() {
	d.deallocated.Store(true)
}

type fakeUploader struct {
	mu       sync.Mutex
	err      error
	uploaded []image.Image
}

func (u *fakeUploader) Upload(surface image.Image) (Drawable, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.err != nil {
		return nil, u.err
	}
	u.uploaded = append(u.uploaded, surface)
	return newFakeDrawable(surface.Bounds().Dx(), surface.Bounds().Dy()), nil
}

func (u *fakeUploader) Uploaded() []image.Image {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]image.Image(nil), u.uploaded...)
}

// mapSource serves surfaces from memory and fails for unknown paths.
type mapSource struct {
	mu       sync.Mutex
	surfaces map[string]image.Image
	calls    []string
}

func (s *mapSource) LoadSurface(_ context.Context, path string) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, path)
	surface, ok := s.surfaces[path]
	if !ok {
		return nil, fmt.Errorf("no such asset: %s", path)
	}
	return surface, nil
}

func (s *mapSource) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// blockingSource stalls every load until release is closed. When honorContext
// is set a cancelled context also unblocks it. entered is closed by the first load.
type blockingSource struct {
	release      chan struct{}
	entered      chan struct{}
	enteredOnce  sync.Once
	honorContext bool
	surface      image.Image
}

func newBlockingSource(honorContext bool, surface image.Image) *blockingSource {
	return &blockingSource{
		release:      make(chan struct{}),
		entered:      make(chan struct{}),
		honorContext: honorContext,
		surface:      surface,
	}
}

func (s *blockingSource) LoadSurface(ctx context.Context, _ string) (image.Image, error) {
	s.enteredOnce.Do(func() { close(s.entered) })
	if s.honorContext {
		select {
		case <-s.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	} else {
		<-s.release
	}
	return s.surface, nil
}

func newSurface(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodeBMP(t *testing.T, img image.Image) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := bmp.Encode(buf, img); err != nil {
		t.Fatalf("failed to encode bmp: %v", err)
	}
	return buf.Bytes()
}
