package assets

import (
	"context"
	"testing"

	"github.com/cbodonnell/snake/client/textures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledAssetsDecode(t *testing.T) {
	source := textures.NewFSSource(FS)
	for _, path := range []string{textures.ObstacleAssetPath, textures.BoosterAssetPath} {
		t.Run(path, func(t *testing.T) {
			surface, err := source.LoadSurface(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, 16, surface.Bounds().Dx())
			assert.Equal(t, 16, surface.Bounds().Dy())
		})
	}
}
