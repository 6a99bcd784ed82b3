package scenes

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/snake/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Scene is one screen of the game flow.
type Scene interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// drawTextOverlay draws upper cased text centered on the screen, one line per entry.
func drawTextOverlay(screen *ebiten.Image, lines ...string) {
	f := fonts.OverlayFont
	lineHeight := f.Metrics().Height.Ceil()
	top := float64(screen.Bounds().Dy())/2 - float64(lineHeight*len(lines))/2
	for i, line := range lines {
		t := strings.ToUpper(line)
		bounds, _ := font.BoundString(f, t)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2, top+float64(lineHeight*(i+1)))
		op.ColorScale.ScaleWithColor(color.White)
		text.DrawWithOptions(screen, t, f, op)
	}
}
