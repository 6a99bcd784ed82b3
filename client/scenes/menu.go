package scenes

import (
	"errors"
	"image/color"

	"github.com/cbodonnell/snake/client/fonts"
	"github.com/cbodonnell/snake/client/input"
	"github.com/cbodonnell/snake/client/ui"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	onStart  func() error
	ui       *ebitenui.UI
	startErr string
}

type MenuSceneOptions struct {
	// OnStart is called when the start button is pressed.
	OnStart func() error
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		onStart: opts.OnStart,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return nil
}

func (s *MenuScene) Destroy() error {
	return nil
}

func (s *MenuScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x7A, B: 0xCC, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x62, B: 0xA3, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x4A, B: 0x7A, A: 255}),
	}

	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    150,
				Left:   120,
				Right:  120,
				Bottom: 90,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("SNAKE", fonts.OverlayFont, color.NRGBA{R: 0xFF, G: 0xCC, B: 0x00, A: 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Start", fontFace, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
	)
	rootContainer.AddChild(button)

	if s.startErr != "" {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(s.startErr, fontFace, color.NRGBA{R: 255, G: 0, B: 0, A: 255}),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
		s.startErr = ""
	}

	button.ClickedEvent.AddHandler(func(args interface{}) {
		s.start()
	})

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *MenuScene) start() {
	if err := s.onStart(); err != nil {
		log.Error("Failed to start game: %v", err)
		s.startErr = "Failed to start. Please try again."
		var actionable *ui.ActionableError
		if errors.As(err, &actionable) {
			s.startErr = actionable.Message
		}
		s.renderUI()
	}
}

func (s *MenuScene) Update() error {
	if input.IsStartJustPressed() {
		s.start()
		return nil
	}
	s.ui.Update()
	return nil
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
}
