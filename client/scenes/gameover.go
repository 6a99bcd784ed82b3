package scenes

import (
	"fmt"

	"github.com/cbodonnell/snake/client/display"
	"github.com/cbodonnell/snake/client/input"
	"github.com/cbodonnell/snake/client/render"
	"github.com/cbodonnell/snake/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScene shows the final board of a round with its score.
type GameOverScene struct {
	gameManager *game.GameManager
	renderer    *render.Renderer
	canvas      *display.Canvas
	onContinue  func() error
}

type GameOverSceneOptions struct {
	GameManager *game.GameManager
	Renderer    *render.Renderer
	Canvas      *display.Canvas
	OnContinue  func() error
}

var _ Scene = &GameOverScene{}

func NewGameOverScene(opts GameOverSceneOptions) (*GameOverScene, error) {
	if opts.GameManager == nil {
		return nil, fmt.Errorf("game manager is required")
	}
	return &GameOverScene{
		gameManager: opts.GameManager,
		renderer:    opts.Renderer,
		canvas:      opts.Canvas,
		onContinue:  opts.OnContinue,
	}, nil
}

func (s *GameOverScene) Init() error {
	return nil
}

func (s *GameOverScene) Destroy() error {
	return nil
}

func (s *GameOverScene) Update() error {
	if input.IsPositiveJustPressed() && s.onContinue != nil {
		if err := s.onContinue(); err != nil {
			return fmt.Errorf("failed to continue: %v", err)
		}
	}
	return nil
}

func (s *GameOverScene) Draw(screen *ebiten.Image) {
	if s.renderer != nil {
		drawBoard(screen, s.canvas, s.renderer, s.gameManager)
	}
	drawTextOverlay(screen, "Game Over", fmt.Sprintf("Score %d", s.gameManager.Score()))
}
