package scenes

import (
	"fmt"

	"github.com/cbodonnell/snake/client/display"
	"github.com/cbodonnell/snake/client/input"
	"github.com/cbodonnell/snake/client/render"
	"github.com/cbodonnell/snake/pkg/game"
	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene plays one round.
type GameScene struct {
	gameManager *game.GameManager
	renderer    *render.Renderer
	canvas      *display.Canvas
	tps         int
	onGameOver  func(gm *game.GameManager) error

	paused     bool
	directions []types.Direction
}

type GameSceneOptions struct {
	GameManager *game.GameManager
	Renderer    *render.Renderer
	Canvas      *display.Canvas
	// TPS is the number of Update calls per second.
	TPS int
	// OnGameOver is called once the snake dies or the player quits the round.
	OnGameOver func(gm *game.GameManager) error
}

var _ Scene = &GameScene{}

func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	if opts.GameManager == nil {
		return nil, fmt.Errorf("game manager is required")
	}
	if opts.Renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	if opts.TPS <= 0 {
		return nil, fmt.Errorf("invalid tps %d", opts.TPS)
	}
	return &GameScene{
		gameManager: opts.GameManager,
		renderer:    opts.Renderer,
		canvas:      opts.Canvas,
		tps:         opts.TPS,
		onGameOver:  opts.OnGameOver,
	}, nil
}

func (s *GameScene) Init() error {
	log.Debug("Game scene started for round %s", s.gameManager.RoundID())
	return nil
}

func (s *GameScene) Destroy() error {
	return nil
}

// Score returns the current round's score.
func (s *GameScene) Score() int {
	return s.gameManager.Score()
}

func (s *GameScene) Update() error {
	if input.IsNegativeJustPressed() {
		log.Info("Round %s abandoned with score %d", s.gameManager.RoundID(), s.gameManager.Score())
		return s.endRound()
	}

	if input.IsPauseJustPressed() {
		s.paused = !s.paused
		log.Debug("Paused: %t", s.paused)
	}
	if s.paused {
		return nil
	}

	s.directions = input.AppendJustPressedDirections(s.directions[:0])
	for _, direction := range s.directions {
		s.gameManager.QueueDirection(direction)
	}

	s.gameManager.Update(1.0 / float64(s.tps))
	if s.gameManager.GameOver() {
		return s.endRound()
	}

	return nil
}

func (s *GameScene) endRound() error {
	if s.onGameOver == nil {
		return nil
	}
	if err := s.onGameOver(s.gameManager); err != nil {
		return fmt.Errorf("failed to end round: %v", err)
	}
	return nil
}

func (s *GameScene) Draw(screen *ebiten.Image) {
	drawBoard(screen, s.canvas, s.renderer, s.gameManager)
	if s.paused {
		drawTextOverlay(screen, "Paused")
	}
}

func drawBoard(screen *ebiten.Image, canvas *display.Canvas, renderer *render.Renderer, gm *game.GameManager) {
	if canvas == nil {
		return
	}
	canvas.SetScreen(screen)
	renderer.Render(canvas, gm.Snake(), gm.Food(), gm.Obstacles(), gm.Boosters())
}
