package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/snake/client/display"
	"github.com/cbodonnell/snake/client/flow"
	"github.com/cbodonnell/snake/client/render"
	"github.com/cbodonnell/snake/client/scenes"
	"github.com/cbodonnell/snake/client/ui"
	"github.com/cbodonnell/snake/pkg/game"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// screenWidth and screenHeight are the logical screen size.
	screenWidth  int
	screenHeight int
	// gridWidth and gridHeight are the grid size of every round.
	gridWidth  int
	gridHeight int
	// obstacles is the obstacle count of every round.
	obstacles int
	// tps is the number of updates per second.
	tps int
	// renderer draws every round and owns the textures.
	renderer *render.Renderer
	// canvas is the back buffer frames are composited onto.
	canvas *display.Canvas
	// mode is the current game mode.
	mode flow.GameMode
	// scene is the current scene.
	scene scenes.Scene
	// score is the score shown in the window title.
	score int
}

type NewGameOptions struct {
	Debug         bool
	ScreenWidth   int
	ScreenHeight  int
	GridWidth     int
	GridHeight    int
	ObstacleCount int
	TPS           int
	Renderer      *render.Renderer
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.Renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	g := &Game{
		debug:        opts.Debug,
		screenWidth:  opts.ScreenWidth,
		screenHeight: opts.ScreenHeight,
		gridWidth:    opts.GridWidth,
		gridHeight:   opts.GridHeight,
		obstacles:    opts.ObstacleCount,
		tps:          opts.TPS,
		renderer:     opts.Renderer,
		canvas:       display.NewCanvas(opts.ScreenWidth, opts.ScreenHeight),
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) Update() error {
	if g.scene == nil {
		return nil
	}
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update %s scene: %v", g.mode, err)
	}
	if play, ok := g.scene.(*scenes.GameScene); ok {
		g.score = play.Score()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.scene != nil {
		g.scene.Draw(screen)
	}
	g.renderer.FrameDrawn(g.score)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f\nTPS: %0.2f\nMode: %s", ebiten.ActualFPS(), ebiten.ActualTPS(), g.mode))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.screenWidth, g.screenHeight
}

// Close releases the renderer and the back buffer.
func (g *Game) Close(ctx context.Context) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			log.Warn("Failed to destroy %s scene: %v", g.mode, err)
		}
	}
	g.canvas.Deallocate()
	if err := g.renderer.Close(ctx); err != nil {
		return fmt.Errorf("failed to close renderer: %v", err)
	}
	return nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnStart: g.loadGame,
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = flow.GameModeMenu
	return nil
}

func (g *Game) loadGame() error {
	gm, err := game.NewGameManager(game.NewGameManagerOptions{
		GridWidth:     g.gridWidth,
		GridHeight:    g.gridHeight,
		ObstacleCount: g.obstacles,
		Seed:          time.Now().UnixNano(),
	})
	if err != nil {
		log.Error("Failed to create game manager: %v", err)
		return &ui.ActionableError{Message: fmt.Sprintf("Cannot start a round on a %dx%d grid", g.gridWidth, g.gridHeight)}
	}

	gameScene, err := scenes.NewGameScene(scenes.GameSceneOptions{
		GameManager: gm,
		Renderer:    g.renderer,
		Canvas:      g.canvas,
		TPS:         g.tps,
		OnGameOver:  g.loadGameOver,
	})
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.score = 0
	g.mode = flow.GameModePlay
	return nil
}

func (g *Game) loadGameOver(gm *game.GameManager) error {
	gameOver, err := scenes.NewGameOverScene(scenes.GameOverSceneOptions{
		GameManager: gm,
		Renderer:    g.renderer,
		Canvas:      g.canvas,
		OnContinue:  g.loadMenu,
	})
	if err != nil {
		return fmt.Errorf("failed to create game over scene: %v", err)
	}
	if err := g.SetScene(gameOver); err != nil {
		return fmt.Errorf("failed to set game over scene: %v", err)
	}
	g.score = gm.Score()
	g.mode = flow.GameModeOver
	return nil
}
