package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/cbodonnell/snake/client/assets"
	"github.com/cbodonnell/snake/client/display"
	"github.com/cbodonnell/snake/client/game"
	"github.com/cbodonnell/snake/client/render"
	"github.com/cbodonnell/snake/client/textures"
	"github.com/cbodonnell/snake/pkg/game/constants"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	screenWidth := flag.Int("screen-width", 640, "Window width in pixels")
	screenHeight := flag.Int("screen-height", 480, "Window height in pixels")
	gridWidth := flag.Int("grid-width", 32, "Number of grid columns")
	gridHeight := flag.Int("grid-height", 32, "Number of grid rows")
	assetsDir := flag.String("assets-dir", "", "Directory containing the texture assets (bundled assets when empty)")
	tps := flag.Int("tps", 10, "Game updates per second")
	obstacles := flag.Int("obstacles", constants.DefaultObstacleCount, "Number of obstacles per round")
	debug := flag.Bool("debug", false, "Show debug information")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	if *screenWidth <= 0 || *screenHeight <= 0 {
		panic(fmt.Sprintf("Invalid screen size %dx%d", *screenWidth, *screenHeight))
	}
	if *tps <= 0 {
		panic(fmt.Sprintf("Invalid tps %d", *tps))
	}

	var assetsFS fs.FS = assets.FS
	if *assetsDir != "" {
		log.Info("Loading textures from %s", *assetsDir)
		assetsFS = os.DirFS(*assetsDir)
	}

	renderer := render.NewRenderer(render.NewRendererOptions{
		ScreenWidth:  *screenWidth,
		ScreenHeight: *screenHeight,
		GridWidth:    *gridWidth,
		GridHeight:   *gridHeight,
		Window:       display.Window{},
		Source:       textures.NewFSSource(assetsFS),
		Uploader:     display.Uploader{},
	})

	g, err := game.NewGame(game.NewGameOptions{
		Debug:         *debug,
		ScreenWidth:   *screenWidth,
		ScreenHeight:  *screenHeight,
		GridWidth:     *gridWidth,
		GridHeight:    *gridHeight,
		ObstacleCount: *obstacles,
		TPS:           *tps,
		Renderer:      renderer,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetTPS(*tps)
	runErr := ebiten.RunGame(g)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := g.Close(ctx); err != nil {
		log.Error("Failed to close game: %v", err)
	}

	if runErr != nil {
		panic(fmt.Sprintf("Failed to run game: %v", runErr))
	}
	log.Info("Client stopped")
}
