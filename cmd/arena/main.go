// Command arena opens a window and runs a two-player paddle arena at a fixed
// 60 Hz. Player one uses W and S; player two uses the arrow keys.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/paddlearena/arena"
	"github.com/plus3/paddlearena/logging"
	"go.uber.org/zap"
)

// Options are the command line switches that shape a Game.
type Options struct {
	Debug bool
}

func main() {
	configPath := flag.String("config", "", "Optional YAML arena configuration.")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error).")
	debug := flag.Bool("debug", false, "Show the ECS debug overlay.")
	flag.Parse()

	logger, err := logging.New(*logLevel, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	cfg := arena.Default()
	if *configPath != "" {
		cfg, err = arena.LoadFile(*configPath)
		if err != nil {
			logger.Fatal("failed to load config", zap.String("path", *configPath), zap.Error(err))
		}
	}

	g, err := initializeGame(&cfg, logger, Options{Debug: *debug})
	if err != nil {
		logger.Fatal("failed to start match", zap.Error(err))
	}

	width, height := g.renderer.ScreenSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Paddle Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game exited with error", zap.Error(err))
	}
	g.match.Close()
}
