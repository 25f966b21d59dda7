package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/paddlearena/ecs/debugui"
	debugui_ebiten "github.com/plus3/paddlearena/ecs/debugui/ebiten"
	"github.com/plus3/paddlearena/game"
	"go.uber.org/zap"
)

// maxCatchUp bounds the ticks run for one window frame after a stall, such
// as the window being dragged.
const maxCatchUp = 8

// Game adapts a Match to ebiten.Game. Each Update feeds the measured time
// since the previous Update into the match's fixed step.
type Game struct {
	match    *game.Match
	renderer *Renderer
	keyboard *Keyboard
	overlay  *debugui_ebiten.Overlay
	logger   *zap.Logger
	last     time.Time
}

func NewGame(match *game.Match, renderer *Renderer, keyboard *Keyboard, logger *zap.Logger, opts Options) *Game {
	match.Scheduler().FixedStep().MaxSteps = maxCatchUp

	g := &Game{
		match:    match,
		renderer: renderer,
		keyboard: keyboard,
		logger:   logger,
		last:     time.Now(),
	}

	if opts.Debug {
		width, height := renderer.ScreenSize()
		g.overlay = debugui_ebiten.NewOverlay("Paddle Arena", width, height, debugui.Target{
			Storage:   match.Storage(),
			Scheduler: match.Scheduler(),
		})
		keyboard.Blocked = g.overlay.WantsKeyboard
		logger.Debug("debug overlay enabled")
	}

	return g
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	g.match.Advance(now.Sub(g.last))
	g.last = now

	if g.overlay != nil {
		g.overlay.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.renderer.ScreenSize()
}
