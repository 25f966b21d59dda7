// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/paddlearena/ecs"
	"github.com/plus3/paddlearena/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Overlay draws the debug tools on top of an Ebiten game. The game calls
// Update, Draw and Layout from its own methods of the same name.
type Overlay struct {
	backend   ImguiBackend
	ui        *ecs.Storage
	scheduler *ecs.Scheduler
	last      time.Time
}

// NewOverlay creates the ImGui backend window and a debug UI inspecting target.
func NewOverlay(title string, width, height int, target debugui.Target) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	ui, scheduler := debugui.NewOverlay(target)
	return &Overlay{
		backend:   ImguiBackend{EbitenBackend: backend},
		ui:        ui,
		scheduler: scheduler,
		last:      time.Now(),
	}
}

// Update runs one UI frame.
func (o *Overlay) Update() {
	now := time.Now()
	dt := now.Sub(o.last).Seconds()
	o.last = now

	o.backend.BeginFrame()
	o.scheduler.Once(dt)
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}

// WantsKeyboard reports whether ImGui captured the keyboard last frame, in
// which case game input should be ignored.
func (o *Overlay) WantsKeyboard() bool {
	var state *debugui.ImguiInputState
	if !o.ui.ReadSingleton(&state) {
		return false
	}
	return state.WantCaptureKeyboard
}
