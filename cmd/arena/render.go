package main

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/paddlearena/arena"
	"github.com/plus3/paddlearena/ecs"
	"github.com/plus3/paddlearena/game"
)

var backgroundColor = color.RGBA{R: 242, G: 242, B: 242, A: 255}

type drawable struct {
	*game.Transform
	*game.Sprite
}

// Renderer draws every entity with a Transform and a Sprite as a filled
// axis-aligned rectangle. It only reads the storage.
type Renderer struct {
	items  *ecs.Query[drawable]
	cfg    *arena.Config
	sorted []drawable
}

func NewRenderer(match *game.Match) *Renderer {
	return &Renderer{
		items: ecs.NewQuery[drawable](match.Storage()),
		cfg:   match.Config(),
	}
}

// ScreenSize is the logical resolution: the arena plus the outer half of
// each wall.
func (r *Renderer) ScreenSize() (int, int) {
	return int(r.cfg.ArenaWidth() + r.cfg.WallThickness), int(r.cfg.ArenaHeight() + r.cfg.WallThickness)
}

// toScreen maps a world rectangle (y up, origin at the arena centre) to its
// top-left corner and size in screen pixels (y down).
func (r *Renderer) toScreen(rect arena.Rect) (x, y, w, h float32) {
	width, height := r.ScreenSize()
	lo, hi := rect.Min(), rect.Max()
	x = float32(lo.X + float64(width)/2)
	y = float32(float64(height)/2 - hi.Y)
	return x, y, float32(rect.Size.X), float32(rect.Size.Y)
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	r.sorted = r.sorted[:0]
	for item := range r.items.Values() {
		r.sorted = append(r.sorted, item)
	}
	slices.SortStableFunc(r.sorted, func(a, b drawable) int {
		return cmp.Compare(a.Transform.Z, b.Transform.Z)
	})

	for _, item := range r.sorted {
		x, y, w, h := r.toScreen(item.Transform.Bounds())
		vector.DrawFilledRect(screen, x, y, w, h, item.Sprite.Color, false)
	}
}
