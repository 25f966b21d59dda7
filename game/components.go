// Package game holds the paddle arena's components, its systems and the
// Match that wires them to an ecs.Storage and ecs.Scheduler.
package game

//go:generate go run ../cmd/componentgen -dir . -out components_gen.go

import (
	"image/color"
	"math"

	"github.com/plus3/paddlearena/arena"
)

// MovementKeys binds a player to the controls that move their racket.
type MovementKeys struct {
	Up   Key
	Down Key
}

// Player is a control binding. It is never positioned; the racket it drives
// is found by matching Number against Racket.PlayerNumber.
//
//ecs:component
type Player struct {
	Number int
	Keys   MovementKeys
}

// Racket marks the paddle owned by a player.
//
//ecs:component
type Racket struct {
	PlayerNumber int
}

//ecs:component
type Ball struct{}

//ecs:component
type Wall struct {
	Location arena.WallLocation
}

// Transform places an entity in the world. Size is the unrotated extent;
// Rotation is in radians, counter-clockwise.
//
//ecs:component
type Transform struct {
	Translation arena.Vec2
	Size        arena.Vec2
	Rotation    float64
	Z           float64
}

// Bounds returns the axis-aligned box covering the rotated transform.
func (t *Transform) Bounds() arena.Rect {
	sin, cos := math.Abs(math.Sin(t.Rotation)), math.Abs(math.Cos(t.Rotation))
	return arena.Rect{
		Center: t.Translation,
		Size: arena.Vec2{
			X: t.Size.X*cos + t.Size.Y*sin,
			Y: t.Size.X*sin + t.Size.Y*cos,
		},
	}
}

//ecs:component
type Sprite struct {
	Color color.RGBA
}

var (
	RacketColor = color.RGBA{R: 77, G: 77, B: 77, A: 255}
	WallColor   = color.RGBA{R: 77, G: 77, B: 77, A: 255}
	BallColor   = color.RGBA{R: 230, G: 128, B: 0, A: 255}
)
