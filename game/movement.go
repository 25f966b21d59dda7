package game

import (
	"github.com/plus3/paddlearena/arena"
	"github.com/plus3/paddlearena/ecs"
)

// MovementSystem moves each player's racket vertically while one of their
// controls is held. Up wins when both are held.
type MovementSystem struct {
	Players ecs.Query[struct{ *Player }]
	Rackets ecs.Query[struct {
		*Racket
		*Transform
	}]

	Config *arena.Config
	Input  Input

	active []*Player
}

func NewMovementSystem(cfg *arena.Config, input Input) *MovementSystem {
	return &MovementSystem{
		Config: cfg,
		Input:  input,
	}
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Input == nil {
		return
	}

	s.active = s.active[:0]
	for item := range s.Players.Values() {
		keys := item.Player.Keys
		if s.Input.Pressed(keys.Up) || s.Input.Pressed(keys.Down) {
			s.active = append(s.active, item.Player)
		}
	}

	if len(s.active) == 0 {
		return
	}

	for _, player := range s.active {
		direction := -1.0
		if s.Input.Pressed(player.Keys.Up) {
			direction = 1.0
		}

		for racket := range s.Rackets.Values() {
			if racket.Racket.PlayerNumber != player.Number {
				continue
			}

			racket.Transform.Translation.Y += direction * s.Config.RacketSpeed * s.Config.TimeStep()
			if s.Config.ClampRackets {
				clampToArena(racket.Transform, s.Config)
			}
		}
	}
}

// clampToArena keeps the transform's vertical extent between the inner faces
// of the top and bottom walls.
func clampToArena(t *Transform, cfg *arena.Config) {
	inner := cfg.Inner()
	half := t.Bounds().Size.Y / 2
	t.Translation.Y = arena.Clamp(t.Translation.Y, inner.Min().Y+half, inner.Max().Y-half)
}
