package game

import (
	"math"

	"github.com/plus3/paddlearena/arena"
	"github.com/plus3/paddlearena/ecs"
)

var (
	Player1Keys = MovementKeys{Up: KeyW, Down: KeyS}
	Player2Keys = MovementKeys{Up: KeyArrowUp, Down: KeyArrowDown}
)

// DefaultPlayers returns the two fixed control bindings.
func DefaultPlayers() []Player {
	return []Player{
		{Number: 1, Keys: Player1Keys},
		{Number: 2, Keys: Player2Keys},
	}
}

// Setup populates an empty storage with both players, their rackets, the
// ball and the four walls.
func Setup(storage *ecs.Storage, cfg *arena.Config) {
	for _, player := range DefaultPlayers() {
		id := storage.CreateEntity()
		storage.Attach(id, player)
	}

	for _, player := range DefaultPlayers() {
		spawnRacket(storage, cfg, player.Number)
	}

	spawnBall(storage, cfg)

	for _, wall := range arena.Walls() {
		spawnWall(storage, cfg, wall)
	}
}

func spawnRacket(storage *ecs.Storage, cfg *arena.Config, playerNumber int) ecs.EntityId {
	return storage.Spawn(
		Racket{PlayerNumber: playerNumber},
		Transform{
			Translation: cfg.RacketStart(playerNumber),
			Size:        arena.Vec2{X: cfg.Racket.Length, Y: cfg.Racket.Thickness},
			Rotation:    math.Pi / 2,
		},
		Sprite{Color: RacketColor},
	)
}

func spawnBall(storage *ecs.Storage, cfg *arena.Config) ecs.EntityId {
	return storage.Spawn(
		Ball{},
		Transform{
			Size: arena.Vec2{X: cfg.Ball.Size, Y: cfg.Ball.Size},
			Z:    1,
		},
		Sprite{Color: BallColor},
	)
}

func spawnWall(storage *ecs.Storage, cfg *arena.Config, location arena.WallLocation) ecs.EntityId {
	return storage.Spawn(
		Wall{Location: location},
		Transform{
			Translation: location.Position(cfg),
			Size:        location.Size(cfg),
		},
		Sprite{Color: WallColor},
	)
}
