//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/plus3/paddlearena/arena"
	"github.com/plus3/paddlearena/game"
	"go.uber.org/zap"
)

func initializeGame(cfg *arena.Config, logger *zap.Logger, opts Options) (*Game, error) {
	wire.Build(
		NewKeyboard,
		wire.Bind(new(game.Input), new(*Keyboard)),
		game.NewMatch,
		NewRenderer,
		NewGame,
	)
	return nil, nil
}
