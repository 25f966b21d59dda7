package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/paddlearena/game"
)

var keyBindings = map[game.Key]ebiten.Key{
	game.KeyW:         ebiten.KeyW,
	game.KeyS:         ebiten.KeyS,
	game.KeyArrowUp:   ebiten.KeyArrowUp,
	game.KeyArrowDown: ebiten.KeyArrowDown,
}

// Keyboard reads held keys straight from ebiten. It is level-triggered, so
// a key is reported for as long as it is down.
type Keyboard struct {
	// Blocked, when set and true, hides all keys from the match, for example
	// while a debug window has keyboard focus.
	Blocked func() bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Pressed(key game.Key) bool {
	if k.Blocked != nil && k.Blocked() {
		return false
	}
	physical, ok := keyBindings[key]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(physical)
}
