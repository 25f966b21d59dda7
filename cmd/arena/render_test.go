package main

import (
	"testing"

	"github.com/plus3/paddlearena/arena"
	"github.com/plus3/paddlearena/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) (*Renderer, *game.Match) {
	t.Helper()
	cfg := arena.Default()
	m, err := game.NewMatch(&cfg, game.HeldKeys{}, nil)
	require.NoError(t, err)
	return NewRenderer(m), m
}

func TestScreenSizeCoversWalls(t *testing.T) {
	r, _ := newRenderer(t)
	w, h := r.ScreenSize()
	assert.Equal(t, 930, w)
	assert.Equal(t, 530, h)
}

func TestToScreenFlipsY(t *testing.T) {
	r, _ := newRenderer(t)

	cfg := arena.Default()
	x, y, w, h := r.toScreen(arena.WallTop.Rect(&cfg))
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(0), y)
	assert.Equal(t, float32(930), w)
	assert.Equal(t, float32(30), h)

	x, y, _, _ = r.toScreen(arena.WallBottom.Rect(&cfg))
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(500), y)
}

func TestRendererQueriesDrawables(t *testing.T) {
	r, _ := newRenderer(t)
	// two rackets, the ball and four walls
	assert.Equal(t, 7, r.items.Count())
}

func TestKeyboardBlocked(t *testing.T) {
	k := NewKeyboard()
	k.Blocked = func() bool { return true }
	assert.False(t, k.Pressed(game.KeyW))
	assert.False(t, k.Pressed(game.KeyNone))
}
