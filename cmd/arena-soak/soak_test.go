package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/paddlearena/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRunReproducesEveryMatch(t *testing.T) {
	opts := Options{
		Config:    arena.Default(),
		Matches:   4,
		Simulated: 5 * time.Second,
		Seed:      7,
		Parallel:  2,
	}

	report, err := Run(context.Background(), opts, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, 0, report.Mismatches)
	assert.Equal(t, 4, report.Matches)
	// jittered frames overshoot the target by less than one frame
	assert.GreaterOrEqual(t, report.TotalTicks, uint64(4*5*60))
	assert.Less(t, report.TotalTicks, uint64(4*5*60+4*3))

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	assert.Contains(t, buf.String(), "Replays Diverged:** 0")
}

func TestRunRejectsBadOptions(t *testing.T) {
	_, err := Run(context.Background(), Options{Config: arena.Default()}, zaptest.NewLogger(t))
	assert.Error(t, err)

	cfg := arena.Default()
	cfg.TickRate = 0
	_, err = Run(context.Background(), Options{Config: cfg, Matches: 1}, zaptest.NewLogger(t))
	assert.ErrorIs(t, err, arena.ErrInvalidConfig)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := Options{Config: arena.Default(), Matches: 2, Simulated: time.Minute, Seed: 1}
	_, err := Run(ctx, opts, zaptest.NewLogger(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJitteredFramesAreSeeded(t *testing.T) {
	a := jitteredFrames(3, time.Second)
	b := jitteredFrames(3, time.Second)
	c := jitteredFrames(4, time.Second)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	var total time.Duration
	for _, f := range a {
		assert.GreaterOrEqual(t, f, time.Millisecond)
		assert.Less(t, f, 40*time.Millisecond)
		total += f
	}
	assert.GreaterOrEqual(t, total, time.Second)
}
