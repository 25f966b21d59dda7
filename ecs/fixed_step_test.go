package ecs_test

import (
	"testing"
	"time"

	"github.com/plus3/paddlearena/ecs"
	"github.com/stretchr/testify/assert"
)

func TestFixedStepAccumulates(t *testing.T) {
	fs := ecs.NewFixedStep(60)

	assert.Equal(t, 1.0/60, fs.DeltaTime())
	assert.Equal(t, 0, fs.Advance(10*time.Millisecond))
	assert.Equal(t, 1, fs.Advance(10*time.Millisecond))
	assert.InDelta(t, 0.2, fs.Alpha(), 0.01)

	assert.Equal(t, 60, fs.Advance(time.Second))
}

func TestFixedStepHalfSecond(t *testing.T) {
	fs := ecs.NewFixedStep(60)
	assert.Equal(t, 30, fs.Advance(500*time.Millisecond))
}

func TestFixedStepDoesNotDrift(t *testing.T) {
	fs := ecs.NewFixedStep(60)

	total := 0
	for range 1_000_000 {
		total += fs.Advance(time.Second)
	}

	assert.Equal(t, 60_000_000, total)
	assert.Equal(t, time.Duration(0), fs.Pending())
}

func TestFixedStepRateNotDividingSecond(t *testing.T) {
	fs := ecs.NewFixedStep(7)

	for range 1000 {
		assert.Equal(t, 7, fs.Advance(time.Second))
	}
	assert.Equal(t, 0.0, fs.Alpha())
}

func TestFixedStepIgnoresNegativeElapsed(t *testing.T) {
	fs := ecs.NewFixedStep(60)
	fs.Advance(10 * time.Millisecond)

	assert.Equal(t, 0, fs.Advance(-time.Hour))
	assert.Equal(t, 10*time.Millisecond, fs.Pending())
}

func TestFixedStepMaxSteps(t *testing.T) {
	fs := ecs.NewFixedStep(100)
	fs.MaxSteps = 5

	assert.Equal(t, 5, fs.Advance(time.Second+3*time.Millisecond))
	assert.Equal(t, 3*time.Millisecond, fs.Pending())
}

func TestFixedStepReset(t *testing.T) {
	fs := ecs.NewFixedStep(60)
	fs.Advance(15 * time.Millisecond)
	fs.Reset()

	assert.Equal(t, time.Duration(0), fs.Pending())
	assert.Equal(t, 0.0, fs.Alpha())
}

func TestFixedStepRejectsBadRate(t *testing.T) {
	assert.Panics(t, func() { ecs.NewFixedStep(0) })
}
