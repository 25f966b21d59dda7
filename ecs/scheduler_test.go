package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/paddlearena/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Entities     ecs.Query[PosVel]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Values() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type HealthSystem struct {
	Entities     ecs.Query[struct{ *Health }]
	ExecuteCount int
	TotalHealth  float64
}

func (s *HealthSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	s.TotalHealth = 0
	for item := range s.Entities.Values() {
		s.TotalHealth += float64(item.Health.Current)
	}
}

type orderSystem struct {
	name string
	log  *[]string
}

func (s *orderSystem) Execute(frame *ecs.UpdateFrame) {
	*s.log = append(*s.log, s.name)
}

func TestSchedulerBindsQueriesAndRunsSystems(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	movement := &MovementSystem{}
	health := &HealthSystem{}
	scheduler.Register(movement)
	scheduler.Register(health)

	id := storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 1, DY: 2})
	storage.Spawn(Health{Current: 100, Max: 100})

	scheduler.Once(1.0)
	scheduler.Once(1.0)

	assert.Equal(t, 2, movement.ExecuteCount)
	assert.Equal(t, 2, health.ExecuteCount)
	assert.Equal(t, 100.0, health.TotalHealth)
	assert.Equal(t, Position{X: 2, Y: 4}, *ecs.ReadComponent[Position](storage, id))
	assert.Equal(t, uint64(2), scheduler.Tick())
}

func TestSchedulerRunsInRegistrationOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	var log []string
	scheduler.Register(&orderSystem{name: "input", log: &log})
	scheduler.Register(&orderSystem{name: "movement", log: &log})
	scheduler.Register(&orderSystem{name: "render", log: &log})

	scheduler.Once(0)
	assert.Equal(t, []string{"input", "movement", "render"}, log)
}

func TestSchedulerFrame(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	var frames []ecs.UpdateFrame
	scheduler.Register(&commandSystem{run: func(frame *ecs.UpdateFrame) {
		frames = append(frames, *frame)
	}})

	scheduler.Once(0.5)
	scheduler.Once(0.25)

	require.Len(t, frames, 2)
	assert.Equal(t, uint64(1), frames[0].Tick)
	assert.Equal(t, 0.5, frames[0].DeltaTime)
	assert.Equal(t, uint64(2), frames[1].Tick)
	assert.Same(t, storage, frames[1].Storage)
}

func TestSchedulerAdvanceUsesFixedDelta(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	var deltas []float64
	scheduler.Register(&commandSystem{run: func(frame *ecs.UpdateFrame) {
		deltas = append(deltas, frame.DeltaTime)
	}})

	assert.Equal(t, 0, scheduler.Advance(5*time.Millisecond))
	assert.Equal(t, 2, scheduler.Advance(30*time.Millisecond))
	assert.Equal(t, []float64{1.0 / 60, 1.0 / 60}, deltas)
	assert.Equal(t, uint64(2), scheduler.Tick())
}

func TestSchedulerTickRate(t *testing.T) {
	scheduler := ecs.NewScheduler(ecs.NewStorage(newTestRegistry()))
	scheduler.SetTickRate(120)

	assert.Equal(t, 1.0/120, scheduler.FixedStep().DeltaTime())
	assert.Equal(t, 60, scheduler.Advance(500*time.Millisecond))
}

func TestSchedulerReentrantOncePanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&commandSystem{run: func(frame *ecs.UpdateFrame) {
		scheduler.Once(0)
	}})

	assert.Panics(t, func() { scheduler.Once(0) })
}

func TestSchedulerStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&HealthSystem{})

	for range 3 {
		scheduler.Once(0)
	}

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	assert.Equal(t, uint64(3), stats.Ticks)
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "MovementSystem", stats.Systems[0].Name)
	assert.Equal(t, int64(3), stats.Systems[0].ExecutionCount)
	assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)
	movement := &MovementSystem{}
	scheduler.Register(movement)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Greater(t, movement.ExecuteCount, 0)
}
