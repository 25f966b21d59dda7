package ecs_test

import (
	"testing"

	"github.com/plus3/paddlearena/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commandSystem struct {
	run func(frame *ecs.UpdateFrame)
}

func (s *commandSystem) Execute(frame *ecs.UpdateFrame) {
	s.run(frame)
}

func runOnce(storage *ecs.Storage, fn func(frame *ecs.UpdateFrame)) {
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&commandSystem{run: fn})
	scheduler.Once(0)
}

func TestCommandsAreDeferredUntilFlush(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	existing := storage.Spawn(Position{X: 1})

	runOnce(storage, func(frame *ecs.UpdateFrame) {
		frame.Commands.Spawn(Position{X: 2})
		frame.Commands.Attach(existing, Velocity{DX: 3})
		frame.Commands.Defer(func() {})
		assert.Equal(t, 3, frame.Commands.Len())

		// nothing applied yet
		assert.Equal(t, 1, storage.EntityCount())
		assert.False(t, storage.HasComponent(existing, typeOf[Velocity]()))
	})

	assert.Equal(t, 2, storage.EntityCount())
	assert.Equal(t, float32(3), ecs.ReadComponent[Velocity](storage, existing).DX)
}

func TestCommandsDeleteAndDetach(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	doomed := storage.Spawn(Position{}, Velocity{})
	kept := storage.Spawn(Position{}, Velocity{})

	runOnce(storage, func(frame *ecs.UpdateFrame) {
		frame.Commands.Delete(doomed)
		frame.Commands.Detach(kept, typeOf[Velocity]())
	})

	assert.False(t, storage.Alive(doomed))
	assert.True(t, storage.Alive(kept))
	assert.False(t, storage.HasComponent(kept, typeOf[Velocity]()))
}

func TestCommandsAttachToDeletedEntityIsDropped(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{})

	require.NotPanics(t, func() {
		runOnce(storage, func(frame *ecs.UpdateFrame) {
			frame.Commands.Attach(id, Health{Current: 1})
			frame.Commands.Delete(id)
			frame.Commands.Attach(999, Health{})
		})
	})

	assert.False(t, storage.Alive(id))
	assert.Equal(t, 0, storage.EntityCount())
}

func TestCommandsDeferRunsAfterStructuralChanges(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var countAtDefer int
	runOnce(storage, func(frame *ecs.UpdateFrame) {
		frame.Commands.Defer(func() { countAtDefer = storage.EntityCount() })
		frame.Commands.Spawn(Name{Value: "a"})
		frame.Commands.Spawn(Name{Value: "b"})
	})

	assert.Equal(t, 2, countAtDefer)
}

func TestCommandsResetAfterFlush(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	spawned := false
	var lens []int
	scheduler.Register(&commandSystem{run: func(frame *ecs.UpdateFrame) {
		lens = append(lens, frame.Commands.Len())
		if !spawned {
			frame.Commands.Spawn(Position{})
			spawned = true
		}
	}})

	scheduler.Once(0)
	scheduler.Once(0)

	assert.Equal(t, []int{0, 0}, lens)
	assert.Equal(t, 1, storage.EntityCount())
}

func TestCommandsQueuedByDeferAreApplied(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var ran []string
	runOnce(storage, func(frame *ecs.UpdateFrame) {
		commands := frame.Commands
		commands.Defer(func() {
			ran = append(ran, "first")
			commands.Spawn(Position{X: 7})
			commands.Defer(func() { ran = append(ran, "second") })
		})
	})

	assert.Equal(t, []string{"first", "second"}, ran)
	require.Equal(t, 1, storage.EntityCount())
	assert.Equal(t, float32(7), ecs.ReadComponent[Position](storage, storage.Entities()[0]).X)
}

func TestCommandsResetAfterPanickingDefer(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	calls := 0
	first := true
	scheduler.Register(&commandSystem{run: func(frame *ecs.UpdateFrame) {
		if first {
			first = false
			frame.Commands.Defer(func() {
				calls++
				panic("boom")
			})
		}
	}})

	assert.Panics(t, func() { scheduler.Once(0) })
	assert.NotPanics(t, func() { scheduler.Once(0) })
	assert.Equal(t, 1, calls)
}
