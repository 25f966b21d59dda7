package ecs_test

import (
	"fmt"
	"testing"

	"github.com/plus3/paddlearena/ecs"
)

func populate(storage *ecs.Storage, n int) []ecs.EntityId {
	ids := make([]ecs.EntityId, n)
	for i := range ids {
		if i%4 == 0 {
			ids[i] = storage.Spawn(Position{X: float32(i)})
			continue
		}
		ids[i] = storage.Spawn(Position{X: float32(i)}, Velocity{DX: 1, DY: -1})
	}
	return ids
}

func BenchmarkSpawn(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())

	for b.Loop() {
		storage.Spawn(Position{}, Velocity{DX: 1})
	}
}

// Re-attaching a kind overwrites the record in its existing slot.
func BenchmarkAttachReplace(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	ids := populate(storage, 1024)

	i := 0
	for b.Loop() {
		storage.Attach(ids[i%len(ids)], Position{X: float32(i)})
		i++
	}
}

func BenchmarkReadComponent(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	ids := populate(storage, 4096)

	i := 0
	for b.Loop() {
		_ = ecs.ReadComponent[Position](storage, ids[i%len(ids)])
		i++
	}
}

func BenchmarkDeleteCompact(b *testing.B) {
	for _, n := range []int{256, 4096} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				storage := ecs.NewStorage(newTestRegistry())
				ids := populate(storage, n)
				b.StartTimer()

				for i := 0; i < len(ids); i += 2 {
					storage.Delete(ids[i])
				}
				storage.Compact()
			}
		})
	}
}

func BenchmarkViewIter(b *testing.B) {
	for _, n := range []int{64, 10_000} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			storage := ecs.NewStorage(newTestRegistry())
			populate(storage, n)
			view := ecs.NewView[struct {
				*Position
				*Velocity
			}](storage)

			for b.Loop() {
				for item := range view.Values() {
					item.Position.X += item.Velocity.DX
				}
			}
		})
	}
}

func BenchmarkViewIterOptional(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	populate(storage, 10_000)
	view := ecs.NewView[struct {
		*Position
		Velocity *Velocity `ecs:"optional"`
	}](storage)

	for b.Loop() {
		for item := range view.Values() {
			if item.Velocity != nil {
				item.Position.Y += item.Velocity.DY
			}
		}
	}
}

type driftSystem struct {
	Moving ecs.Query[struct {
		*Position
		*Velocity
	}]
}

func (s *driftSystem) Execute(frame *ecs.UpdateFrame) {
	dt := float32(frame.DeltaTime)
	for item := range s.Moving.Values() {
		item.Position.X += item.Velocity.DX * dt
		item.Position.Y += item.Velocity.DY * dt
	}
}

func BenchmarkSchedulerOnce(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	populate(storage, 1000)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&driftSystem{})

	for b.Loop() {
		scheduler.Once(1.0 / 60)
	}
}
