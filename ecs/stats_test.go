package ecs_test

import (
	"testing"

	"github.com/plus3/paddlearena/ecs"
	"github.com/stretchr/testify/assert"
)

func TestCollectStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{}, Velocity{})
	storage.Spawn(Position{})
	doomed := storage.Spawn(Health{})
	storage.Delete(doomed)
	storage.AddSingleton(Tag("global"))

	stats := storage.CollectStats()

	assert.Equal(t, 2, stats.TotalEntityCount)
	assert.Equal(t, 3, stats.TableCount)
	assert.Equal(t, 1, stats.SingletonCount)
	assert.Equal(t, []string{"ecs_test.Tag"}, stats.SingletonTypes)
	assert.Equal(t, []ecs.TableStats{
		{ComponentType: "ecs_test.Position", RecordCount: 2},
		{ComponentType: "ecs_test.Velocity", RecordCount: 1},
		{ComponentType: "ecs_test.Health", RecordCount: 0},
	}, stats.TableBreakdown)
}

func TestCollectStatsEmpty(t *testing.T) {
	stats := ecs.NewStorage(newTestRegistry()).CollectStats()

	assert.Zero(t, stats.TotalEntityCount)
	assert.Zero(t, stats.TableCount)
	assert.Empty(t, stats.TableBreakdown)
}
