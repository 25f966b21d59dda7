package ecs_test

import (
	"testing"

	"github.com/plus3/paddlearena/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryResolvesTablesCreatedLater(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[PosVel](storage)

	assert.Equal(t, 0, query.Count())

	storage.Spawn(Position{X: 1})
	assert.Equal(t, 0, query.Count())

	storage.Spawn(Position{X: 2}, Velocity{DX: 1})
	assert.Equal(t, 1, query.Count())
}

func TestQueryReflectsCurrentState(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1}, Velocity{DX: 1})
	query := ecs.NewQuery[PosVel](storage)

	for item := range query.Values() {
		item.Position.X = 50
	}

	_, item, ok := query.First()
	require.True(t, ok)
	assert.Equal(t, float32(50), item.Position.X)

	storage.Delete(id)
	_, _, ok = query.First()
	assert.False(t, ok)
}

func TestQueryFirstFollowsInsertionOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	first := storage.Spawn(Position{X: 1}, Velocity{})
	storage.Spawn(Position{X: 2}, Velocity{})

	id, item, ok := ecs.NewQuery[PosVel](storage).First()
	require.True(t, ok)
	assert.Equal(t, first, id)
	assert.Equal(t, float32(1), item.Position.X)
}

func TestQueryUsedBeforeInitPanics(t *testing.T) {
	var query ecs.Query[PosVel]
	assert.Panics(t, func() { query.Count() })
}

func TestQueryReinit(t *testing.T) {
	a := ecs.NewStorage(newTestRegistry())
	b := ecs.NewStorage(newTestRegistry())
	a.Spawn(Position{}, Velocity{})

	query := ecs.NewQuery[PosVel](a)
	assert.Equal(t, 1, query.Count())

	query.Init(b)
	assert.Equal(t, 0, query.Count())
}
