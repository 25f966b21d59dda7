package ecs_test

import (
	"reflect"

	"github.com/plus3/paddlearena/ecs"
)

type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

// Named primitive kinds, stored by value like any struct record.
type (
	Score       int32
	Tag         string
	Temperature float64
)

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Name](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Score](registry)
	ecs.RegisterComponent[Tag](registry)
	ecs.RegisterComponent[Temperature](registry)
	return registry
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
