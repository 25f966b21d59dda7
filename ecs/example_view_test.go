package ecs_test

import (
	"fmt"

	"github.com/plus3/paddlearena/ecs"
)

// ExampleView iterates every entity carrying a Position, with Name attached
// when present. Entities come back in the order their Position was attached.
func ExampleView() {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1}, Name{Value: "left"})
	storage.Spawn(Position{X: 2})
	storage.Spawn(Name{Value: "floating"})
	storage.Spawn(Position{X: 3}, Name{Value: "right"})

	view := ecs.NewView[struct {
		*Position
		Name *Name `ecs:"optional"`
	}](storage)

	for item := range view.Values() {
		name := "-"
		if item.Name != nil {
			name = item.Name.Value
		}
		fmt.Println(item.Position.X, name)
	}
	// Output:
	// 1 left
	// 2 -
	// 3 right
}
