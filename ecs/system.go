package ecs

// System represents a behavior that operates on entities with specific components.
// User-defined systems should implement this interface and can include Query fields
// for accessing entities, as well as custom state fields that persist between ticks.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is handed to every system during a tick.
type UpdateFrame struct {
	// Tick is the 1-based number of the tick being executed.
	Tick      uint64
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}
