package ecs

import "reflect"

// Commands buffers structural changes requested by systems during a tick.
// They are applied in one batch after every system has run, so no system
// observes a partially updated storage.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	attach  []attachCommand
	detach  []detachCommand
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type attachCommand struct {
	entity    EntityId
	component any
}

type detachCommand struct {
	entity   EntityId
	compType reflect.Type
}

// Defer queues a function to run after the structural changes are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Attach queues a record attachment.
func (c *Commands) Attach(entity EntityId, component any) {
	c.attach = append(c.attach, attachCommand{entity: entity, component: component})
}

// Detach queues a record removal.
func (c *Commands) Detach(entity EntityId, compType reflect.Type) {
	c.detach = append(c.detach, detachCommand{entity: entity, compType: compType})
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.attach) + len(c.detach) + len(c.defers)
}

// Flush applies the queued operations to storage and resets the buffer.
// Deletes run first; attach and detach requests for deleted entities are dropped.
// Operations queued while flushing, typically from a deferred function, are
// applied in a further pass before Flush returns.
func (c *Commands) Flush(storage *Storage) {
	for c.Len() > 0 {
		batch := *c
		*c = Commands{}
		batch.apply(storage)
	}
}

func (c *Commands) apply(storage *Storage) {
	deleted := make(map[EntityId]bool, len(c.deletes))
	for _, id := range c.deletes {
		storage.Delete(id)
		deleted[id] = true
	}

	for _, cmd := range c.detach {
		if !deleted[cmd.entity] {
			storage.Detach(cmd.entity, cmd.compType)
		}
	}

	for _, cmd := range c.attach {
		if !deleted[cmd.entity] && storage.Alive(cmd.entity) {
			storage.Attach(cmd.entity, cmd.component)
		}
	}

	for _, components := range c.spawns {
		storage.Spawn(components...)
	}

	for _, fn := range c.defers {
		fn()
	}
}
