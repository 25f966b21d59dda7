package ecs

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent ECS systems to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentTable
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentTable),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be attached.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() iComponentTable {
		return newComponentTable[T](t)
	}
}

// Registered reports whether the component type has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

// getFactory returns the factory function for a given component type.
// Returns nil if the type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentTable {
	return r.factories[t]
}

// iComponentTable is a type-erased table holding every record of one kind.
type iComponentTable interface {
	Type() reflect.Type
	Put(id EntityId, item any) bool
	Get(id EntityId) any
	Has(id EntityId) bool
	Delete(id EntityId) bool
	Len() int
	Compact()
	Iter() iter.Seq[EntityId]
}

const tableBlockSize = 64

// componentTable stores the records of a single kind in insertion order.
// Records live in fixed-size blocks so pointers handed out by Get stay valid
// while the table grows; deleting leaves a tombstone until Compact runs.
type componentTable[T any] struct {
	typ    reflect.Type
	blocks []*[tableBlockSize]T
	owners []*[tableBlockSize]EntityId
	index  *intmap.Map[EntityId, int]
	next   int
	live   int
}

func newComponentTable[T any](t reflect.Type) *componentTable[T] {
	return &componentTable[T]{
		typ:   t,
		index: intmap.New[EntityId, int](64),
	}
}

func (ct *componentTable[T]) Type() reflect.Type {
	return ct.typ
}

// Put stores item for the entity. An existing record is overwritten in place
// and keeps its position in iteration order.
func (ct *componentTable[T]) Put(id EntityId, item any) bool {
	var value T
	if ptr, ok := item.(*T); ok {
		value = *ptr
	} else if val, ok := item.(T); ok {
		value = val
	} else {
		return false
	}

	if slot, ok := ct.index.Get(id); ok {
		ct.blocks[slot/tableBlockSize][slot%tableBlockSize] = value
		return true
	}

	slot := ct.next
	ct.next++

	blockIdx := slot / tableBlockSize
	if blockIdx >= len(ct.blocks) {
		ct.blocks = append(ct.blocks, new([tableBlockSize]T))
		ct.owners = append(ct.owners, new([tableBlockSize]EntityId))
	}

	ct.blocks[blockIdx][slot%tableBlockSize] = value
	ct.owners[blockIdx][slot%tableBlockSize] = id
	ct.index.Put(id, slot)
	ct.live++
	return true
}

// Get returns a *T for the entity's record, or nil.
func (ct *componentTable[T]) Get(id EntityId) any {
	slot, ok := ct.index.Get(id)
	if !ok {
		return nil
	}
	return &ct.blocks[slot/tableBlockSize][slot%tableBlockSize]
}

func (ct *componentTable[T]) Has(id EntityId) bool {
	_, ok := ct.index.Get(id)
	return ok
}

// Delete removes the entity's record, leaving a tombstone in its slot.
func (ct *componentTable[T]) Delete(id EntityId) bool {
	slot, ok := ct.index.Get(id)
	if !ok {
		return false
	}

	var zero T
	ct.blocks[slot/tableBlockSize][slot%tableBlockSize] = zero
	ct.owners[slot/tableBlockSize][slot%tableBlockSize] = 0
	ct.index.Del(id)
	ct.live--
	return true
}

func (ct *componentTable[T]) Len() int {
	return ct.live
}

// Compact squeezes out tombstones. Relative order is preserved but pointers
// previously returned by Get are invalidated.
func (ct *componentTable[T]) Compact() {
	if ct.live == ct.next {
		return
	}

	numBlocks := (ct.live + tableBlockSize - 1) / tableBlockSize
	blocks := make([]*[tableBlockSize]T, numBlocks)
	owners := make([]*[tableBlockSize]EntityId, numBlocks)
	for i := range blocks {
		blocks[i] = new([tableBlockSize]T)
		owners[i] = new([tableBlockSize]EntityId)
	}

	ct.index.Clear()
	writePos := 0
	for readPos := 0; readPos < ct.next; readPos++ {
		owner := ct.owners[readPos/tableBlockSize][readPos%tableBlockSize]
		if owner == 0 {
			continue
		}
		blocks[writePos/tableBlockSize][writePos%tableBlockSize] = ct.blocks[readPos/tableBlockSize][readPos%tableBlockSize]
		owners[writePos/tableBlockSize][writePos%tableBlockSize] = owner
		ct.index.Put(owner, writePos)
		writePos++
	}

	ct.blocks = blocks
	ct.owners = owners
	ct.next = writePos
}

// Iter yields the owning entity of every live record in insertion order.
// Records appended during iteration are visited as well.
func (ct *componentTable[T]) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for slot := 0; slot < ct.next; slot++ {
			owner := ct.owners[slot/tableBlockSize][slot%tableBlockSize]
			if owner == 0 {
				continue
			}
			if !yield(owner) {
				return
			}
		}
	}
}
