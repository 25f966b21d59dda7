package ecs

import (
	"fmt"
	"reflect"
	"slices"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage is the main ECS storage. It owns every entity and every record
// attached to them, grouped into one ordered table per component kind.
type Storage struct {
	registry *ComponentRegistry
	ids      entityAllocator

	// kinds held by each live entity, in attach order
	entities *intmap.Map[EntityId, []reflect.Type]
	order    []EntityId

	tables     map[reflect.Type]iComponentTable
	tableOrder []iComponentTable

	singletons     map[reflect.Type]*singletonEntry
	singletonOrder []reflect.Type
}

type singletonEntry struct {
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		entities:   intmap.New[EntityId, []reflect.Type](256),
		tables:     make(map[reflect.Type]iComponentTable),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Registry returns the component registry backing this storage.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// CreateEntity returns a fresh entity with no records attached.
func (s *Storage) CreateEntity() EntityId {
	id := s.ids.next()
	s.entities.Put(id, nil)
	s.order = append(s.order, id)
	return id
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	id := s.CreateEntity()
	for _, comp := range components {
		s.Attach(id, comp)
	}
	return id
}

// Attach associates a record with a live entity. Attaching a kind the entity
// already holds replaces the stored value without changing its order.
// Attaching to an unknown entity or an unregistered type panics.
func (s *Storage) Attach(id EntityId, component any) {
	kinds, ok := s.entities.Get(id)
	if !ok {
		panic(fmt.Sprintf("attach to unknown entity %d", id))
	}

	compType := componentType(component)
	table := s.tableFor(compType)
	if !table.Put(id, component) {
		panic("component value does not match table type " + compType.String())
	}

	if !slices.Contains(kinds, compType) {
		s.entities.Put(id, append(kinds, compType))
	}
}

// Detach removes a single record from an entity. The entity itself stays
// alive even when it no longer holds any records.
func (s *Storage) Detach(id EntityId, compType reflect.Type) bool {
	kinds, ok := s.entities.Get(id)
	if !ok {
		return false
	}

	table, ok := s.tables[compType]
	if !ok || !table.Delete(id) {
		return false
	}

	s.entities.Put(id, slices.DeleteFunc(kinds, func(t reflect.Type) bool { return t == compType }))
	return true
}

// Delete removes the entity and all records attached to it. The id is not
// handed out again.
func (s *Storage) Delete(id EntityId) bool {
	kinds, ok := s.entities.Get(id)
	if !ok {
		return false
	}

	for _, kind := range kinds {
		s.tables[kind].Delete(id)
	}

	s.entities.Del(id)
	if idx := slices.Index(s.order, id); idx >= 0 {
		s.order = slices.Delete(s.order, idx, idx+1)
	}
	return true
}

// Alive reports whether the entity exists.
func (s *Storage) Alive(id EntityId) bool {
	_, ok := s.entities.Get(id)
	return ok
}

// EntityCount returns the number of live entities.
func (s *Storage) EntityCount() int {
	return len(s.order)
}

// Entities returns every live entity in creation order.
func (s *Storage) Entities() []EntityId {
	return slices.Clone(s.order)
}

// ComponentTypes returns the kinds attached to an entity, in attach order.
func (s *Storage) ComponentTypes(id EntityId) []reflect.Type {
	kinds, _ := s.entities.Get(id)
	return slices.Clone(kinds)
}

// ComponentKinds returns every kind that has a table, in creation order.
func (s *Storage) ComponentKinds() []reflect.Type {
	kinds := make([]reflect.Type, len(s.tableOrder))
	for i, table := range s.tableOrder {
		kinds[i] = table.Type()
	}
	return kinds
}

// GetComponent returns a pointer to the record of the given type, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	table, ok := s.tables[compType]
	if !ok {
		return nil
	}
	return table.Get(id)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	table, ok := s.tables[compType]
	if !ok {
		return false
	}
	return table.Has(id)
}

// Compact reclaims deleted slots in every table. Pointers obtained from
// earlier lookups must not be used afterwards.
func (s *Storage) Compact() {
	for _, table := range s.tableOrder {
		table.Compact()
	}
}

// AddSingleton stores a value that belongs to no entity. Adding a second
// value of the same type overwrites the first in place.
func (s *Storage) AddSingleton(value any) {
	compType := reflect.TypeOf(value)
	src := reflect.ValueOf(value)
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
		src = src.Elem()
	}

	if entry, ok := s.singletons[compType]; ok {
		entry.value.Elem().Set(src)
		return
	}

	ptr := reflect.New(compType)
	ptr.Elem().Set(src)
	s.singletons[compType] = &singletonEntry{
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	}
	s.singletonOrder = append(s.singletonOrder, compType)
}

// ReadSingleton points target (a **T) at the stored singleton of type T.
// It returns false when no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	entry := s.getSingletonEntry(rv.Elem().Type().Elem())
	if entry == nil {
		return false
	}

	rv.Elem().Set(entry.value)
	return true
}

func (s *Storage) getSingletonEntry(compType reflect.Type) *singletonEntry {
	return s.singletons[compType]
}

func (s *Storage) tableFor(compType reflect.Type) iComponentTable {
	if table, ok := s.tables[compType]; ok {
		return table
	}

	factory := s.registry.getFactory(compType)
	if factory == nil {
		panic("component type " + compType.String() + " not registered")
	}

	table := factory()
	s.tables[compType] = table
	s.tableOrder = append(s.tableOrder, table)
	return table
}

// componentType returns the record kind of a component value, accepting
// either the value or a pointer to it.
func componentType(component any) reflect.Type {
	compType := reflect.TypeOf(component)
	if compType == nil {
		panic("component cannot be nil")
	}

	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	// Components can be structs or primitives (int, string, etc.)
	// But not pointers, maps, channels, or functions (those aren't value types)
	switch compType.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
		panic("components cannot be pointers, maps, channels, or functions")
	}

	return compType
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's record of type T, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
