package ecs

import (
	"iter"
)

// Query wraps a View for use as a system field. It caches the resolved
// component tables and only re-resolves them when new tables appear in storage.
type Query[T any] struct {
	view    *View[T]
	storage *Storage

	tables         []iComponentTable
	tablesResolved bool
	lastTableCount int
}

// NewQuery creates a new Query bound to storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init initializes or re-initializes the Query with a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.tables = nil
	q.tablesResolved = false
	q.lastTableCount = -1
}

func (q *Query[T]) ensureTables() bool {
	if q.view == nil {
		panic("Query used before Init; register the owning system with a Scheduler")
	}

	currentCount := len(q.storage.tableOrder)
	if currentCount != q.lastTableCount {
		q.tables, q.tablesResolved = q.view.resolveTables()
		q.lastTableCount = currentCount
	}
	return q.tablesResolved
}

// Iter returns an iterator over entity IDs and component data.
// Every call reflects the current contents of storage.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.ensureTables() {
		return func(func(EntityId, T) bool) {}
	}
	return q.view.iterTables(q.tables)
}

// Values returns an iterator over component data only.
func (q *Query[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range q.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}

// First returns the first matching entity, if any.
func (q *Query[T]) First() (EntityId, T, bool) {
	for id, item := range q.Iter() {
		return id, item, true
	}
	var zero T
	return 0, zero, false
}

// Count returns the number of matching entities.
func (q *Query[T]) Count() int {
	n := 0
	for range q.Iter() {
		n++
	}
	return n
}
