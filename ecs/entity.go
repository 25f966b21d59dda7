package ecs

// EntityId identifies an entity within a single Storage.
// Ids are issued in increasing order starting at 1 and are never reused,
// so the zero value always means "no entity".
type EntityId uint64

// IsZero reports whether the id is the "no entity" sentinel.
func (e EntityId) IsZero() bool {
	return e == 0
}

// entityAllocator hands out monotonically increasing entity ids.
type entityAllocator struct {
	last EntityId
}

func (a *entityAllocator) next() EntityId {
	a.last++
	return a.last
}
