package debugui

import (
	"github.com/plus3/paddlearena/ecs"
)

// Target is the storage the debug tools inspect. It lives as a singleton in
// the UI storage, which is kept separate from the inspected one.
type Target struct {
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler
}

type EntityBrowserComponent struct {
	selected      ecs.EntityId
	filterText    string
	perPage       int
	page          int
	sortColumn    int
	sortAscending bool
}

type ComponentInspectorComponent struct {
	cache *ReflectionCache
}

type TableViewerComponent struct {
	sortColumn    int
	sortAscending bool
}

type PerformanceStatsComponent struct {
	history *FrameHistory
}

type QueryDebuggerComponent struct {
	selected map[string]bool
}
