package debugui

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/plus3/paddlearena/ecs"
)

// EntityRow is one line of the entity browser.
type EntityRow struct {
	ID             ecs.EntityId
	ComponentTypes []string
}

// EntityRows lists every live entity in creation order together with the
// kinds attached to it.
func EntityRows(storage *ecs.Storage) []EntityRow {
	ids := storage.Entities()
	rows := make([]EntityRow, 0, len(ids))
	for _, id := range ids {
		kinds := storage.ComponentTypes(id)
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = k.String()
		}
		rows = append(rows, EntityRow{ID: id, ComponentTypes: names})
	}
	return rows
}

// FilterEntityRows keeps rows whose id or component names contain text,
// case-insensitively. An empty filter returns rows unchanged.
func FilterEntityRows(rows []EntityRow, text string) []EntityRow {
	if text == "" {
		return rows
	}

	needle := strings.ToLower(text)
	filtered := make([]EntityRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(fmt.Sprintf("%d", row.ID), needle) ||
			strings.Contains(strings.ToLower(strings.Join(row.ComponentTypes, " ")), needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

const (
	EntityColumnID = iota
	EntityColumnComponents
	EntityColumnCount
)

// SortEntityRows orders rows in place by the given column.
func SortEntityRows(rows []EntityRow, column int, ascending bool) {
	slices.SortStableFunc(rows, func(a, b EntityRow) int {
		var c int
		switch column {
		case EntityColumnComponents:
			c = strings.Compare(strings.Join(a.ComponentTypes, ","), strings.Join(b.ComponentTypes, ","))
		case EntityColumnCount:
			c = cmp.Compare(len(a.ComponentTypes), len(b.ComponentTypes))
		default:
			c = cmp.Compare(a.ID, b.ID)
		}
		if !ascending {
			return -c
		}
		return c
	})
}

const (
	TableColumnType = iota
	TableColumnRecords
)

// SortTableStats orders table stats in place by the given column.
func SortTableStats(tables []ecs.TableStats, column int, ascending bool) {
	slices.SortStableFunc(tables, func(a, b ecs.TableStats) int {
		var c int
		if column == TableColumnType {
			c = strings.Compare(a.ComponentType, b.ComponentType)
		} else {
			c = cmp.Compare(a.RecordCount, b.RecordCount)
		}
		if !ascending {
			return -c
		}
		return c
	})
}

// MatchingEntities returns every entity holding all of kinds, in creation
// order. It answers the same question a View over those kinds would.
func MatchingEntities(storage *ecs.Storage, kinds []reflect.Type) []ecs.EntityId {
	if len(kinds) == 0 {
		return nil
	}

	var matched []ecs.EntityId
	for _, id := range storage.Entities() {
		ok := true
		for _, k := range kinds {
			if !storage.HasComponent(id, k) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, id)
		}
	}
	return matched
}

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	next    int
	filled  bool
}

func NewFrameHistory(size int) *FrameHistory {
	if size <= 0 {
		size = 1
	}
	return &FrameHistory{samples: make([]float32, size)}
}

func (h *FrameHistory) Push(ms float32) {
	h.samples[h.next] = ms
	h.next = (h.next + 1) % len(h.samples)
	if h.next == 0 {
		h.filled = true
	}
}

// Ordered returns the recorded samples oldest first.
func (h *FrameHistory) Ordered() []float32 {
	if !h.filled {
		return slices.Clone(h.samples[:h.next])
	}
	return append(slices.Clone(h.samples[h.next:]), h.samples[:h.next]...)
}

// Average returns the mean of the recorded samples, or 0 when empty.
func (h *FrameHistory) Average() float32 {
	ordered := h.Ordered()
	if len(ordered) == 0 {
		return 0
	}
	var sum float32
	for _, s := range ordered {
		sum += s
	}
	return sum / float32(len(ordered))
}
