package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/paddlearena/ecs"
)

func NewQueryDebuggerComponent() QueryDebuggerComponent {
	return QueryDebuggerComponent{selected: make(map[string]bool)}
}

// Render lets the user tick component kinds and lists the entities that hold
// all of them.
func (qd *QueryDebuggerComponent) Render(storage *ecs.Storage) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		clear(qd.selected)
	}

	var kinds []reflect.Type
	for _, kind := range storage.ComponentKinds() {
		name := kind.String()
		selected := qd.selected[name]
		if imgui.Checkbox(name, &selected) {
			if selected {
				qd.selected[name] = true
			} else {
				delete(qd.selected, name)
			}
		}
		if qd.selected[name] {
			kinds = append(kinds, kind)
		}
	}

	imgui.Separator()

	if len(kinds) == 0 {
		imgui.Text("No component types selected")
		return
	}

	matched := MatchingEntities(storage, kinds)
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matched)))

	if imgui.TreeNodeStr("Entities") {
		for _, id := range matched {
			imgui.BulletText(fmt.Sprintf("%d", id))
		}
		imgui.TreePop()
	}
}
