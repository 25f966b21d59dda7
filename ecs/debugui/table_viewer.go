package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/paddlearena/ecs"
)

func NewTableViewerComponent() TableViewerComponent {
	return TableViewerComponent{sortColumn: TableColumnRecords}
}

// Render lists one row per component table with its live record count.
func (tv *TableViewerComponent) Render(storage *ecs.Storage) {
	if !imgui.BeginV("Component Tables", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	tables := storage.CollectStats().TableBreakdown

	maxRecords := 0
	for _, t := range tables {
		maxRecords = max(maxRecords, t.RecordCount)
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ComponentTables", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component")
		imgui.TableSetupColumn("Records")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			tv.sortColumn = int(spec.ColumnIndex())
			tv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		SortTableStats(tables, tv.sortColumn, tv.sortAscending)

		for _, t := range tables {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(t.ComponentType)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", t.RecordCount))

			if maxRecords > 0 {
				barWidth := float32(t.RecordCount) / float32(maxRecords) * 80.0
				imgui.SameLine()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				imgui.WindowDrawList().AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}
