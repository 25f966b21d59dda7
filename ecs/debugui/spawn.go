package debugui

import "github.com/plus3/paddlearena/ecs"

// ToolsSystem renders the built-in debug windows against the Target singleton.
type ToolsSystem struct {
	Browsers   ecs.Query[struct{ *EntityBrowserComponent }]
	Inspectors ecs.Query[struct{ *ComponentInspectorComponent }]
	Tables     ecs.Query[struct{ *TableViewerComponent }]
	Perf       ecs.Query[struct{ *PerformanceStatsComponent }]
	Queries    ecs.Query[struct{ *QueryDebuggerComponent }]
	Target     ecs.Singleton[Target]
}

func (s *ToolsSystem) Execute(frame *ecs.UpdateFrame) {
	target := s.Target.Get()
	if target == nil || target.Storage == nil {
		return
	}
	storage, scheduler := target.Storage, target.Scheduler
	dt := frame.DeltaTime

	var selected ecs.EntityId
	for item := range s.Browsers.Values() {
		browser := item.EntityBrowserComponent
		frame.Commands.Defer(func() { browser.Render(storage) })
		selected = browser.Selected()
	}
	for item := range s.Inspectors.Values() {
		inspector := item.ComponentInspectorComponent
		frame.Commands.Defer(func() { inspector.Render(storage, selected) })
	}
	for item := range s.Tables.Values() {
		viewer := item.TableViewerComponent
		frame.Commands.Defer(func() { viewer.Render(storage) })
	}
	for item := range s.Perf.Values() {
		perf := item.PerformanceStatsComponent
		frame.Commands.Defer(func() { perf.Render(storage, scheduler, dt) })
	}
	for item := range s.Queries.Values() {
		debugger := item.QueryDebuggerComponent
		frame.Commands.Defer(func() { debugger.Render(storage) })
	}
}

func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[EntityBrowserComponent](registry)
	ecs.RegisterComponent[ComponentInspectorComponent](registry)
	ecs.RegisterComponent[TableViewerComponent](registry)
	ecs.RegisterComponent[PerformanceStatsComponent](registry)
	ecs.RegisterComponent[QueryDebuggerComponent](registry)
}

// SpawnDebugUI populates ui with the standard tool windows pointed at target.
func SpawnDebugUI(ui *ecs.Storage, target Target) {
	ui.AddSingleton(target)
	ui.AddSingleton(ImguiInputState{})

	ui.Spawn(NewEntityBrowserComponent(100))
	ui.Spawn(NewComponentInspectorComponent())
	ui.Spawn(NewTableViewerComponent())
	ui.Spawn(NewPerformanceStatsComponent(120))
	ui.Spawn(NewQueryDebuggerComponent())
}

// NewOverlay builds the UI storage and scheduler for inspecting target. Step
// the returned scheduler once per rendered frame, between the ImGui backend's
// BeginFrame and EndFrame.
func NewOverlay(target Target) (*ecs.Storage, *ecs.Scheduler) {
	registry := ecs.NewComponentRegistry()
	RegisterDebugUIComponents(registry)

	ui := ecs.NewStorage(registry)
	SpawnDebugUI(ui, target)

	scheduler := ecs.NewScheduler(ui)
	scheduler.Register(&ToolsSystem{})
	scheduler.Register(&ImguiSystem{})
	return ui, scheduler
}
