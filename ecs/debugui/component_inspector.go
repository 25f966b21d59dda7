package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/paddlearena/ecs"
)

func NewComponentInspectorComponent() ComponentInspectorComponent {
	return ComponentInspectorComponent{cache: globalReflectionCache}
}

// Render shows every record attached to the entity and lets scalar fields be
// edited in place.
func (ci *ComponentInspectorComponent) Render(storage *ecs.Storage, id ecs.EntityId) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	if id.IsZero() {
		imgui.Text("No entity selected")
		return
	}
	if !storage.Alive(id) {
		imgui.Text(fmt.Sprintf("Entity %d no longer exists", id))
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", id))
	imgui.Separator()

	for _, kind := range storage.ComponentTypes(id) {
		record := storage.GetComponent(id, kind)
		if record == nil {
			continue
		}

		if imgui.TreeNodeStr(kind.String()) {
			ci.renderValue(kind.String(), reflect.ValueOf(record).Elem())
			imgui.TreePop()
		}
	}
}

// renderValue draws v, which is addressable because it was reached through
// the record pointer, so edits write straight into storage.
func (ci *ComponentInspectorComponent) renderValue(label string, v reflect.Value) {
	if v.Kind() == reflect.Struct {
		for _, field := range ci.cache.Fields(v.Type()) {
			fv := v.Field(field.Index)
			if field.IsPointer {
				if fv.IsNil() {
					imgui.Text(fmt.Sprintf("%s: nil", field.Name))
					continue
				}
				fv = fv.Elem()
			}

			if fv.Kind() == reflect.Struct {
				if imgui.TreeNodeStr(field.Name) {
					ci.renderValue(field.Name, fv)
					imgui.TreePop()
				}
				continue
			}
			ci.renderScalar(field.Name, fv)
		}
		return
	}

	ci.renderScalar(label, v)
}

func (ci *ComponentInspectorComponent) renderScalar(name string, v reflect.Value) {
	id := "##" + name

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := int32(v.Int())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(id, &n) && v.CanSet() {
			v.SetInt(int64(n))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := int32(v.Uint())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(id, &n) && n >= 0 && v.CanSet() {
			v.SetUint(uint64(n))
		}

	case reflect.Float32, reflect.Float64:
		f := float32(v.Float())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(id, &f) && v.CanSet() {
			v.SetFloat(float64(f))
		}

	case reflect.Bool:
		b := v.Bool()
		if imgui.Checkbox(name, &b) && v.CanSet() {
			v.SetBool(b)
		}

	case reflect.String:
		s := v.String()
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(id, "", &s, imgui.InputTextFlagsNone, nil) && v.CanSet() {
			v.SetString(s)
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, v.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, v.Len()))

	case reflect.Func:
		imgui.Text(name + ": func")

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, v.Interface()))
	}
}
