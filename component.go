package blueberry

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Component is a unit of behavior attached to a GameObject. The object owns
// it and calls Update and Render once per frame while active, and Debug
// whenever a debug view is drawn.
type Component interface {
	// OnAttach runs before the component is stored. Returning false
	// rejects it and the object drops it. Singletons use this to refuse a
	// second instance.
	OnAttach(obj *GameObject) bool
	Update(frame FrameInfo, input *InputInfo)
	Render(dst ImageBuffer)
	// Debug writes a short human-readable description of the component.
	Debug(sink DebugSink)
}

// Detacher is implemented by components that need to release state when
// they are removed from an object.
type Detacher interface {
	OnDetach(obj *GameObject)
}

// ComponentBase gives embedders no-op Component methods. OnAttach accepts.
type ComponentBase struct{}

func (ComponentBase) OnAttach(*GameObject) bool    { return true }
func (ComponentBase) Update(FrameInfo, *InputInfo) {}
func (ComponentBase) Render(ImageBuffer)           {}
func (ComponentBase) Debug(DebugSink)              {}

// ComponentType identifies a concrete component type. It is the xxhash of the
// fully qualified type name, so it is stable across runs and builds.
type ComponentType uint64

// TypeOf returns the ComponentType of T.
func TypeOf[T any]() ComponentType {
	return typeID(reflect.TypeFor[T]())
}

// ComponentTypeOf returns the ComponentType of c's dynamic type.
func ComponentTypeOf(c Component) ComponentType {
	return typeID(reflect.TypeOf(c))
}

func typeID(t reflect.Type) ComponentType {
	return ComponentType(xxhash.Sum64String(typeName(t)))
}

// typeName returns "import/path.Name", with a leading "*" per pointer level.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Pointer {
		return "*" + typeName(t.Elem())
	}
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
