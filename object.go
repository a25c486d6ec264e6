package blueberry

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type componentEntry struct {
	typ   ComponentType
	rtype reflect.Type
	comp  Component
	// removed is set when the component is detached while a dispatch over
	// the previous slice may still be running.
	removed bool
}

// GameObject is a named container of components. Components run in the order
// they were added, so later components draw over earlier ones.
type GameObject struct {
	id   uuid.UUID
	name string

	// Active gates Update and Render. Debug always runs.
	Active bool

	// components is replaced, never shifted in place, so a dispatch loop
	// keeps a stable view when a component is removed mid-update.
	components []*componentEntry
	state      *GameState
}

// NewGameObject creates an active object and adds comps in order. Components
// that reject the attach are dropped.
func NewGameObject(name string, comps ...Component) *GameObject {
	o := &GameObject{id: uuid.New(), name: name, Active: true}
	for _, c := range comps {
		o.AddComponent(c)
	}
	return o
}

// ID returns the object's instance id.
func (o *GameObject) ID() uuid.UUID { return o.id }

// Name returns the object's name, unique within its GameState.
func (o *GameObject) Name() string { return o.name }

// State returns the GameState holding the object, or nil.
func (o *GameObject) State() *GameState { return o.state }

// AddComponent offers c to the object. c.OnAttach decides: on false the
// component is dropped and AddComponent returns false.
func (o *GameObject) AddComponent(c Component) bool {
	if c == nil {
		panic(fmt.Sprintf("blueberry: nil component added to GameObject %q", o.name))
	}
	rtype := reflect.TypeOf(c)
	if !c.OnAttach(o) {
		logger.Debug("component rejected",
			zap.String("object", o.name),
			zap.String("component", typeName(rtype)))
		o.emit(SceneEvent{Type: EventComponentRejected, Object: o, Component: c})
		return false
	}
	o.components = append(o.components, &componentEntry{typ: typeID(rtype), rtype: rtype, comp: c})
	o.emit(SceneEvent{Type: EventComponentAttached, Object: o, Component: c})
	return true
}

// RemoveComponent detaches c, calling OnDetach when c implements Detacher.
// It reports whether c was attached. Removing during Update is allowed; c is
// skipped for the rest of the pass.
func (o *GameObject) RemoveComponent(c Component) bool {
	if c == nil || !reflect.TypeOf(c).Comparable() {
		return false
	}
	for i, e := range o.components {
		if e.comp != c {
			continue
		}
		e.removed = true
		o.components = slices.Delete(slices.Clone(o.components), i, i+1)
		if d, ok := c.(Detacher); ok {
			d.OnDetach(o)
		}
		o.emit(SceneEvent{Type: EventComponentRemoved, Object: o, Component: c})
		return true
	}
	return false
}

// Components returns the attached components in insertion order.
func (o *GameObject) Components() []Component {
	out := make([]Component, len(o.components))
	for i, e := range o.components {
		out[i] = e.comp
	}
	return out
}

// NumComponents returns how many components are attached.
func (o *GameObject) NumComponents() int { return len(o.components) }

// Update runs every component's Update when the object is active.
func (o *GameObject) Update(frame FrameInfo, input *InputInfo) {
	if !o.Active {
		return
	}
	for _, e := range o.components {
		if e.removed {
			continue
		}
		e.comp.Update(frame, input)
	}
}

// Render runs every component's Render when the object is active.
func (o *GameObject) Render(dst ImageBuffer) {
	if !o.Active {
		return
	}
	for _, e := range o.components {
		if e.removed {
			continue
		}
		e.comp.Render(dst)
	}
}

// Debug runs every component's Debug, active or not.
func (o *GameObject) Debug(sink DebugSink) {
	for _, e := range o.components {
		e.comp.Debug(sink)
	}
}

func (o *GameObject) emit(ev SceneEvent) {
	if o.state != nil {
		o.state.emit(ev)
	}
}

// --- typed lookup ---

// GetComponent returns the first component of type T. When T is an interface
// type, the first component implementing it is returned.
func GetComponent[T any](obj *GameObject) (T, bool) {
	var zero T
	if obj == nil {
		return zero, false
	}
	rtype := reflect.TypeFor[T]()
	typ := typeID(rtype)
	for _, e := range obj.components {
		// Function-local types share a name and so a ComponentType.
		if e.typ == typ && e.rtype == rtype {
			return e.comp.(T), true
		}
	}
	if rtype.Kind() == reflect.Interface {
		for _, e := range obj.components {
			if c, ok := e.comp.(T); ok {
				return c, true
			}
		}
	}
	return zero, false
}

// HasComponent reports whether obj has a component of type T.
func HasComponent[T any](obj *GameObject) bool {
	_, ok := GetComponent[T](obj)
	return ok
}

// RequireComponent is GetComponent returning ErrComponentNotFound when no
// component of type T is attached.
func RequireComponent[T any](obj *GameObject) (T, error) {
	c, ok := GetComponent[T](obj)
	if !ok {
		return c, fmt.Errorf("blueberry: component of type %q was not found on GameObject %q: %w",
			typeName(reflect.TypeFor[T]()), obj.name, ErrComponentNotFound)
	}
	return c, nil
}

// MustComponent is GetComponent that panics when no component of type T is
// attached.
func MustComponent[T any](obj *GameObject) T {
	c, err := RequireComponent[T](obj)
	if err != nil {
		panic(err.Error())
	}
	return c
}
