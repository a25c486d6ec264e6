package blueberry

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
)

// EventType names a GameState lifecycle event.
type EventType uint8

const (
	EventObjectAdded EventType = iota
	EventObjectRemoved
	EventComponentAttached
	EventComponentRejected
	EventComponentRemoved
)

var eventTypeNames = [...]string{
	EventObjectAdded:       "object_added",
	EventObjectRemoved:     "object_removed",
	EventComponentAttached: "component_attached",
	EventComponentRejected: "component_rejected",
	EventComponentRemoved:  "component_removed",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

// SceneEvent describes a change to a GameState. Component is nil for object
// events.
type SceneEvent struct {
	Type      EventType
	Object    *GameObject
	Component Component
}

// EventSink receives lifecycle events from a GameState, for example to
// mirror them into an ECS world.
type EventSink interface {
	EmitEvent(event SceneEvent)
}

// GameState owns the objects of a running game, keyed by unique name.
// Update, Render and Debug fan out to objects in insertion order.
type GameState struct {
	objects map[string]*GameObject
	order   []*GameObject
	sink    EventSink
	debug   bool
}

// NewGameState creates an empty state.
func NewGameState() *GameState {
	return &GameState{objects: make(map[string]*GameObject)}
}

// Add stores obj under its name. A name already in use is rejected with
// ErrDuplicateObject, as is an object that belongs to another state.
func (s *GameState) Add(obj *GameObject) error {
	if _, ok := s.objects[obj.name]; ok {
		return fmt.Errorf("blueberry: GameObject %q: %w", obj.name, ErrDuplicateObject)
	}
	if obj.state != nil && obj.state != s {
		return fmt.Errorf("blueberry: GameObject %q already belongs to another state: %w", obj.name, ErrDuplicateObject)
	}
	obj.state = s
	s.objects[obj.name] = obj
	s.order = append(s.order, obj)
	s.emit(SceneEvent{Type: EventObjectAdded, Object: obj})
	if s.debug {
		logger.Debug("object added",
			zap.String("object", obj.name),
			zap.Stringer("id", obj.id),
			zap.Int("components", len(obj.components)))
	}
	return nil
}

// Get returns the object named name.
func (s *GameState) Get(name string) (*GameObject, bool) {
	obj, ok := s.objects[name]
	return obj, ok
}

// Lookup is Get returning ErrObjectNotFound for an unknown name.
func (s *GameState) Lookup(name string) (*GameObject, error) {
	obj, ok := s.objects[name]
	if !ok {
		return nil, fmt.Errorf("blueberry: GameObject with the name %q does not exist: %w", name, ErrObjectNotFound)
	}
	return obj, nil
}

// MustGet is Get that panics for an unknown name.
func (s *GameState) MustGet(name string) *GameObject {
	obj, err := s.Lookup(name)
	if err != nil {
		panic(err.Error())
	}
	return obj
}

// Remove deletes the object named name and reports whether it existed. It is
// safe to call from a component's Update; the removed object is skipped for
// the rest of the pass.
func (s *GameState) Remove(name string) bool {
	obj, ok := s.objects[name]
	if !ok {
		return false
	}
	delete(s.objects, name)
	if i := slices.Index(s.order, obj); i >= 0 {
		s.order = slices.Delete(slices.Clone(s.order), i, i+1)
	}
	s.emit(SceneEvent{Type: EventObjectRemoved, Object: obj})
	obj.state = nil
	return true
}

// Len returns the number of objects.
func (s *GameState) Len() int { return len(s.order) }

// Objects returns the objects in insertion order. The returned slice MUST NOT
// be mutated.
func (s *GameState) Objects() []*GameObject { return s.order }

// Update runs Update on every object.
func (s *GameState) Update(frame FrameInfo, input *InputInfo) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	for _, obj := range s.order {
		if obj.state != s {
			continue
		}
		obj.Update(frame, input)
	}
	if s.debug {
		logger.Debug("state update",
			zap.Uint64("frame", frame.Frame),
			zap.Float64("delta", frame.Delta),
			zap.Int("objects", len(s.order)),
			zap.Duration("took", time.Since(t0)))
	}
}

// Render runs Render on every object, drawing into dst.
func (s *GameState) Render(dst ImageBuffer) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	for _, obj := range s.order {
		if obj.state != s {
			continue
		}
		obj.Render(dst)
	}
	if s.debug {
		logger.Debug("state render",
			zap.Int("objects", len(s.order)),
			zap.Duration("took", time.Since(t0)))
	}
}

// Debug writes a header line per object followed by its components' debug
// output.
func (s *GameState) Debug(sink DebugSink) {
	for _, obj := range s.order {
		status := ""
		if !obj.Active {
			status = " (inactive)"
		}
		sink.Text(obj.name + status)
		obj.Debug(indentSink{sink: sink, prefix: "  "})
	}
}

// SetEventSink installs sink to receive lifecycle events. Nil disables.
func (s *GameState) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables per-frame timing logs through the package logger.
func (s *GameState) SetDebugMode(enabled bool) {
	s.debug = enabled
}

func (s *GameState) emit(ev SceneEvent) {
	if s.sink != nil {
		s.sink.EmitEvent(ev)
	}
}
