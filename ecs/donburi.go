// Package ecs provides ECS adapters for blueberry.
package ecs

import (
	"github.com/phanxgames/blueberry"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// SceneEventType is the Donburi event type for blueberry lifecycle events.
// Subscribe to it in your ECS systems to react to objects and components
// coming and going.
var SceneEventType = events.NewEventType[blueberry.SceneEvent]()

// ObjectData links an entity to the GameObject it mirrors.
type ObjectData struct {
	Object *blueberry.GameObject
}

// Object is the component carried by every mirrored entity.
var Object = donburi.NewComponentType[ObjectData]()

// Objects matches every mirrored entity.
var Objects = donburi.NewQuery(filter.Contains(Object))

// DonburiSink is a blueberry.EventSink that publishes events into a Donburi
// world and mirrors each GameObject as an entity.
type DonburiSink struct {
	world    donburi.World
	entities map[*blueberry.GameObject]donburi.Entity
}

var _ blueberry.EventSink = (*DonburiSink)(nil)

// NewDonburiSink creates a sink for world. Events are queued; consume them
// with SceneEventType.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{
		world:    world,
		entities: make(map[*blueberry.GameObject]donburi.Entity),
	}
}

// EmitEvent implements blueberry.EventSink.
func (s *DonburiSink) EmitEvent(event blueberry.SceneEvent) {
	switch event.Type {
	case blueberry.EventObjectAdded:
		if _, ok := s.entities[event.Object]; !ok {
			e := s.world.Create(Object)
			Object.SetValue(s.world.Entry(e), ObjectData{Object: event.Object})
			s.entities[event.Object] = e
		}
	case blueberry.EventObjectRemoved:
		if e, ok := s.entities[event.Object]; ok {
			if s.world.Valid(e) {
				s.world.Remove(e)
			}
			delete(s.entities, event.Object)
		}
	}
	SceneEventType.Publish(s.world, event)
}

// Entity returns the entity mirroring obj.
func (s *DonburiSink) Entity(obj *blueberry.GameObject) (donburi.Entity, bool) {
	e, ok := s.entities[obj]
	return e, ok
}
