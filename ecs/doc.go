// Package ecs bridges blueberry's GameState lifecycle events into a
// [Donburi] world.
//
// [NewDonburiSink] publishes every [blueberry.SceneEvent] as a typed Donburi
// event and keeps one entity per GameObject carrying the [Object] component,
// so ECS systems can query the scene with [Objects].
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	game.State.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
