// Package ecs provides ECS adapters for armature's animation events.
//
// The primary adapter is [NewDonburiStore], which bridges armature animation
// lifecycle events (started, superseded, finished, stopped) into a [Donburi]
// world as typed events. Subscribe to [AnimationEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
