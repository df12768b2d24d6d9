// Package ecs bridges voxfolio scene interactions and navigation changes
// into a [Donburi] world as typed events.
//
// Usage:
//
//	w := donburi.NewWorld()
//	scene.SetEntityStore(ecs.NewDonburiStore(w))
//	controller.SetSink(ecs.NewNavSink(w))
//
// Subscribe to [InteractionEventType] or [NavigationEventType] in your
// systems and call events.ProcessAllEvents once per frame.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
