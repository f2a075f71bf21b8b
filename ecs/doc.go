// Package ecs provides Donburi adapters for scrollcam scenes.
//
// [NewDonburiSink] forwards scene events (quit, mode and zoom changes,
// recenter, config reload) into a [Donburi] world as typed events. Subscribe
// to [SceneEventType] in your ECS systems to receive them.
//
// [NewDrawList] goes the other way: every entity in the world carrying both
// [Position] and [Sprite] is drawn by the scene, depth sorted together with
// the scene's own entities.
//
// Usage:
//
//	world := donburi.NewWorld()
//	scene.SetEventSink(ecs.NewDonburiSink(world))
//	scene.AddDrawList(ecs.NewDrawList(world))
//	ecs.Spawn(world, "rock", math.NewVec2(300, 400), rockTexture)
//
// Host loops run [ProcessHook] each frame to deliver the queued events.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
