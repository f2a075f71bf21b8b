// Package scrollcam is a small 2D scene renderer with a scrolling camera,
// built for [Ebitengine] and also runnable in a terminal.
//
// A [Scene] owns a set of [Entity] sprites, a [Player], and a [Camera]. Each
// frame the scene samples an [Input], moves the player, and lets the camera
// compute the view offset in one of several panning modes:
//
//   - [PanMouse]: edge panning. Moving the pointer past a margin scrolls the
//     view and teleports the pointer back onto the margin, so a held
//     gesture keeps scrolling.
//   - [PanCenter]: the player stays centered.
//   - [PanBox]: the player pushes a dead-zone box around.
//   - [PanKeyboard] and [PanBoxKeyboard]: pan keys translate the box.
//
// Drawing is painter's-algorithm: entities are sorted by their vertical
// center so lower sprites occlude higher ones. With zoom enabled the frame is
// composed into an oversized off-screen buffer and scaled about the viewport
// center.
//
// The scene never touches a device directly. Hosts implement [Input],
// [Surface], and [BufferFactory]:
//
//	scene := scrollcam.NewForest(cfg, buffers, sprites)
//	for {
//		if err := scene.Update(input); err != nil {
//			break // scrollcam.ErrQuit
//		}
//		scene.Draw(screen)
//	}
//
// See package ebitenhost for a windowed host and package termhost for a
// terminal host. Camera scroll-to and zoom-to animations use [gween]; package
// ecs bridges scene events into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package scrollcam
