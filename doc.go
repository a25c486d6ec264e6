// Package blueberry is a software 2D pixel compositor with a small
// component container, for low-resolution sprite games.
//
// All drawing happens on the CPU into RGBA8 buffers. Presentation, windowing
// and input polling live in backends: backend/ebiten opens a window with
// [Ebitengine], backend/terminal draws into a terminal with [tcell].
//
// # Quick start
//
//	game := blueberry.NewGame(240, 160)
//
//	src := blueberry.NewFileSource("assets/sprites")
//	atlas, _ := blueberry.NewAtlas(src, "dungeon_sheet.png")
//	_ = atlas.Add(64, 112, 16, 16)
//	_ = atlas.Add(80, 112, 16, 16)
//	anim, _ := blueberry.NewAnimationFromAtlas(atlas, 0.25)
//
//	hero := blueberry.NewGameObject("hero",
//		blueberry.NewTransformComponent(nil, 120, 80),
//		blueberry.NewAnimationComponent(anim),
//	)
//	_ = game.State.Add(hero)
//
//	ebiten.Run(game, blueberry.DefaultConfig())
//
// A backend calls [Game.Update] with the elapsed time and [Game.Draw] with
// the byte slice it presents. Draw renders every active object into the
// [CamBuffer], dumps it, and clears it for the next frame.
//
// # Buffers
//
// [SpriteBuffer] and [CamBuffer] implement [ImageBuffer]. Blending uses the
// Porter-Duff "over" operator on straight alpha ([Color.Blend]); pixels that
// land outside the destination are clipped. Rotation uses RotSprite and
// scaling uses Scale2x, both of which keep pixel-art edges hard.
//
// # Components
//
// A [GameObject] holds components in insertion order. Typed lookup goes
// through [GetComponent], [HasComponent], [RequireComponent] and
// [MustComponent]. A component can refuse to attach by returning false from
// OnAttach; [TransformComponent] does this to stay unique per object.
//
// # Events
//
// [GameState.SetEventSink] forwards object and component lifecycle events,
// for example into a [Donburi] world via the ecs package.
//
// [Ebitengine]: https://ebitengine.org
// [tcell]: https://github.com/gdamore/tcell
// [Donburi]: https://github.com/yohamta/donburi
package blueberry
