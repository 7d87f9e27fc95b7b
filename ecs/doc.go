// Package ecs provides a [Donburi] adapter for overscroll.
//
// Attach [Component] to entities that show stretchable content, set their
// Effect from your scroll systems, and run a [System] each frame:
//
//	sys := ecs.NewSystem(overscroll.NewShaderFactory(overscroll.DefaultParams()))
//
//	// Update
//	sys.Update(world)
//	ecs.SettledEventType.ProcessEvents(world)
//
//	// Draw
//	sys.Draw(world, screen)
//
// [SettledEventType] fires once when an entity's stretch relaxes back to no
// effect, which is where list snapping or fade-outs usually hook in.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
