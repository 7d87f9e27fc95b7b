// Package overscroll implements the overscroll "stretch" effect for
// [Ebitengine]: when a scrollable view is pulled past its edge, the content
// near that edge is compressed and the rest is shifted, giving a rubber-band
// look instead of a glow.
//
// # Quick start
//
// Build one [ShaderFactory] for the lifetime of the program and describe
// every frame with an [Effect]:
//
//	factory := overscroll.NewShaderFactory(overscroll.DefaultParams())
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.drawList(g.canvas.Image())
//		e := g.canvas.Effect(g.pull, 0, 0)
//		if s := factory.CreateShader(g.canvas.Image(), e); s != nil {
//			s.Draw(screen)
//		} else {
//			screen.DrawImage(g.canvas.Image(), nil)
//		}
//	}
//
// CreateShader returns nil when the effect is empty, so the common
// not-pulling case costs nothing. The Kage program is compiled on the first
// non-empty call and shared by all later ones.
//
// # Coordinates
//
// [Warp] and [WarpAxis] evaluate the same mapping on the CPU, which is
// handy for hit-testing stretched content. [Derive] exposes the uniforms.
//
// # WebGPU hosts
//
// [WGSLFactory] provides the same program as WGSL compiled to SPIR-V with
// [naga], plus the uniform buffer bytes, for hosts that drive wgpu
// themselves.
//
// [Ebitengine]: https://ebitengine.org
// [naga]: https://github.com/gogpu/naga
package overscroll
