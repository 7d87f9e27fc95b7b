package overscroll

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// kageStretchShaderSrc evaluates WarpAxis per pixel and samples Images[0]
// (uContentTexture) at the warped coordinate. Uniform names are the exported
// forms of the Uniform* constants.
//
// Samples that land outside the content are clamped to its edge.
const kageStretchShaderSrc = `//kage:unit pixels
package main

// Reserved multiplier, never read.
var UMaxStretchIntensity float

// Fraction of each axis the stretch acts on.
var UStretchAffectedDistX float
var UStretchAffectedDistY float

// Where the affected region compresses to under the current overscroll.
var UDistanceStretchedX float
var UDistanceStretchedY float
var UInverseDistanceStretchedX float
var UInverseDistanceStretchedY float

// Translation applied past the affected region.
var UDistDiffX float
var UDistDiffY float

// Content offset divided by the viewport size.
var UScrollX float
var UScrollY float

// Signed normalized overscroll.
var UOverscrollX float
var UOverscrollY float

var ViewportWidth float
var ViewportHeight float

// 0 stretches the affected band uniformly, 1 concentrates the stretch near
// the scroll anchor.
var UInterpolationStrength float

func easeIn(t float, d float) float {
	return t * d
}

func computeOverscrollStart(inPos float, overscroll float, affectedDist float, invAffectedDist float, distanceStretched float, strength float) float {
	offsetPos := affectedDist - inPos
	variation := mix(1.0, easeIn(offsetPos, invAffectedDist), strength)
	intensity := overscroll * variation
	return distanceStretched - offsetPos/(1.0+intensity)
}

func computeOverscrollEnd(inPos float, overscroll float, farEdge float, invAffectedDist float, distanceStretched float, strength float) float {
	offsetPos := inPos - farEdge
	variation := mix(1.0, easeIn(offsetPos, invAffectedDist), strength)
	intensity := -overscroll * variation
	return 1.0 - (distanceStretched - offsetPos/(1.0+intensity))
}

// overscroll is a uniform, so both branches are coherent across the draw.
func computeOverscroll(inPos float, overscroll float, affectedDist float, invAffectedDist float, distanceStretched float, distDiff float, strength float) float {
	outPos := inPos
	if overscroll > 0 {
		if inPos <= affectedDist {
			outPos = computeOverscrollStart(inPos, overscroll, affectedDist, invAffectedDist, distanceStretched, strength)
		} else if inPos >= distanceStretched {
			outPos = distDiff + inPos
		}
	}
	if overscroll < 0 {
		farEdge := 1.0 - affectedDist
		if inPos >= farEdge {
			outPos = computeOverscrollEnd(inPos, overscroll, farEdge, invAffectedDist, distanceStretched, strength)
		} else {
			outPos = inPos - distDiff
		}
	}
	return outPos
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	coord := srcPos - origin

	inU := coord.x/ViewportWidth + UScrollX
	inV := coord.y/ViewportHeight + UScrollY
	outU := computeOverscroll(inU, UOverscrollX, UStretchAffectedDistX, UInverseDistanceStretchedX, UDistanceStretchedX, UDistDiffX, UInterpolationStrength)
	outV := computeOverscroll(inV, UOverscrollY, UStretchAffectedDistY, UInverseDistanceStretchedY, UDistanceStretchedY, UDistDiffY, UInterpolationStrength)

	coord.x = (outU - UScrollX) * ViewportWidth
	coord.y = (outV - UScrollY) * ViewportHeight
	coord = clamp(coord, vec2(0), imageSrc0Size()-vec2(1))
	return imageSrc0At(coord + origin)
}
`

func compileKageStretchShader() (*ebiten.Shader, error) {
	return ebiten.NewShader([]byte(kageStretchShaderSrc))
}

// ShaderFactory builds stretch shader instances for Ebitengine images. It
// compiles the Kage program on first use and shares it between every
// instance it creates. A ShaderFactory is safe for concurrent use.
type ShaderFactory struct {
	params   Params
	program  *program[*ebiten.Shader]
	counters factoryCounters
}

// NewShaderFactory creates a factory deriving uniforms with p. Use
// DefaultParams for the stock tuning.
func NewShaderFactory(p Params) *ShaderFactory {
	return newShaderFactory(p, compileKageStretchShader)
}

func newShaderFactory(p Params, compile func() (*ebiten.Shader, error)) *ShaderFactory {
	return &ShaderFactory{
		params: p,
		program: newProgram("kage-stretch", compile, func(s *ebiten.Shader) {
			if s != nil {
				s.Deallocate()
			}
		}),
	}
}

// Params returns the tuning the factory derives uniforms with.
func (f *ShaderFactory) Params() Params { return f.params }

// Compile compiles the program now instead of on the first CreateShader.
// Unlike CreateShader it reports a compile failure as an error.
func (f *ShaderFactory) Compile() error {
	_, err := f.program.load()
	return err
}

// CreateShader binds content and the uniforms derived from e to the shared
// program. It returns nil, without compiling anything, when e has no effect.
// A compile failure is a defect in the static program text and panics.
func (f *ShaderFactory) CreateShader(content *ebiten.Image, e Effect) *Shader {
	if !e.HasEffect() {
		f.counters.skipped.Add(1)
		return nil
	}
	u := f.params.Derive(e)
	prog, err := f.program.load()
	if err != nil {
		panic("overscroll: failed to compile stretch shader: " + err.Error())
	}
	f.counters.created.Add(1)
	return &Shader{
		program:  prog,
		content:  content,
		uniforms: u,
		kage:     uniformMap(u, kageName),
	}
}

// Reset deallocates the compiled program. The next CreateShader recompiles.
// Shaders created before the reset must not be drawn afterwards.
func (f *ShaderFactory) Reset() {
	f.program.reset()
}

// Stats returns the factory's counters.
func (f *ShaderFactory) Stats() Stats {
	return f.counters.stats(f.program.compiles())
}

// Shader is one bound instance of the stretch program: a content image plus
// the uniforms of a single Effect. Instances are independent of each other.
type Shader struct {
	program  *ebiten.Shader
	content  *ebiten.Image
	uniforms Uniforms
	kage     map[string]any
}

// Content returns the image bound as uContentTexture.
func (s *Shader) Content() *ebiten.Image { return s.content }

// Derived returns the uniforms the instance was built from.
func (s *Shader) Derived() Uniforms { return s.uniforms }

// Uniforms returns the scalar uniforms keyed by their program names
// (uDistanceStretchedX, viewportWidth, ...). The map is a copy.
func (s *Shader) Uniforms() map[string]any {
	return uniformMap(s.uniforms, verbatimName)
}

// Draw renders the stretched content into dst, covering the content bounds.
func (s *Shader) Draw(dst *ebiten.Image) {
	s.DrawWithOptions(dst, nil)
}

// DrawWithOptions is like Draw but lets the caller set the geometry and
// blend of the draw. Images and Uniforms in op are overwritten.
func (s *Shader) DrawWithOptions(dst *ebiten.Image, op *ebiten.DrawRectShaderOptions) {
	if op == nil {
		op = &ebiten.DrawRectShaderOptions{}
	}
	op.Images[0] = s.content
	op.Uniforms = s.kage
	b := s.content.Bounds()
	dst.DrawRectShader(b.Dx(), b.Dy(), s.program, op)
}
