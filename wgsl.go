package overscroll

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/naga"
)

// Bind group 0 layout of the WGSL stretch program.
const (
	BindingUniforms       = 0 // var<uniform> StretchUniforms
	BindingContentTexture = 1 // uContentTexture, texture_2d<f32>
	BindingContentSampler = 2 // sampler for uContentTexture

	// UniformBufferSize is the byte size of the StretchUniforms block.
	UniformBufferSize = numScalarUniforms * 4
)

// wgslStretchShaderSrc is the WebGPU rendition of the stretch program. The
// uniform block lists the scalar uniforms in scalarUniforms order, so the
// buffer from WGSLBinding.UniformBytes can be uploaded as is. The vertex
// stage emits a single full-viewport triangle.
const wgslStretchShaderSrc = `
struct StretchUniforms {
    uMaxStretchIntensity: f32,
    uStretchAffectedDistX: f32,
    uStretchAffectedDistY: f32,
    uDistanceStretchedX: f32,
    uDistanceStretchedY: f32,
    uInverseDistanceStretchedX: f32,
    uInverseDistanceStretchedY: f32,
    uDistDiffX: f32,
    uDistDiffY: f32,
    uScrollX: f32,
    uScrollY: f32,
    uOverscrollX: f32,
    uOverscrollY: f32,
    viewportWidth: f32,
    viewportHeight: f32,
    uInterpolationStrength: f32,
}

@group(0) @binding(0) var<uniform> u: StretchUniforms;
@group(0) @binding(1) var uContentTexture: texture_2d<f32>;
@group(0) @binding(2) var uContentSampler: sampler;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> VertexOutput {
    var output: VertexOutput;
    let x = select(-1.0, 3.0, idx == 1u);
    let y = select(-1.0, 3.0, idx == 2u);
    output.position = vec4<f32>(x, y, 0.0, 1.0);
    return output;
}

fn easeIn(t: f32, d: f32) -> f32 {
    return t * d;
}

fn computeOverscrollStart(inPos: f32, overscroll: f32, affectedDist: f32, invAffectedDist: f32, distanceStretched: f32, strength: f32) -> f32 {
    let offsetPos = affectedDist - inPos;
    let variation = mix(1.0, easeIn(offsetPos, invAffectedDist), strength);
    let intensity = overscroll * variation;
    return distanceStretched - offsetPos / (1.0 + intensity);
}

fn computeOverscrollEnd(inPos: f32, overscroll: f32, farEdge: f32, invAffectedDist: f32, distanceStretched: f32, strength: f32) -> f32 {
    let offsetPos = inPos - farEdge;
    let variation = mix(1.0, easeIn(offsetPos, invAffectedDist), strength);
    let intensity = -overscroll * variation;
    return 1.0 - (distanceStretched - offsetPos / (1.0 + intensity));
}

fn computeOverscroll(inPos: f32, overscroll: f32, affectedDist: f32, invAffectedDist: f32, distanceStretched: f32, distDiff: f32, strength: f32) -> f32 {
    var outPos = inPos;
    if (overscroll > 0.0) {
        if (inPos <= affectedDist) {
            outPos = computeOverscrollStart(inPos, overscroll, affectedDist, invAffectedDist, distanceStretched, strength);
        } else if (inPos >= distanceStretched) {
            outPos = distDiff + inPos;
        }
    }
    if (overscroll < 0.0) {
        let farEdge = 1.0 - affectedDist;
        if (inPos >= farEdge) {
            outPos = computeOverscrollEnd(inPos, overscroll, farEdge, invAffectedDist, distanceStretched, strength);
        } else {
            outPos = inPos - distDiff;
        }
    }
    return outPos;
}

@fragment
fn fs_main(@builtin(position) frag: vec4<f32>) -> @location(0) vec4<f32> {
    let inU = frag.x / u.viewportWidth + u.uScrollX;
    let inV = frag.y / u.viewportHeight + u.uScrollY;
    let outU = computeOverscroll(inU, u.uOverscrollX, u.uStretchAffectedDistX, u.uInverseDistanceStretchedX, u.uDistanceStretchedX, u.uDistDiffX, u.uInterpolationStrength);
    let outV = computeOverscroll(inV, u.uOverscrollY, u.uStretchAffectedDistY, u.uInverseDistanceStretchedY, u.uDistanceStretchedY, u.uDistDiffY, u.uInterpolationStrength);
    let size = vec2<f32>(textureDimensions(uContentTexture));
    let coord = vec2<f32>((outU - u.uScrollX) * u.viewportWidth, (outV - u.uScrollY) * u.viewportHeight);
    let uv = clamp(coord, vec2<f32>(0.5, 0.5), size - vec2<f32>(0.5, 0.5)) / size;
    return textureSample(uContentTexture, uContentSampler, uv);
}
`

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// compileWGSLStretchShader compiles the WGSL program to SPIR-V words.
func compileWGSLStretchShader() ([]uint32, error) {
	return compileWGSL(wgslStretchShaderSrc)
}

func compileWGSL(src string) ([]uint32, error) {
	spirv, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compile wgsl: %w", err)
	}
	if len(spirv) < 4 || len(spirv)%4 != 0 {
		return nil, fmt.Errorf("compile wgsl: malformed spir-v (%d bytes)", len(spirv))
	}
	// SPIR-V is a stream of little-endian 32-bit words.
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	if words[0] != spirvMagic {
		return nil, fmt.Errorf("compile wgsl: bad spir-v magic 0x%08X", words[0])
	}
	return words, nil
}

// WGSLFactory builds stretch bindings for WebGPU hosts. The WGSL program is
// compiled to SPIR-V once and shared by every binding. The caller owns the
// GPU side: it creates the shader module from Module, uploads UniformBytes
// and binds its content texture and sampler per the Binding* layout.
// A WGSLFactory is safe for concurrent use.
type WGSLFactory struct {
	params   Params
	program  *program[[]uint32]
	counters factoryCounters
}

// NewWGSLFactory creates a factory deriving uniforms with p.
func NewWGSLFactory(p Params) *WGSLFactory {
	return newWGSLFactory(p, compileWGSLStretchShader)
}

func newWGSLFactory(p Params, compile func() ([]uint32, error)) *WGSLFactory {
	return &WGSLFactory{
		params:  p,
		program: newProgram("wgsl-stretch", compile, nil),
	}
}

// Source returns the WGSL program text.
func (f *WGSLFactory) Source() string { return wgslStretchShaderSrc }

// Compile compiles the program now and reports any failure.
func (f *WGSLFactory) Compile() error {
	_, err := f.program.load()
	return err
}

// CreateBinding derives the uniforms for e and pairs them with the compiled
// module. It returns nil, without compiling, when e has no effect. A compile
// failure panics.
func (f *WGSLFactory) CreateBinding(e Effect) *WGSLBinding {
	if !e.HasEffect() {
		f.counters.skipped.Add(1)
		return nil
	}
	u := f.params.Derive(e)
	words, err := f.program.load()
	if err != nil {
		panic("overscroll: failed to compile stretch shader: " + err.Error())
	}
	f.counters.created.Add(1)
	return &WGSLBinding{Module: words, Uniforms: u}
}

// Reset forgets the compiled module. The next CreateBinding recompiles.
func (f *WGSLFactory) Reset() {
	f.program.reset()
}

// Stats returns the factory's counters.
func (f *WGSLFactory) Stats() Stats {
	return f.counters.stats(f.program.compiles())
}

// WGSLBinding is one bound instance of the WGSL stretch program.
type WGSLBinding struct {
	// Module is the shared SPIR-V module. It must not be modified.
	Module []uint32
	// Uniforms are the values derived for this binding's Effect.
	Uniforms Uniforms
}

// UniformBytes returns the StretchUniforms block as little-endian float32
// values, ready for a uniform buffer at BindingUniforms.
func (b *WGSLBinding) UniformBytes() []byte {
	buf := make([]byte, UniformBufferSize)
	for i, v := range scalarUniforms(b.Uniforms) {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v.value))
	}
	return buf
}

// UniformMap returns the scalar uniforms keyed by their program names.
func (b *WGSLBinding) UniformMap() map[string]any {
	return uniformMap(b.Uniforms, verbatimName)
}
