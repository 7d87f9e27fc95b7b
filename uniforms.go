package overscroll

// Uniform names understood by both stretch programs. The WGSL program uses
// them verbatim; the Kage program declares the exported form (see kageName).
const (
	UniformContentTexture            = "uContentTexture"
	UniformMaxStretchIntensity       = "uMaxStretchIntensity"
	UniformStretchAffectedDistX      = "uStretchAffectedDistX"
	UniformStretchAffectedDistY      = "uStretchAffectedDistY"
	UniformDistanceStretchedX        = "uDistanceStretchedX"
	UniformDistanceStretchedY        = "uDistanceStretchedY"
	UniformInverseDistanceStretchedX = "uInverseDistanceStretchedX"
	UniformInverseDistanceStretchedY = "uInverseDistanceStretchedY"
	UniformDistDiffX                 = "uDistDiffX"
	UniformDistDiffY                 = "uDistDiffY"
	UniformScrollX                   = "uScrollX"
	UniformScrollY                   = "uScrollY"
	UniformOverscrollX               = "uOverscrollX"
	UniformOverscrollY               = "uOverscrollY"
	UniformViewportWidth             = "viewportWidth"
	UniformViewportHeight            = "viewportHeight"
	UniformInterpolationStrength     = "uInterpolationStrength"
)

// numScalarUniforms is the number of float uniforms (everything but the
// content texture).
const numScalarUniforms = 16

type scalarUniform struct {
	name  string
	value float32
}

// scalarUniforms flattens u into the declaration order shared by both
// programs. The WGSL uniform buffer is laid out in exactly this order.
func scalarUniforms(u Uniforms) [numScalarUniforms]scalarUniform {
	return [numScalarUniforms]scalarUniform{
		{UniformMaxStretchIntensity, float32(u.MaxStretchIntensity)},
		{UniformStretchAffectedDistX, float32(u.X.StretchAffectedDist)},
		{UniformStretchAffectedDistY, float32(u.Y.StretchAffectedDist)},
		{UniformDistanceStretchedX, float32(u.X.DistanceStretched)},
		{UniformDistanceStretchedY, float32(u.Y.DistanceStretched)},
		{UniformInverseDistanceStretchedX, float32(u.X.InverseDistanceStretched)},
		{UniformInverseDistanceStretchedY, float32(u.Y.InverseDistanceStretched)},
		{UniformDistDiffX, float32(u.X.DistDiff)},
		{UniformDistDiffY, float32(u.Y.DistDiff)},
		{UniformScrollX, float32(u.X.Scroll)},
		{UniformScrollY, float32(u.Y.Scroll)},
		{UniformOverscrollX, float32(u.X.Overscroll)},
		{UniformOverscrollY, float32(u.Y.Overscroll)},
		{UniformViewportWidth, float32(u.ViewportWidth)},
		{UniformViewportHeight, float32(u.ViewportHeight)},
		{UniformInterpolationStrength, float32(u.InterpolationStrength)},
	}
}

// uniformMap returns the scalar uniforms keyed by name.
func uniformMap(u Uniforms, name func(string) string) map[string]any {
	vals := scalarUniforms(u)
	m := make(map[string]any, len(vals))
	for _, v := range vals {
		m[name(v.name)] = v.value
	}
	return m
}

// kageName returns the name a uniform is declared under in Kage, which only
// binds exported (upper-case) package variables.
func kageName(name string) string {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return name
	}
	return string(name[0]-'a'+'A') + name[1:]
}

func verbatimName(name string) string { return name }
