package overscroll

import "math"

const (
	// DefaultStretchAffectedDistance is the fraction of each normalized axis
	// that the stretch acts on. 1.0 means the whole viewport participates.
	DefaultStretchAffectedDistance = 1.0

	// DefaultInterpolationStrength blends between a uniform stretch (0) and a
	// stretch concentrated near the scroll anchor (1).
	DefaultInterpolationStrength = 0.7
)

// Params holds the tunable constants of the stretch. Start from DefaultParams;
// a zero StretchAffectedDistance produces Inf/NaN uniforms.
type Params struct {
	StretchAffectedDistance float64
	InterpolationStrength   float64
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		StretchAffectedDistance: DefaultStretchAffectedDistance,
		InterpolationStrength:   DefaultInterpolationStrength,
	}
}

// AxisUniforms is the per-axis parameter set consumed by WarpAxis.
type AxisUniforms struct {
	// StretchAffectedDist is the affected fraction of the axis.
	StretchAffectedDist float64
	// DistanceStretched is where the affected region compresses to:
	// StretchAffectedDist / (1 + |Overscroll|).
	DistanceStretched float64
	// InverseDistanceStretched is 1 / StretchAffectedDist. Despite the name
	// it is the reciprocal of the constant, not of DistanceStretched.
	InverseDistanceStretched float64
	// DistDiff is DistanceStretched - StretchAffectedDist, the translation
	// applied outside the affected region.
	DistDiff float64
	// Scroll is the content offset along the axis divided by the viewport size.
	Scroll float64
	// Overscroll is the signed normalized overscroll along the axis.
	Overscroll float64
}

// Uniforms is the full parameter set bound into one shader instance.
type Uniforms struct {
	X, Y AxisUniforms

	ViewportWidth  float64
	ViewportHeight float64

	InterpolationStrength float64

	// MaxStretchIntensity is declared by the program but never read; it is
	// always bound as zero.
	MaxStretchIntensity float64
}

// Derive computes the uniforms for e using DefaultParams.
func Derive(e Effect) Uniforms {
	return DefaultParams().Derive(e)
}

// Derive computes the uniforms for e. It is pure and deterministic; invalid
// dimensions propagate as Inf/NaN.
func (p Params) Derive(e Effect) Uniforms {
	return Uniforms{
		X:                     deriveAxis(p.StretchAffectedDistance, e.Vector.X, e.ContentBounds.Left(), e.Width),
		Y:                     deriveAxis(p.StretchAffectedDistance, e.Vector.Y, e.ContentBounds.Top(), e.Height),
		ViewportWidth:         e.Width,
		ViewportHeight:        e.Height,
		InterpolationStrength: p.InterpolationStrength,
	}
}

func deriveAxis(affected, overscroll, origin, size float64) AxisUniforms {
	stretched := affected / (1 + math.Abs(overscroll))
	return AxisUniforms{
		StretchAffectedDist:      affected,
		DistanceStretched:        stretched,
		InverseDistanceStretched: 1 / affected,
		DistDiff:                 stretched - affected,
		Scroll:                   origin / size,
		Overscroll:               overscroll,
	}
}
