package overscroll

// mix is GLSL's linear blend: x*(1-a) + y*a.
func mix(x, y, a float64) float64 {
	return x*(1-a) + y*a
}

// easeIn scales the offset into the affected band.
func easeIn(t, d float64) float64 {
	return t * d
}

// WarpAxis maps a normalized coordinate along one axis to the coordinate the
// content is sampled at. It is the CPU twin of computeOverscroll in the shader
// programs and produces the same values for the same uniforms.
//
// Zero overscroll is the identity. Positive overscroll compresses
// [0, StretchAffectedDist] toward DistanceStretched and shifts everything
// past DistanceStretched by DistDiff; negative overscroll mirrors this at the
// far edge.
func WarpAxis(inPos float64, u AxisUniforms, interpolationStrength float64) float64 {
	outPos := inPos
	if u.Overscroll > 0 {
		if inPos <= u.StretchAffectedDist {
			offset := u.StretchAffectedDist - inPos
			variation := mix(1, easeIn(offset, u.InverseDistanceStretched), interpolationStrength)
			intensity := u.Overscroll * variation
			outPos = u.DistanceStretched - offset/(1+intensity)
		} else if inPos >= u.DistanceStretched {
			outPos = u.DistDiff + inPos
		}
	}
	if u.Overscroll < 0 {
		farEdge := 1 - u.StretchAffectedDist
		if inPos >= farEdge {
			offset := inPos - farEdge
			variation := mix(1, easeIn(offset, u.InverseDistanceStretched), interpolationStrength)
			intensity := -u.Overscroll * variation
			outPos = 1 - (u.DistanceStretched - offset/(1+intensity))
		} else {
			outPos = inPos - u.DistDiff
		}
	}
	return outPos
}

// Warp maps a pixel coordinate in the viewport to the pixel coordinate of the
// content that the stretched output shows there. It mirrors the program entry
// point and can be used to hit-test stretched content.
func Warp(u Uniforms, x, y float64) (float64, float64) {
	inU := x/u.ViewportWidth + u.X.Scroll
	inV := y/u.ViewportHeight + u.Y.Scroll
	outU := WarpAxis(inU, u.X, u.InterpolationStrength)
	outV := WarpAxis(inV, u.Y, u.InterpolationStrength)
	return (outU - u.X.Scroll) * u.ViewportWidth, (outV - u.Y.Scroll) * u.ViewportHeight
}
