package overscroll

import "math"

// Effect describes one frame of the stretch effect. It is a plain value:
// callers build a fresh one every frame from their scroll state and hand it
// to a factory.
type Effect struct {
	// Width and Height are the viewport size in pixels. Both must be positive;
	// a zero dimension yields Inf/NaN uniforms rather than an error.
	Width, Height float64

	// Vector is the normalized overscroll, each component nominally in
	// [-1, 1]. Positive values pull from the leading (left/top) edge,
	// negative values from the trailing (right/bottom) edge.
	Vector Vec2

	// ContentBounds is the mapped child content rectangle in pixels. Its
	// left/top edges carry the current scroll offset.
	ContentBounds Rect
}

// HasEffect reports whether the effect distorts anything. When it returns
// false every builder returns nil and no program is compiled or bound.
func (e Effect) HasEffect() bool {
	return e.Vector.X != 0 || e.Vector.Y != 0
}

// Valid reports whether the effect has positive dimensions and only finite
// values. Nothing in this package calls it; it exists for callers that want
// to reject degenerate descriptors before deriving uniforms.
func (e Effect) Valid() bool {
	if !(e.Width > 0) || !(e.Height > 0) {
		return false
	}
	for _, v := range [...]float64{
		e.Width, e.Height, e.Vector.X, e.Vector.Y,
		e.ContentBounds.X, e.ContentBounds.Y, e.ContentBounds.Width, e.ContentBounds.Height,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
