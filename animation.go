package overscroll

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// VectorTween eases an overscroll vector between two values, typically from
// the current pull back to zero once the user lets go. Call Update(dt) each
// frame and feed Value into the frame's Effect.
//
// There is no global animation manager; callers drive Update themselves.
type VectorTween struct {
	x, y  *gween.Tween
	to    Vec2
	Value Vec2
	Done  bool
}

// TweenVector creates a tween from one vector to another over duration
// seconds using fn.
func TweenVector(from, to Vec2, duration float32, fn ease.TweenFunc) *VectorTween {
	return &VectorTween{
		x:     gween.New(float32(from.X), float32(to.X), duration, fn),
		y:     gween.New(float32(from.Y), float32(to.Y), duration, fn),
		to:    to,
		Value: from,
	}
}

// Release creates a tween that relaxes from back to no overscroll.
func Release(from Vec2, duration float32, fn ease.TweenFunc) *VectorTween {
	return TweenVector(from, Vec2{}, duration, fn)
}

// Update advances the tween by dt seconds and returns the new value. Once
// both axes finish, Value holds the target exactly and Done is set.
func (t *VectorTween) Update(dt float32) Vec2 {
	if t.Done {
		return t.Value
	}
	x, xDone := t.x.Update(dt)
	y, yDone := t.y.Update(dt)
	t.Value = Vec2{X: float64(x), Y: float64(y)}
	t.Done = xDone && yDone
	if t.Done {
		t.Value = t.to
	}
	return t.Value
}
