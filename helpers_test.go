package overscroll

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// scenarioParams and scenarioEffect are the worked example used across the
// warp tests: a 1000x2000 viewport pulled 30% from the left edge.
var scenarioParams = Params{StretchAffectedDistance: 0.5, InterpolationStrength: 0.7}

var scenarioEffect = Effect{
	Width:         1000,
	Height:        2000,
	Vector:        Vec2{X: 0.3},
	ContentBounds: RectLTRB(50, 0, 1050, 2000),
}
