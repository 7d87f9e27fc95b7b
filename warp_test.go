package overscroll

import (
	"math"
	"testing"
)

func TestWarpAxisIdentityWithoutOverscroll(t *testing.T) {
	for _, p := range []Params{DefaultParams(), scenarioParams, {StretchAffectedDistance: 0.2}} {
		u := p.Derive(Effect{Width: 320, Height: 480})
		for i := 0; i <= 100; i++ {
			in := float64(i) / 100
			if got := WarpAxis(in, u.X, u.InterpolationStrength); got != in {
				t.Fatalf("X: WarpAxis(%v) = %v, want exact identity", in, got)
			}
			if got := WarpAxis(in, u.Y, u.InterpolationStrength); got != in {
				t.Fatalf("Y: WarpAxis(%v) = %v, want exact identity", in, got)
			}
		}
	}
}

func TestWarpAxisGolden(t *testing.T) {
	u := scenarioParams.Derive(scenarioEffect)
	// offset 0.4, variation mix(1, 0.8, 0.7) = 0.86, intensity 0.258.
	got := WarpAxis(0.1, u.X, u.InterpolationStrength)
	assertNear(t, "WarpAxis(0.1)", got, 0.06665036076800779)
	assertNear(t, "WarpAxis(0.1) by formula", got, 0.5/1.3-0.4/1.258)
}

func TestWarpAxisSeamAtAffectedDistance(t *testing.T) {
	u := scenarioParams.Derive(scenarioEffect)
	a := u.X.StretchAffectedDist
	compressed := WarpAxis(a, u.X, u.InterpolationStrength)
	translated := WarpAxis(math.Nextafter(a, 1), u.X, u.InterpolationStrength)
	// Both branches land on DistanceStretched at the affected distance.
	assertNear(t, "compressed at a", compressed, u.X.DistanceStretched)
	assertNear(t, "translated just past a", translated, u.X.DistanceStretched)
}

func TestWarpAxisBoundaryBaselineAtDistanceStretched(t *testing.T) {
	u := scenarioParams.Derive(scenarioEffect)
	ds := u.X.DistanceStretched
	// DistanceStretched <= a, so the compression branch owns this point.
	compressed := WarpAxis(ds, u.X, u.InterpolationStrength)
	translated := u.X.DistDiff + ds
	assertNear(t, "compressed at ds", compressed, 0.2832640332640332)
	assertNear(t, "translation formula at ds", translated, 0.26923076923076916)
	assertNear(t, "gap", compressed-translated, 0.014033264033264048)
}

func TestWarpAxisMonotonicInCompression(t *testing.T) {
	for _, o := range []float64{0.05, 0.3, 0.7, 1} {
		for _, p := range []Params{DefaultParams(), scenarioParams} {
			u := p.Derive(Effect{Width: 100, Height: 100, Vector: Vec2{X: o, Y: -o}})
			a := u.X.StretchAffectedDist

			prev := math.Inf(-1)
			for i := 0; i <= 200; i++ {
				in := a * float64(i) / 200
				got := WarpAxis(in, u.X, u.InterpolationStrength)
				if got <= prev {
					t.Fatalf("o=%v a=%v: start region not increasing at %v (%v <= %v)", o, a, in, got, prev)
				}
				prev = got
			}

			prev = math.Inf(-1)
			for i := 0; i <= 200; i++ {
				in := 1 - a + a*float64(i)/200
				got := WarpAxis(in, u.Y, u.InterpolationStrength)
				if got <= prev {
					t.Fatalf("o=%v a=%v: end region not increasing at %v (%v <= %v)", o, a, in, got, prev)
				}
				prev = got
			}
		}
	}
}

func TestWarpAxisMirrorSymmetry(t *testing.T) {
	for _, o := range []float64{0.1, 0.3, 0.8} {
		for _, p := range []Params{DefaultParams(), scenarioParams} {
			pos := p.Derive(Effect{Width: 100, Height: 100, Vector: Vec2{X: o}})
			neg := p.Derive(Effect{Width: 100, Height: 100, Vector: Vec2{X: -o}})
			for i := 0; i <= 50; i++ {
				in := float64(i) / 50
				outPos := WarpAxis(in, pos.X, pos.InterpolationStrength)
				outNeg := WarpAxis(1-in, neg.X, neg.InterpolationStrength)
				if math.Abs(outNeg-(1-outPos)) > 1e-12 {
					t.Errorf("o=%v in=%v: negative %v, want %v", o, in, outNeg, 1-outPos)
				}
			}
		}
	}
}

func TestWarpAxisPinsLeadingEdgeAtFullAffectedDistance(t *testing.T) {
	u := Derive(Effect{Width: 100, Height: 100, Vector: Vec2{X: 0.3}})
	// With a = 1 the leading edge maps onto itself for any pull.
	assertNear(t, "WarpAxis(0)", WarpAxis(0, u.X, u.InterpolationStrength), 0)
	assertNear(t, "WarpAxis(1)", WarpAxis(1, u.X, u.InterpolationStrength), u.X.DistanceStretched)
}

func TestWarpPixelSpace(t *testing.T) {
	u := scenarioParams.Derive(scenarioEffect)
	// inU = 50/1000 + 0.05 = 0.1 lands on the golden value.
	x, y := Warp(u, 50, 700)
	assertNear(t, "x", x, (0.06665036076800779-0.05)*1000)
	assertNear(t, "y", y, 700)
}

func TestWarpIdentityWithoutOverscroll(t *testing.T) {
	u := Derive(Effect{Width: 640, Height: 480, ContentBounds: Rect{X: 32, Y: 16}})
	x, y := Warp(u, 123, 456)
	assertNear(t, "x", x, 123)
	assertNear(t, "y", y, 456)
}
