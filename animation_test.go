package overscroll

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestReleaseReachesZero(t *testing.T) {
	tw := Release(Vec2{X: 0.4, Y: -0.2}, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	mid := tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done halfway")
	}
	if mid.X < 0.19 || mid.X > 0.21 {
		t.Errorf("midpoint X = %v, want ~0.2", mid.X)
	}
	tw.Update(0.5)

	if !tw.Done {
		t.Fatal("expected Done after full duration")
	}
	if !tw.Value.IsZero() {
		t.Errorf("Value = %+v, want zero", tw.Value)
	}
}

func TestTweenVectorHoldsTargetAfterDone(t *testing.T) {
	to := Vec2{X: 0.3, Y: 0.1}
	tw := TweenVector(Vec2{}, to, 0.25, ease.OutElastic)
	tw.Update(0.25)
	if !tw.Done {
		t.Fatal("expected Done")
	}
	if got := tw.Update(1); got != to {
		t.Errorf("Update after Done = %+v, want %+v", got, to)
	}
}

func TestReleaseDrivesEffectToNoop(t *testing.T) {
	f, calls := stubShaderFactory(DefaultParams(), nil)
	tw := Release(Vec2{Y: 0.5}, 0.2, ease.OutCubic)
	for !tw.Done {
		tw.Update(0.05)
	}
	e := Effect{Width: 100, Height: 100, Vector: tw.Value}
	if f.CreateShader(nil, e) != nil {
		t.Error("released effect should be a no-op")
	}
	if *calls != 0 {
		t.Errorf("compile called %d times, want 0", *calls)
	}
}
