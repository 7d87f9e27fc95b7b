package overscroll

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestStretchFilterPadding(t *testing.T) {
	f := NewStretchFilter(NewShaderFactory(DefaultParams()))
	if f.Padding() != 0 {
		t.Errorf("StretchFilter Padding() = %d, want 0", f.Padding())
	}
}

func TestStretchFilterWithoutEffectCopies(t *testing.T) {
	sf, calls := stubShaderFactory(DefaultParams(), nil)
	f := NewStretchFilter(sf)
	src := ebiten.NewImage(8, 8)
	dst := ebiten.NewImage(8, 8)

	f.Apply(src, dst)

	if *calls != 0 {
		t.Errorf("compile called %d times, want 0", *calls)
	}
	if st := sf.Stats(); st.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", st.Skipped)
	}
}

func TestApplyFiltersEmptyReturnsSource(t *testing.T) {
	var pool TexturePool
	src := ebiten.NewImage(4, 4)
	if got := ApplyFilters(nil, src, &pool); got != src {
		t.Error("empty chain should return src")
	}
	if pool.Len() != 0 {
		t.Errorf("pool.Len() = %d, want 0", pool.Len())
	}
}

func TestApplyFiltersPingPong(t *testing.T) {
	var pool TexturePool
	sf, _ := stubShaderFactory(DefaultParams(), nil)
	src := ebiten.NewImage(16, 8)
	chain := []Filter{NewStretchFilter(sf), NewStretchFilter(sf), NewStretchFilter(sf)}

	out := ApplyFilters(chain, src, &pool)

	if out == src {
		t.Fatal("a non-empty chain should return a scratch image")
	}
	if b := out.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("result size = %dx%d, want 16x8", b.Dx(), b.Dy())
	}
	if pool.Len() != 1 {
		t.Errorf("pool.Len() = %d, want 1 idle scratch", pool.Len())
	}
}

func TestTexturePoolReusesExactSize(t *testing.T) {
	var pool TexturePool
	a := pool.Acquire(30, 20)
	pool.Release(a)
	if b := pool.Acquire(30, 20); b != a {
		t.Error("Acquire should reuse a released image of the same size")
	}
	c := pool.Acquire(31, 20)
	if b := c.Bounds(); b.Dx() != 31 || b.Dy() != 20 {
		t.Errorf("Acquire(31, 20) size = %dx%d", b.Dx(), b.Dy())
	}
	pool.Release(nil)
	pool.Release(c)
	pool.Dispose()
	if pool.Len() != 0 {
		t.Errorf("Len() after Dispose = %d, want 0", pool.Len())
	}
}

func TestCanvasEffect(t *testing.T) {
	c := NewCanvas(320, 240)
	defer c.Dispose()
	e := c.Effect(Vec2{Y: 0.2}, 16, 0)
	if e.Width != 320 || e.Height != 240 {
		t.Errorf("size = %vx%v, want 320x240", e.Width, e.Height)
	}
	if !e.HasEffect() {
		t.Error("expected HasEffect")
	}
	u := Derive(e)
	assertNear(t, "ScrollX", u.X.Scroll, 0.05)
}
