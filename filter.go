package overscroll

import "github.com/hajimehoshi/ebiten/v2"

// Filter is the interface for visual effects that render src into dst.
type Filter interface {
	// Apply renders src into dst with the filter effect.
	Apply(src, dst *ebiten.Image)
	// Padding returns the extra pixels needed around the source to
	// accommodate the effect. Zero means no padding.
	Padding() int
}

// StretchFilter applies the overscroll stretch to whatever it is given.
// Update Effect every frame; when it has no effect the filter is a plain copy.
type StretchFilter struct {
	Effect  Effect
	factory *ShaderFactory
	imgOp   ebiten.DrawImageOptions
	op      ebiten.DrawRectShaderOptions
}

// NewStretchFilter creates a stretch filter drawing through f.
func NewStretchFilter(f *ShaderFactory) *StretchFilter {
	return &StretchFilter{factory: f}
}

// Apply draws src into dst, stretched according to Effect.
func (f *StretchFilter) Apply(src, dst *ebiten.Image) {
	s := f.factory.CreateShader(src, f.Effect)
	if s == nil {
		f.imgOp.GeoM.Reset()
		f.imgOp.ColorScale.Reset()
		dst.DrawImage(src, &f.imgOp)
		return
	}
	s.DrawWithOptions(dst, &f.op)
}

// Padding returns 0; the stretch samples inside the source bounds only.
func (f *StretchFilter) Padding() int { return 0 }

// ApplyFilters runs a filter chain on src, ping-ponging between two scratch
// images of src's size. It returns the image holding the result, which is src
// itself when filters is empty. When the result is not src it came from pool
// and the caller releases it once done with it.
func ApplyFilters(filters []Filter, src *ebiten.Image, pool *TexturePool) *ebiten.Image {
	if len(filters) == 0 {
		return src
	}
	b := src.Bounds()
	current := src
	var scratch *ebiten.Image
	for _, f := range filters {
		if scratch == nil || scratch == src {
			scratch = pool.Acquire(b.Dx(), b.Dy())
		} else {
			scratch.Clear()
		}
		f.Apply(current, scratch)
		current, scratch = scratch, current
	}
	if scratch != nil && scratch != src {
		pool.Release(scratch)
	}
	return current
}
