package overscroll

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// TexturePool manages reusable offscreen images keyed by exact size. Shader
// draws cover the whole destination, so images are never rounded up. After
// warmup, Acquire/Release do not allocate. The zero value is ready to use.
type TexturePool struct {
	mu      sync.Mutex
	buckets map[uint64][]*ebiten.Image
}

// poolKey packs width and height into a single uint64.
func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// Acquire returns a cleared offscreen image of exactly (w, h) pixels.
func (p *TexturePool) Acquire(w, h int) *ebiten.Image {
	key := poolKey(w, h)

	p.mu.Lock()
	if stack := p.buckets[key]; len(stack) > 0 {
		img := stack[len(stack)-1]
		p.buckets[key] = stack[:len(stack)-1]
		p.mu.Unlock()
		img.Clear()
		return img
	}
	p.mu.Unlock()

	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, w, h),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// Release returns an image to the pool for reuse. The image is cleared on
// next Acquire, not here.
func (p *TexturePool) Release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	p.buckets[key] = append(p.buckets[key], img)
}

// Len returns the number of idle images held by the pool.
func (p *TexturePool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, stack := range p.buckets {
		n += len(stack)
	}
	return n
}

// Dispose deallocates every idle image.
func (p *TexturePool) Dispose() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for key, stack := range p.buckets {
		for _, img := range stack {
			img.Deallocate()
		}
		delete(p.buckets, key)
	}
}
