package overscroll

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is a persistent offscreen surface holding the unstretched content
// of a scrollable view. Draw the visible content into it each frame, then
// stretch it onto the screen with a Shader or StretchFilter.
type Canvas struct {
	image *ebiten.Image
	w, h  int
}

// NewCanvas creates a canvas of the given size in pixels.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.w
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.h
}

// Clear fills the canvas with transparent black.
func (c *Canvas) Clear() {
	c.image.Clear()
}

// Fill fills the entire canvas with clr.
func (c *Canvas) Fill(clr color.Color) {
	c.image.Fill(clr)
}

// DrawImageAt draws src with its top-left corner at (x, y).
func (c *Canvas) DrawImageAt(src *ebiten.Image, x, y float64) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	c.image.DrawImage(src, &op)
}

// Effect returns an Effect sized to the canvas with the given overscroll
// vector and content scroll offset in pixels.
func (c *Canvas) Effect(vector Vec2, scrollX, scrollY float64) Effect {
	return Effect{
		Width:         float64(c.w),
		Height:        float64(c.h),
		Vector:        vector,
		ContentBounds: Rect{X: scrollX, Y: scrollY, Width: float64(c.w), Height: float64(c.h)},
	}
}

// Dispose releases the canvas's GPU memory. The canvas must not be used
// afterwards.
func (c *Canvas) Dispose() {
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
}
