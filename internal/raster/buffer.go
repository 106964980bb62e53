// Package raster fills geometric primitives into an in-memory RGBA pixel
// buffer. Fills are hard-edged: a pixel is either fully covered or untouched,
// later draws overwrite earlier ones, and anything outside the buffer is
// clipped without error.
package raster

import (
	"image"
	"image/color"
)

// Transparent is the colour a fresh buffer starts with.
var Transparent = color.RGBA{}

// Buffer is a mutable width × height grid of RGBA pixels.
type Buffer struct {
	img *image.RGBA
}

// New allocates a fully transparent buffer.
// Negative dimensions are treated as zero.
func New(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.img.Rect.Dx()
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.img.Rect.Dy()
}

// Clear resets every pixel to transparent.
func (b *Buffer) Clear() {
	clear(b.img.Pix)
}

// At returns the pixel at (x, y), or Transparent outside the buffer.
func (b *Buffer) At(x, y int) color.RGBA {
	if !b.inside(x, y) {
		return Transparent
	}
	return b.img.RGBAAt(x, y)
}

// Set writes a single pixel; out-of-bounds writes are dropped.
func (b *Buffer) Set(x, y int, c color.RGBA) {
	if !b.inside(x, y) {
		return
	}
	b.img.SetRGBA(x, y, c)
}

// Image returns the backing image. Callers that hand the image to a
// renderer must stop drawing into the buffer afterwards.
func (b *Buffer) Image() *image.RGBA {
	return b.img
}

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.img.Rect.Dx() && y < b.img.Rect.Dy()
}
