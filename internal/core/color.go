package core

import (
	"fmt"
	"image/color"
)

// Hex formats a colour as "#rrggbb", ignoring alpha.
// Terminal styling libraries take colours in this form.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha returns c with its alpha channel replaced.
// The colour channels are left straight (not premultiplied).
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// Premultiply converts a straight-alpha colour into the premultiplied form
// used by image.RGBA and the image/draw package.
func Premultiply(c color.RGBA) color.RGBA {
	if c.A == 0xff {
		return c
	}
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 0xff),
		G: uint8(uint16(c.G) * a / 0xff),
		B: uint8(uint16(c.B) * a / 0xff),
		A: c.A,
	}
}
