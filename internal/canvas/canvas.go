// Package canvas composites runner frames onto an RGBA image in software.
// The terminal backend, the snapshot command and tests draw through it;
// the window backend submits the same commands to the GPU instead.
package canvas

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/pixel-runner/internal/core"
	"github.com/vovakirdan/pixel-runner/internal/runner"
	"github.com/vovakirdan/pixel-runner/internal/sprite"
)

// Canvas is a reusable render target.
type Canvas struct {
	img   *image.RGBA
	atlas *sprite.Atlas
}

// New creates a canvas of the given size that resolves sprite keys
// through atlas.
func New(w, h int, atlas *sprite.Atlas) *Canvas {
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))),
		atlas: atlas,
	}
}

// Image returns the composited pixels. The image is reused by Draw.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Draw clears the canvas to the frame background and applies every
// command in order. The canvas is resized when the frame size changed.
func (c *Canvas) Draw(f *runner.Frame) {
	if b := c.img.Bounds(); b.Dx() != f.Width || b.Dy() != f.Height {
		c.img = image.NewRGBA(image.Rect(0, 0, max(f.Width, 0), max(f.Height, 0)))
	}

	xdraw.Draw(c.img, c.img.Bounds(), image.NewUniform(core.Premultiply(f.Background)), image.Point{}, xdraw.Src)

	for i := range f.Commands {
		c.apply(&f.Commands[i])
	}
}

func (c *Canvas) apply(cmd *runner.Command) {
	r := toImageRect(cmd.Rect)
	switch cmd.Kind {
	case runner.CmdFill:
		c.fill(r, cmd.Color)
	case runner.CmdBlit:
		c.blit(r, cmd.Sprite)
	}
}

// fill blends col over r. Fully opaque colours overwrite.
func (c *Canvas) fill(r image.Rectangle, col color.RGBA) {
	op := xdraw.Over
	if col.A == 0xff {
		op = xdraw.Src
	}
	xdraw.Draw(c.img, r, image.NewUniform(core.Premultiply(col)), image.Point{}, op)
}

// blit draws the sprite over r, stretching it when r differs from the
// sprite's own size.
func (c *Canvas) blit(r image.Rectangle, k sprite.Key) {
	if c.atlas == nil {
		return
	}
	src := c.atlas.Get(k)
	if src.Bounds().Size() == r.Size() {
		xdraw.Draw(c.img, r, src, src.Bounds().Min, xdraw.Over)
		return
	}
	xdraw.NearestNeighbor.Scale(c.img, r, src, src.Bounds(), xdraw.Over, nil)
}

func toImageRect(r core.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

// Scaled returns src resized to w×h. Smooth scaling averages neighbouring
// pixels and suits downscaling; otherwise pixels are repeated, which keeps
// sprite edges hard when enlarging.
func Scaled(src image.Image, w, h int, smooth bool) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	var s xdraw.Scaler = xdraw.NearestNeighbor
	if smooth {
		s = xdraw.ApproxBiLinear
	}
	s.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
