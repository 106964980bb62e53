package canvas

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/pixel-runner/internal/config"
	"github.com/vovakirdan/pixel-runner/internal/core"
	"github.com/vovakirdan/pixel-runner/internal/runner"
	"github.com/vovakirdan/pixel-runner/internal/sprite"
)

var white = color.RGBA{255, 255, 255, 255}

func newFrame(w, h int) *runner.Frame {
	f := &runner.Frame{}
	f.Reset(w, h, white)
	return f
}

func TestBackgroundAndOpaqueFill(t *testing.T) {
	c := New(10, 10, nil)
	f := newFrame(10, 10)
	f.Fill(core.NewRect(2, 2, 3, 3), color.RGBA{255, 0, 0, 255})
	c.Draw(f)

	img := c.Image()
	if got := img.RGBAAt(0, 0); got != white {
		t.Errorf("background = %v, want white", got)
	}
	if got := img.RGBAAt(3, 3); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("fill = %v, want red", got)
	}
	if got := img.RGBAAt(5, 5); got != white {
		t.Errorf("outside fill = %v, want white", got)
	}
}

func TestAlphaFillBlends(t *testing.T) {
	c := New(4, 4, nil)
	f := newFrame(4, 4)
	f.Fill(core.NewRect(0, 0, 4, 4), core.WithAlpha(color.RGBA{0, 0, 0, 255}, 200))
	c.Draw(f)

	got := c.Image().RGBAAt(1, 1)
	// 255 * (255-200)/255 = 55, allow rounding.
	if got.R < 53 || got.R > 57 || got.R != got.G || got.A != 255 {
		t.Errorf("blended = %v, want about (55,55,55,255)", got)
	}
}

func TestFillClipped(t *testing.T) {
	c := New(5, 5, nil)
	f := newFrame(5, 5)
	f.Fill(core.NewRect(-3, -3, 20, 4), color.RGBA{0, 0, 255, 255})
	c.Draw(f)

	if got := c.Image().RGBAAt(4, 0); got.B != 255 || got.R != 0 {
		t.Errorf("(4,0) = %v, want blue", got)
	}
	if got := c.Image().RGBAAt(0, 1); got != white {
		t.Errorf("(0,1) = %v, want white", got)
	}
}

func TestBlitKeepsTransparentPixels(t *testing.T) {
	cfg := config.Default()
	atlas := sprite.NewAtlas(nil)
	c := New(cfg.Screen.Width, cfg.Screen.Height, atlas)

	size := atlas.Size(sprite.KeyCloud)
	f := newFrame(cfg.Screen.Width, cfg.Screen.Height)
	f.Blit(sprite.KeyCloud, 100, 100, size.W, size.H)
	c.Draw(f)

	src := atlas.Get(sprite.KeyCloud)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			s := src.RGBAAt(x, y)
			d := c.Image().RGBAAt(100+x, 100+y)
			if s.A == 0 && d != white {
				t.Fatalf("transparent pixel (%d,%d) changed background to %v", x, y, d)
			}
			if s.A == 255 && d != s {
				t.Fatalf("opaque pixel (%d,%d) = %v, want %v", x, y, d, s)
			}
		}
	}
}

func TestDrawResizes(t *testing.T) {
	c := New(1, 1, nil)
	c.Draw(newFrame(8, 6))
	if b := c.Image().Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("bounds = %v, want 8x6", b)
	}
}

func TestScaled(t *testing.T) {
	src := sprite.NewAtlas(nil).Get(sprite.KeyPlayer)
	big := Scaled(src, src.Bounds().Dx()*4, src.Bounds().Dy()*4, false)
	if big.Bounds().Dx() != 200 || big.Bounds().Dy() != 240 {
		t.Fatalf("bounds = %v", big.Bounds())
	}
	for _, p := range [][2]int{{10, 5}, {25, 30}, {40, 55}} {
		want := src.RGBAAt(p[0], p[1])
		if got := big.RGBAAt(p[0]*4+1, p[1]*4+2); got != want {
			t.Errorf("pixel %v = %v, want %v", p, got, want)
		}
	}

	small := Scaled(src, 10, 12, true)
	if small.Bounds().Dx() != 10 || small.Bounds().Dy() != 12 {
		t.Errorf("bounds = %v", small.Bounds())
	}
}

func TestRenderedGame(t *testing.T) {
	g := runner.New(config.Default())
	g.Reset(core.RuntimeConfig{ScreenW: 1000, ScreenH: 600, TickRate: 60, Seed: 3})

	var f runner.Frame
	g.Render(&f)

	c := New(0, 0, g.Atlas())
	c.Draw(&f)

	if got := c.Image().RGBAAt(500, 590); got != runner.Grass {
		t.Errorf("grass pixel = %v, want %v", got, runner.Grass)
	}
	if got := c.Image().RGBAAt(990, 5); got != runner.SkyBlue {
		t.Errorf("sky pixel = %v, want %v", got, runner.SkyBlue)
	}
}
