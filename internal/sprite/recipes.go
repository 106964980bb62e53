package sprite

import (
	"github.com/vovakirdan/pixel-runner/internal/raster"
)

// recipe is an ordered list of primitive draws laid out for a reference
// size. Building at another size scales every op proportionally.
type recipe struct {
	refW, refH int
	ops        []raster.Op
}

var playerRecipe = recipe{
	refW: 50, refH: 60,
	ops: []raster.Op{
		raster.Rect(10, 5, 30, 10, Red),      // cap
		raster.Ellipse(25, 22, 13, 10, Skin), // face
		raster.Circle(20, 20, 3, Black),      // eyes
		raster.Circle(30, 20, 3, Black),
		raster.Rect(18, 26, 14, 4, Brown), // moustache
		raster.Rect(15, 32, 20, 18, Blue), // shirt
		raster.Rect(15, 50, 8, 10, Red),   // overalls
		raster.Rect(27, 50, 8, 10, Red),
		raster.Rect(12, 50, 12, 8, Denim), // legs
		raster.Rect(26, 50, 12, 8, Denim),
		raster.Ellipse(17, 57, 7, 3, Brown), // shoes
		raster.Ellipse(33, 57, 7, 3, Brown),
	},
}

var turtleRecipe = recipe{
	refW: 40, refH: 35,
	ops: []raster.Op{
		raster.Ellipse(20, 15, 15, 12, Shell),
		raster.Ellipse(20, 15, 12, 10, ShellDark),
		raster.Circle(35, 20, 8, Reptile), // head
		raster.Circle(37, 18, 2, Black),
		raster.Circle(8, 28, 4, Reptile), // feet
		raster.Circle(32, 28, 4, Reptile),
	},
}

var rabbitRecipe = recipe{
	refW: 40, refH: 45,
	ops: []raster.Op{
		raster.Ellipse(20, 30, 10, 10, Fur), // body
		raster.Circle(20, 20, 10, Fur),      // head
		raster.Ellipse(15, 9, 3, 9, Fur),    // ears
		raster.Ellipse(25, 9, 3, 9, Fur),
		raster.Ellipse(15, 9, 2, 6, Pink),
		raster.Ellipse(25, 9, 2, 6, Pink),
		raster.Circle(18, 18, 2, Black),
		raster.Circle(24, 18, 2, Black),
		raster.Circle(21, 22, 2, Nose),
	},
}

var mushroomRecipe = recipe{
	refW: 40, refH: 38,
	ops: []raster.Op{
		raster.Ellipse(20, 12, 18, 10, Red), // cap
		raster.Circle(12, 12, 4, White),     // spots
		raster.Circle(28, 12, 4, White),
		raster.Circle(20, 16, 3, White),
		raster.Rect(14, 22, 12, 14, Stem),
		raster.Circle(18, 10, 2, Black),
		raster.Circle(26, 10, 2, Black),
	},
}

var cloudRecipe = recipe{
	refW: 80, refH: 40,
	ops: []raster.Op{
		raster.Ellipse(15, 25, 15, 12, White),
		raster.Ellipse(40, 20, 17, 15, White),
		raster.Ellipse(60, 25, 15, 12, White),
	},
}

var bushRecipe = recipe{
	refW: 60, refH: 30,
	ops: []raster.Op{
		raster.Ellipse(10, 20, 10, 10, Foliage),
		raster.Ellipse(30, 17, 12, 12, Foliage),
		raster.Ellipse(50, 20, 10, 10, Foliage),
	},
}

// build renders the recipe into a fresh transparent buffer of w × h.
func (r recipe) build(w, h int) *raster.Buffer {
	buf := raster.New(w, h)
	if w == r.refW && h == r.refH {
		buf.Draw(r.ops...)
		return buf
	}
	for _, op := range r.ops {
		r.scale(op, w, h).Apply(buf)
	}
	return buf
}

func (r recipe) scale(op raster.Op, w, h int) raster.Op {
	sx := float64(w) / float64(r.refW)
	sy := float64(h) / float64(r.refH)
	op.X = int(float64(op.X) * sx)
	op.Y = int(float64(op.Y) * sy)
	switch op.Shape {
	case raster.ShapeCircle:
		s := min(sx, sy)
		op.W = int(float64(op.W) * s)
		op.H = op.W
	default:
		op.W = int(float64(op.W) * sx)
		op.H = int(float64(op.H) * sy)
	}
	return op
}
