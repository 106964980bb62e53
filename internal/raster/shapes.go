package raster

import "image/color"

// FillRect fills the w × h rectangle whose top-left corner is (x, y).
func (b *Buffer) FillRect(x, y, w, h int, c color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, b.Width()), min(y+h, b.Height())
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			b.img.SetRGBA(px, py, c)
		}
	}
}

// FillCircle fills every pixel (cx+dx, cy+dy) with dx²+dy² ≤ r².
func (b *Buffer) FillCircle(cx, cy, r int, c color.RGBA) {
	if r < 0 {
		return
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rr {
				b.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

// FillEllipse fills every pixel (cx+dx, cy+dy) with
// dx²·ry² + dy²·rx² ≤ rx²·ry².
func (b *Buffer) FillEllipse(cx, cy, rx, ry int, c color.RGBA) {
	if rx < 0 || ry < 0 {
		return
	}
	rx2, ry2 := rx*rx, ry*ry
	limit := rx2 * ry2
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if dx*dx*ry2+dy*dy*rx2 <= limit {
				b.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

// Shape selects which primitive an Op draws.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
	ShapeEllipse
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	case ShapeEllipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// Op is one primitive draw. For rectangles X, Y is the top-left corner and
// W, H the extent; for circles X, Y is the centre and W the radius; for
// ellipses X, Y is the centre and W, H the radii.
type Op struct {
	Shape Shape
	X, Y  int
	W, H  int
	Color color.RGBA
}

// Rect describes a rectangle fill.
func Rect(x, y, w, h int, c color.RGBA) Op {
	return Op{Shape: ShapeRect, X: x, Y: y, W: w, H: h, Color: c}
}

// Circle describes a circle fill.
func Circle(cx, cy, r int, c color.RGBA) Op {
	return Op{Shape: ShapeCircle, X: cx, Y: cy, W: r, H: r, Color: c}
}

// Ellipse describes an ellipse fill.
func Ellipse(cx, cy, rx, ry int, c color.RGBA) Op {
	return Op{Shape: ShapeEllipse, X: cx, Y: cy, W: rx, H: ry, Color: c}
}

// Apply draws the op into the buffer.
func (op Op) Apply(b *Buffer) {
	switch op.Shape {
	case ShapeRect:
		b.FillRect(op.X, op.Y, op.W, op.H, op.Color)
	case ShapeCircle:
		b.FillCircle(op.X, op.Y, op.W, op.Color)
	case ShapeEllipse:
		b.FillEllipse(op.X, op.Y, op.W, op.H, op.Color)
	}
}

// Draw applies ops in order, so later ops paint over earlier ones.
func (b *Buffer) Draw(ops ...Op) {
	for _, op := range ops {
		op.Apply(b)
	}
}
