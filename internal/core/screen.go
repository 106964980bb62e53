package core

import (
	"image"
	"image/color"
)

// HalfBlock is the glyph used to show two vertically stacked pixels in one
// terminal cell: the foreground paints the top half, the background the bottom.
const HalfBlock = '▀'

// Cell is one terminal character with its colours.
type Cell struct {
	Rune rune
	FG   color.RGBA
	BG   color.RGBA
}

// Screen is a 2D cell buffer that terminal backends print.
// It decouples pixel frames from the terminal: a frame is sampled into
// cells, and the platform handles the actual escape sequences.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.cells = make([]Cell, s.width*s.height)
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded because every
// frame repaints the whole buffer.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = Max(width, 0)
	s.height = Max(height, 0)
	s.cells = make([]Cell, s.width*s.height)
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: ' '}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = c
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y*s.width+x]
}

// DrawText writes a string horizontally starting at (x, y), keeping the
// background colour already present in each cell.
func (s *Screen) DrawText(x, y int, text string, fg color.RGBA) {
	i := 0
	for _, r := range text {
		c := s.Get(x+i, y)
		s.Set(x+i, y, Cell{Rune: r, FG: fg, BG: c.BG})
		i++
	}
}

// FromImage samples an image whose height is twice the screen height into
// half-block cells. Rows beyond the image are left blank.
func (s *Screen) FromImage(img image.Image) {
	b := img.Bounds()
	for y := 0; y < s.height; y++ {
		top := b.Min.Y + 2*y
		bottom := top + 1
		for x := 0; x < s.width; x++ {
			px := b.Min.X + x
			if px >= b.Max.X || top >= b.Max.Y {
				s.Set(x, y, Cell{Rune: ' '})
				continue
			}
			c := Cell{Rune: HalfBlock, FG: toRGBA(img.At(px, top))}
			if bottom < b.Max.Y {
				c.BG = toRGBA(img.At(px, bottom))
			}
			s.Set(x, y, c)
		}
	}
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
