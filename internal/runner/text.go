package runner

import (
	"image/color"
	"unicode/utf8"

	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/pixel-runner/internal/config"
	"github.com/vovakirdan/pixel-runner/internal/core"
)

// blockAlpha is the opacity of the cell drawn in place of a missing glyph.
const blockAlpha = 77

// TextRenderer turns strings into fill commands. Each glyph of the 7x13
// bitmap font becomes one rectangle per horizontal run of set pixels,
// multiplied by an integer scale. Runes the font lacks are drawn as a
// translucent block the size of one cell.
type TextRenderer struct {
	face   *basicfont.Face
	blocks bool
	runs   map[rune][]core.Rect
}

// NewTextRenderer creates a renderer for the named font.
// config.FontBlocks draws every glyph as a plain cell.
func NewTextRenderer(font string) *TextRenderer {
	return &TextRenderer{
		face:   basicfont.Face7x13,
		blocks: font == config.FontBlocks,
		runs:   make(map[rune][]core.Rect),
	}
}

// CellSize returns the unscaled advance and line height.
func (t *TextRenderer) CellSize() (w, h int) {
	return t.face.Advance, t.face.Height
}

// Width returns the pixel width of text at the given scale.
func (t *TextRenderer) Width(text string, scale int) int {
	return utf8.RuneCountInString(text) * t.face.Advance * scale
}

// Draw emits text with its top-left corner at (x, y).
func (t *TextRenderer) Draw(dst *Frame, x, y int, text string, scale int, c color.RGBA) {
	if scale < 1 {
		scale = 1
	}
	adv := t.face.Advance * scale
	for _, r := range text {
		if r != ' ' {
			t.drawGlyph(dst, x, y, r, scale, c)
		}
		x += adv
	}
}

// DrawCentered emits text horizontally centred on cx.
func (t *TextRenderer) DrawCentered(dst *Frame, cx, y int, text string, scale int, c color.RGBA) {
	t.Draw(dst, cx-t.Width(text, scale)/2, y, text, scale, c)
}

func (t *TextRenderer) drawGlyph(dst *Frame, x, y int, r rune, scale int, c color.RGBA) {
	runs, ok := t.glyphRuns(r)
	if !ok {
		dst.Fill(core.NewRect(x, y, t.face.Width*scale, t.face.Height*scale), core.WithAlpha(c, blockAlpha))
		return
	}
	for _, run := range runs {
		dst.Fill(core.NewRect(x+run.X*scale, y+run.Y*scale, run.W*scale, run.H*scale), c)
	}
}

// glyphRuns returns the unscaled runs for r, computing them on first use.
// ok is false when r should be drawn as a block.
func (t *TextRenderer) glyphRuns(r rune) ([]core.Rect, bool) {
	if t.blocks {
		return nil, false
	}
	if runs, ok := t.runs[r]; ok {
		return runs, true
	}
	idx, ok := t.glyphIndex(r)
	if !ok {
		return nil, false
	}

	var runs []core.Rect
	top := idx * t.face.Height
	for row := 0; row < t.face.Height; row++ {
		start := -1
		for col := 0; col <= t.face.Width; col++ {
			set := col < t.face.Width && t.pixelSet(col, top+row)
			switch {
			case set && start < 0:
				start = col
			case !set && start >= 0:
				runs = append(runs, core.NewRect(start, row, col-start, 1))
				start = -1
			}
		}
	}
	t.runs[r] = runs
	return runs, true
}

// glyphIndex locates r in the font mask.
func (t *TextRenderer) glyphIndex(r rune) (int, bool) {
	for _, rr := range t.face.Ranges {
		if r >= rr.Low && r < rr.High {
			return int(r-rr.Low) + rr.Offset, true
		}
	}
	return 0, false
}

func (t *TextRenderer) pixelSet(x, y int) bool {
	_, _, _, a := t.face.Mask.At(x, y).RGBA()
	return a > 0
}
