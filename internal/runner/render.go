package runner

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/pixel-runner/internal/core"
	"github.com/vovakirdan/pixel-runner/internal/sprite"
)

// Scene colours not already in the sprite palette.
var (
	Yellow      = color.RGBA{255, 255, 0, 255}
	SkyBlue     = color.RGBA{135, 206, 235, 255}
	Grass       = color.RGBA{34, 139, 34, 255}
	GroundDark  = color.RGBA{30, 120, 30, 255}
	OverlayTint = core.WithAlpha(sprite.Black, 200)
)

// Text scales for the HUD and end screens.
const (
	scaleTitle = 5
	scaleBody  = 3
	scaleHint  = 2
)

// stripeHeight is the height of the scrolling ground texture marks.
const stripeHeight = 5

// CommandKind selects how a Command is drawn.
type CommandKind int

const (
	// CmdFill fills Rect with Color, blending by its alpha.
	CmdFill CommandKind = iota
	// CmdBlit draws the shared sprite image at Rect's origin.
	CmdBlit
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdFill:
		return "fill"
	case CmdBlit:
		return "blit"
	default:
		return "unknown"
	}
}

// Command is one draw instruction. Colours carry straight alpha.
type Command struct {
	Kind   CommandKind
	Rect   core.Rect
	Color  color.RGBA
	Sprite sprite.Key
}

// Frame is the ordered list of commands for one rendered frame, drawn
// back to front over a solid background.
type Frame struct {
	Width, Height int
	Background    color.RGBA
	Commands      []Command
}

// Reset empties the frame, keeping its command storage.
func (f *Frame) Reset(w, h int, bg color.RGBA) {
	f.Width = w
	f.Height = h
	f.Background = bg
	f.Commands = f.Commands[:0]
}

// Fill appends a rectangle fill. Empty rectangles are dropped.
func (f *Frame) Fill(r core.Rect, c color.RGBA) {
	if r.Empty() || c.A == 0 {
		return
	}
	f.Commands = append(f.Commands, Command{Kind: CmdFill, Rect: r, Color: c})
}

// Blit appends a sprite draw with its top-left corner at (x, y).
func (f *Frame) Blit(k sprite.Key, x, y, w, h int) {
	f.Commands = append(f.Commands, Command{Kind: CmdBlit, Rect: core.NewRect(x, y, w, h), Sprite: k})
}

// Render draws the current game state into dst.
func (g *Game) Render(dst *Frame) {
	dst.Reset(g.cfg.Screen.Width, g.cfg.Screen.Height, SkyBlue)

	g.drawGround(dst)

	for i := range g.clouds {
		g.drawEntity(dst, &g.clouds[i])
	}
	for i := range g.bushes {
		g.drawEntity(dst, &g.bushes[i])
	}
	g.drawEntity(dst, &g.player)
	for i := range g.enemies {
		g.drawEntity(dst, &g.enemies[i])
	}

	g.drawHUD(dst)

	switch g.phase {
	case core.PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", sprite.Red,
			fmt.Sprintf("FINAL SCORE: %d", g.score),
			fmt.Sprintf("TIME: %.1fS", g.elapsed.Seconds()))
	case core.PhaseWon:
		g.drawCenteredMessage(dst, "YOU WIN!", Yellow,
			fmt.Sprintf("YOU DODGED %d ENEMIES!", g.cfg.Gameplay.WinScore),
			fmt.Sprintf("TIME: %.1fS", g.elapsed.Seconds()))
	}
}

// drawGround fills the grass band and its scrolling stripe texture.
func (g *Game) drawGround(dst *Frame) {
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	top := g.cfg.Screen.GroundY
	dst.Fill(core.NewRect(0, top, w, h-top), Grass)

	tile := g.cfg.Screen.GroundTile
	if tile <= 0 {
		return
	}
	offset := int(core.Mod(g.scrollOffset, float64(tile)))
	for x := 0; x < w; x += tile {
		dst.Fill(core.NewRect(x-offset, top, tile-2, stripeHeight), GroundDark)
	}
}

func (g *Game) drawEntity(dst *Frame, e *Entity) {
	if !e.Active {
		return
	}
	b := e.Bounds()
	dst.Blit(e.SpriteKey(), b.X, b.Y, b.W, b.H)
}

func (g *Game) drawHUD(dst *Frame) {
	g.text.Draw(dst, 20, 20, fmt.Sprintf("SCORE: %d/%d", g.score, g.cfg.Gameplay.WinScore), scaleBody, sprite.Black)
	g.text.Draw(dst, 20, 70, "SPACE/UP: JUMP", scaleHint, sprite.Black)
}

// drawCenteredMessage dims the playfield and shows a title, detail lines
// and the restart hint.
func (g *Game) drawCenteredMessage(dst *Frame, title string, titleColor color.RGBA, lines ...string) {
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	dst.Fill(core.NewRect(0, 0, w, h), OverlayTint)

	cx := w / 2
	g.text.DrawCentered(dst, cx, 200, title, scaleTitle, titleColor)

	_, lineH := g.text.CellSize()
	y := 300
	for _, line := range lines {
		g.text.DrawCentered(dst, cx, y, line, scaleBody, sprite.White)
		y += lineH*scaleBody + 8
	}

	g.text.DrawCentered(dst, cx, 400+lineH, "R: RESTART | Q: QUIT", scaleHint, Yellow)
}
