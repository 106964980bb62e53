// Package window presents the runner in a native window using ebiten.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pixel-runner/internal/core"
	"github.com/vovakirdan/pixel-runner/internal/registry"
	"github.com/vovakirdan/pixel-runner/internal/runner"
	"github.com/vovakirdan/pixel-runner/internal/sprite"
)

// ID is the name the backend registers under.
const ID = "window"

func init() {
	registry.Register(ID, func() registry.Backend { return Backend{} })
}

// Backend opens a window the size of the playfield.
type Backend struct{}

// ID returns the registry name.
func (Backend) ID() string { return ID }

// Title returns a short description.
func (Backend) Title() string { return "native window (ebiten)" }

// Run opens the window and blocks until it is closed or the player quits.
func (Backend) Run(game *runner.Game, opts registry.Options) error {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	cfg := game.Config()
	opts.Runtime.ScreenW = cfg.Screen.Width
	opts.Runtime.ScreenH = cfg.Screen.Height
	game.Reset(opts.Runtime)

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(max(opts.Runtime.TickRate, 1))

	opts.Logger.Info("window opened", "width", cfg.Screen.Width, "height", cfg.Screen.Height,
		"tps", opts.Runtime.TickRate, "seed", opts.Runtime.Seed)

	w := newWindowGame(game, opts)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// windowGame adapts runner.Game to ebiten.Game.
type windowGame struct {
	game    *runner.Game
	logger  *log.Logger
	keys    *core.KeyTracker
	dt      time.Duration
	frame   runner.Frame
	sprites map[sprite.Key]*ebiten.Image
}

func newWindowGame(game *runner.Game, opts registry.Options) *windowGame {
	return &windowGame{
		game:    game,
		logger:  opts.Logger,
		keys:    core.NewKeyTracker(),
		dt:      opts.Runtime.TickDuration(),
		sprites: make(map[sprite.Key]*ebiten.Image),
	}
}

// Update polls the keyboard and advances the simulation by one tick.
func (w *windowGame) Update() error {
	in := w.keys.Next(heldActions(ebiten.IsKeyPressed)...)
	res := w.game.Step(in, w.dt)
	runner.LogEvents(w.logger, res)
	if res.Quit {
		w.logger.Info("quit requested", "score", res.State.Score, "phase", res.State.Phase)
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current state and submits it to the screen.
func (w *windowGame) Draw(screen *ebiten.Image) {
	w.game.Render(&w.frame)

	screen.Fill(w.frame.Background)
	for i := range w.frame.Commands {
		cmd := &w.frame.Commands[i]
		r := cmd.Rect
		switch cmd.Kind {
		case runner.CmdFill:
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
				core.Premultiply(cmd.Color), false)
		case runner.CmdBlit:
			img := w.spriteImage(cmd.Sprite)
			op := &ebiten.DrawImageOptions{}
			b := img.Bounds()
			if b.Dx() != r.W || b.Dy() != r.H {
				op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
			}
			op.GeoM.Translate(float64(r.X), float64(r.Y))
			screen.DrawImage(img, op)
		}
	}
}

// Layout keeps the logical screen at the playfield size; ebiten scales it
// to the window.
func (w *windowGame) Layout(_, _ int) (int, int) {
	cfg := w.game.Config()
	return cfg.Screen.Width, cfg.Screen.Height
}

// spriteImage uploads an atlas sprite once and reuses it.
func (w *windowGame) spriteImage(k sprite.Key) *ebiten.Image {
	if img, ok := w.sprites[k]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(w.game.Atlas().Get(k))
	w.sprites[k] = img
	return img
}
