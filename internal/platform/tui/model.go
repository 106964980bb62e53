package tui

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-runner/internal/canvas"
	"github.com/vovakirdan/pixel-runner/internal/core"
	"github.com/vovakirdan/pixel-runner/internal/registry"
	"github.com/vovakirdan/pixel-runner/internal/runner"
)

// ID is the name the backend registers under.
const ID = "terminal"

// keyHoldWindow is how long an action stays held after its last key event.
// It spans the gap between keyboard autorepeat events.
const keyHoldWindow = 100 * time.Millisecond

// Fallback terminal size when stdout is not a terminal.
const (
	defaultCols = 100
	defaultRows = 31
)

func init() {
	registry.Register(ID, func() registry.Backend { return Backend{} })
}

// Backend runs the game inside the terminal's alternate screen.
type Backend struct{}

// ID returns the registry name.
func (Backend) ID() string { return ID }

// Title returns a short description.
func (Backend) Title() string { return "terminal half-block renderer (bubbletea)" }

// Run starts the Bubble Tea program and blocks until the player quits.
func (Backend) Run(game *runner.Game, opts registry.Options) error {
	cols, rows := defaultCols, defaultRows
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h
	}

	model := NewModel(game, opts, cols, rows)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	game      *runner.Game
	canvas    *canvas.Canvas
	screen    *core.Screen
	styles    styleCache
	keys      KeyMap
	help      help.Model
	tracker   *core.KeyTracker
	lastSeen  map[core.Action]int // tick of the latest key event per action
	ticks     int
	holdTicks int
	runtime   core.RuntimeConfig
	logger    *log.Logger
	state     core.GameState

	quitting bool
}

// NewModel creates a model for a cols×rows terminal and resets the game.
// The bottom row holds the key help.
func NewModel(game *runner.Game, opts registry.Options, cols, rows int) Model {
	// Use time-based seed if not specified
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

	h := help.New()
	h.Width = cols

	opts.Logger.Info("terminal session started", "cols", cols, "rows", rows,
		"tps", opts.Runtime.TickRate, "seed", opts.Runtime.Seed)

	return Model{
		game:      game,
		canvas:    canvas.New(cfg.Screen.Width, cfg.Screen.Height, game.Atlas()),
		screen:    core.NewScreen(cols, rows-1),
		styles:    make(styleCache),
		keys:      DefaultKeyMap(),
		help:      h,
		tracker:   core.NewKeyTracker(),
		lastSeen:  make(map[core.Action]int),
		holdTicks: holdTicks(opts.Runtime.TickDuration()),
		runtime:   opts.Runtime,
		logger:    opts.Logger,
		state:     game.State(),
	}
}

// holdTicks converts keyHoldWindow into whole ticks, at least one.
func holdTicks(tick time.Duration) int {
	if tick <= 0 {
		return 1
	}
	return max(int((keyHoldWindow+tick-1)/tick), 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey marks the action as seen on the next tick. Terminals report
// presses and autorepeats but no releases, so an action stays held until
// no event for it has arrived for holdTicks ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a := m.keys.Action(msg); a != core.ActionNone {
		m.lastSeen[a] = m.ticks + 1
	}
	return m, nil
}

// heldActions returns the actions still within their hold window and
// forgets the expired ones.
func (m Model) heldActions() []core.Action {
	var held []core.Action
	for a, seen := range m.lastSeen {
		if m.ticks-seen < m.holdTicks {
			held = append(held, a)
		} else {
			delete(m.lastSeen, a)
		}
	}
	return held
}

// handleResize fits the cell grid to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticks++
	in := m.tracker.Next(m.heldActions()...)

	res, _ := m.game.Tick(in, m.runtime.TickDuration())
	runner.LogEvents(m.logger, res)
	m.state = res.State

	if res.Quit {
		m.logger.Info("quit requested", "score", res.State.Score, "phase", res.State.Phase)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Draw(m.game.Frame())

	img := canvas.Scaled(m.canvas.Image(), m.screen.Width(), m.screen.Height()*2, true)
	m.screen.FromImage(img)
	m.screen.DrawText(1, 0, m.statusLine(), statusColor)

	return RenderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// statusColor is the foreground of the status row.
var statusColor = color.RGBA{255, 255, 255, 255}

// statusLine summarizes the session for the top row. The scaled-down HUD
// text is rarely legible at terminal resolution.
func (m Model) statusLine() string {
	return fmt.Sprintf(" SCORE %d/%d  %s ", m.state.Score, m.game.Config().Gameplay.WinScore, m.state.Phase)
}
