// Package runner implements the side-scrolling runner: the player jumps
// over enemies that scroll in from the right. The session ends in GameOver
// on the first collision, or in Won once enough enemies have been dodged.
//
// The package is pure simulation. A backend polls input, calls Step once
// per frame, then Render, and submits the resulting commands to its
// display.
package runner

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/pixel-runner/internal/config"
	"github.com/vovakirdan/pixel-runner/internal/core"
	"github.com/vovakirdan/pixel-runner/internal/sprite"
)

// ErrRestartNotAllowed is returned by Restart while a run is still in progress.
var ErrRestartNotAllowed = errors.New("runner: restart is only allowed after game over or win")

// Game owns the whole session state: entities, score, phase and the
// random source every randomized decision draws from.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	rng     *rand.Rand
	atlas   *sprite.Atlas
	text    *TextRenderer
	frame   Frame

	player  Entity
	enemies []Entity
	clouds  []Entity
	bushes  []Entity

	score        int
	phase        core.Phase
	spawnTimer   int     // ticks until the next enemy spawn
	scrollOffset float64 // grows forever; wrapped only when drawing
	tickCount    int
	elapsed      time.Duration
	events       []core.Event
}

// New creates a game with the given configuration. Call Reset before the
// first Step.
func New(cfg config.Config) *Game {
	return &Game{
		cfg:   cfg,
		atlas: sprite.NewAtlas(spriteSizes(cfg)),
		text:  NewTextRenderer(cfg.Text.Font),
		rng:   rand.New(rand.NewSource(1)),
	}
}

// spriteSizes maps every sprite key to the size configured for it.
func spriteSizes(cfg config.Config) map[sprite.Key]sprite.Size {
	return map[sprite.Key]sprite.Size{
		sprite.KeyPlayer:   {W: cfg.Player.Width, H: cfg.Player.Height},
		sprite.KeyTurtle:   {W: cfg.Enemies.Turtle.Width, H: cfg.Enemies.Turtle.Height},
		sprite.KeyRabbit:   {W: cfg.Enemies.Rabbit.Width, H: cfg.Enemies.Rabbit.Height},
		sprite.KeyMushroom: {W: cfg.Enemies.Mushroom.Width, H: cfg.Enemies.Mushroom.Height},
		sprite.KeyCloud:    {W: cfg.Decor.CloudWidth, H: cfg.Decor.CloudHeight},
		sprite.KeyBush:     {W: cfg.Decor.BushWidth, H: cfg.Decor.BushHeight},
	}
}

// ID returns the identifier used in logs and file names.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pixel Runner"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Atlas returns the shared sprite images the render commands refer to.
func (g *Game) Atlas() *sprite.Atlas {
	return g.atlas
}

// Reset reseeds the random source and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.newSession()
	g.Render(&g.frame)
}

// Restart starts a new session after GameOver or Won, continuing the same
// random sequence. It is rejected while the game is still being played.
func (g *Game) Restart() error {
	if !g.phase.Terminal() {
		return ErrRestartNotAllowed
	}
	g.newSession()
	g.emit(core.EventRestart, "")
	return nil
}

// newSession reinitializes all session state and entity collections.
func (g *Game) newSession() {
	g.score = 0
	g.phase = core.PhasePlaying
	g.scrollOffset = 0
	g.tickCount = 0
	g.elapsed = 0
	g.spawnTimer = g.nextSpawnDelay()

	g.player = g.newPlayer()
	g.enemies = g.enemies[:0]

	g.clouds = g.clouds[:0]
	for i := 0; i < g.cfg.Decor.Clouds; i++ {
		x := float64(g.rng.Intn(g.cfg.Screen.Width))
		y := float64(g.randRange(g.cfg.Decor.CloudMinY, g.cfg.Decor.CloudMaxY))
		g.clouds = append(g.clouds, g.newCloud(x, y))
	}

	g.bushes = g.bushes[:0]
	for i := 0; i < g.cfg.Decor.Bushes; i++ {
		g.bushes = append(g.bushes, g.newBush(float64(g.rng.Intn(g.cfg.Screen.Width))))
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionQuit) {
		return g.result(true)
	}

	if g.phase.Terminal() {
		if in.Pressed(core.ActionRestart) {
			_ = g.Restart()
		}
		return g.result(false)
	}

	g.tickCount++
	g.elapsed += dt

	if in.Pressed(core.ActionJump) && g.jump(&g.player) {
		g.emit(core.EventJump, "")
	}

	g.scrollOffset += g.cfg.Screen.ScrollStep

	g.update(&g.player)
	for i := range g.clouds {
		g.update(&g.clouds[i])
	}
	for i := range g.bushes {
		g.update(&g.bushes[i])
	}

	g.spawnTimer--
	if g.spawnTimer <= 0 {
		g.spawnEnemy()
		g.spawnTimer = g.nextSpawnDelay()
	}

	g.updateEnemies()

	if g.checkCollision() {
		g.phase = core.PhaseGameOver
		g.emit(core.EventGameOver, "")
		return g.result(false)
	}

	g.checkScore()

	return g.result(false)
}

// updateEnemies moves every enemy and drops the ones that left the screen.
func (g *Game) updateEnemies() {
	alive := g.enemies[:0]
	for i := range g.enemies {
		e := &g.enemies[i]
		g.update(e)
		if e.Active {
			alive = append(alive, *e)
		}
	}
	g.enemies = alive
}

// spawnEnemy adds one enemy of a random species past the right edge.
func (g *Game) spawnEnemy() {
	species := sprite.Species(g.rng.Intn(sprite.SpeciesCount()))
	offset := g.randRange(g.cfg.Enemies.SpawnMinOffset, g.cfg.Enemies.SpawnMaxOffset)
	x := float64(g.cfg.Screen.Width + offset)

	g.enemies = append(g.enemies, g.newEnemy(species, x))
	g.emit(core.EventSpawn, species.String())
}

// checkCollision reports whether the player overlaps any enemy.
func (g *Game) checkCollision() bool {
	pb := g.player.Bounds()
	for i := range g.enemies {
		if pb.Intersects(g.enemies[i].Bounds()) {
			return true
		}
	}
	return false
}

// checkScore awards one point per enemy the first tick its right edge is
// left of the player's left edge.
func (g *Game) checkScore() {
	for i := range g.enemies {
		e := &g.enemies[i]
		if e.Passed || e.Right() >= g.player.X {
			continue
		}
		e.Passed = true
		g.score++
		g.emit(core.EventScore, e.Species.String())

		if g.score >= g.cfg.Gameplay.WinScore {
			g.phase = core.PhaseWon
			g.emit(core.EventWon, "")
			return
		}
	}
}

// nextSpawnDelay draws a fresh spawn countdown.
func (g *Game) nextSpawnDelay() int {
	return g.randRange(g.cfg.Enemies.SpawnMinTicks, g.cfg.Enemies.SpawnMaxTicks)
}

// randRange returns a random integer in [lo, hi). It returns lo when the
// range is empty.
func (g *Game) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo)
}

func (g *Game) emit(kind core.EventKind, detail string) {
	g.events = append(g.events, core.Event{Kind: kind, Detail: detail, Score: g.score})
}

func (g *Game) result(quit bool) core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events, Quit: quit}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Phase:   g.phase,
		Ticks:   g.tickCount,
		Elapsed: g.elapsed,
	}
}

// Tick runs one Step followed by one Render into the game's own frame.
// The returned frame is the one Frame returns and is reused by the next Tick.
func (g *Game) Tick(in core.InputFrame, dt time.Duration) (core.StepResult, *Frame) {
	res := g.Step(in, dt)
	g.Render(&g.frame)
	return res, &g.frame
}

// Frame returns the frame rendered by the last Tick or Reset.
func (g *Game) Frame() *Frame {
	return &g.frame
}
