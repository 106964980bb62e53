package runner

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/pixel-runner/internal/config"
	"github.com/vovakirdan/pixel-runner/internal/core"
	"github.com/vovakirdan/pixel-runner/internal/sprite"
)

const tick = time.Second / 60

func newTestGame(seed int64) *Game {
	g := New(config.Default())
	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)
	return g
}

// quiet removes enemies and postpones spawning so a test controls the field.
func quiet(g *Game) {
	g.enemies = g.enemies[:0]
	g.spawnTimer = 1 << 30
}

func grounded(g *Game) {
	g.player.Y = g.cfg.Player.RestY
	g.player.VelY = 0
	g.player.Airborne = false
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func hold(a core.Action) core.InputFrame {
	in := press(a)
	in.SetPrevious(a)
	return in
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame(42)

	if g.phase != core.PhasePlaying {
		t.Errorf("phase = %v, want playing", g.phase)
	}
	if g.score != 0 || len(g.enemies) != 0 {
		t.Errorf("score=%d enemies=%d, want empty session", g.score, len(g.enemies))
	}
	if g.player.X != 100 || g.player.Y != 400 {
		t.Errorf("player at (%v,%v), want (100,400)", g.player.X, g.player.Y)
	}
	if len(g.clouds) != 5 || len(g.bushes) != 4 {
		t.Errorf("clouds=%d bushes=%d, want 5 and 4", len(g.clouds), len(g.bushes))
	}
	for _, c := range g.clouds {
		if c.X < 0 || c.X >= 1000 || c.Y < 50 || c.Y >= 200 {
			t.Errorf("cloud at (%v,%v) outside initial area", c.X, c.Y)
		}
	}
	for _, b := range g.bushes {
		if b.Y != 480 {
			t.Errorf("bush y = %v, want 480", b.Y)
		}
	}
	if g.spawnTimer < 60 || g.spawnTimer >= 120 {
		t.Errorf("spawnTimer = %d, want [60,120)", g.spawnTimer)
	}
}

func TestEnemyRemovedWhenOffScreen(t *testing.T) {
	g := newTestGame(1)
	quiet(g)
	g.enemies = append(g.enemies, g.newEnemy(sprite.Turtle, 1000))

	ticks := 0
	for len(g.enemies) > 0 && ticks < 1000 {
		g.updateEnemies()
		ticks++
	}
	if ticks != 208 {
		t.Errorf("enemy removed after %d ticks, want 208", ticks)
	}
}

func TestEnemySpawnsOnGround(t *testing.T) {
	g := newTestGame(7)
	for _, s := range sprite.AllSpecies() {
		e := g.newEnemy(s, 1100)
		if e.Y+e.H != 500 {
			t.Errorf("%v bottom = %v, want 500", s, e.Y+e.H)
		}
		want := g.atlas.Size(sprite.EnemyKey(s))
		if int(e.W) != want.W || int(e.H) != want.H {
			t.Errorf("%v size = %vx%v, want %dx%d", s, e.W, e.H, want.W, want.H)
		}
	}
}

func TestCollisionEndsGame(t *testing.T) {
	g := newTestGame(3)
	quiet(g)
	grounded(g)
	g.enemies = append(g.enemies, g.newEnemy(sprite.Mushroom, 110))

	res := g.Step(core.NewInputFrame(), tick)
	if res.State.Phase != core.PhaseGameOver {
		t.Fatalf("phase = %v, want game_over", res.State.Phase)
	}
	if len(res.Events) == 0 || res.Events[len(res.Events)-1].Kind != core.EventGameOver {
		t.Errorf("events = %v, want trailing game over", res.Events)
	}

	// GameOver is sticky: further ticks change nothing.
	ticks := g.tickCount
	x := g.enemies[0].X
	for i := 0; i < 30; i++ {
		in := core.NewInputFrame()
		if i%2 == 0 {
			in.Set(core.ActionJump)
		}
		res = g.Step(in, tick)
	}
	if res.State.Phase != core.PhaseGameOver {
		t.Errorf("phase = %v after extra ticks, want game_over", res.State.Phase)
	}
	if g.tickCount != ticks || g.enemies[0].X != x {
		t.Error("simulation advanced after game over")
	}
}

func TestScoringCountsEachEnemyOnce(t *testing.T) {
	g := newTestGame(5)
	quiet(g)
	grounded(g)
	// Right edge is 96 now, 91 after the next update: past the player's left edge (100).
	g.enemies = append(g.enemies, g.newEnemy(sprite.Rabbit, 56))

	res := g.Step(core.NewInputFrame(), tick)
	if res.State.Score != 1 {
		t.Fatalf("score = %d, want 1", res.State.Score)
	}
	if !g.enemies[0].Passed {
		t.Error("enemy should be marked passed")
	}

	for i := 0; i < 5; i++ {
		res = g.Step(core.NewInputFrame(), tick)
	}
	if res.State.Score != 1 {
		t.Errorf("score = %d after more ticks, want 1", res.State.Score)
	}
}

func TestEnemyAtPlayerEdgeNotScored(t *testing.T) {
	g := newTestGame(5)
	quiet(g)
	grounded(g)
	// Right edge lands exactly on the player's left edge.
	g.enemies = append(g.enemies, g.newEnemy(sprite.Turtle, 65))

	res := g.Step(core.NewInputFrame(), tick)
	if res.State.Score != 0 {
		t.Errorf("score = %d, want 0 while edges touch", res.State.Score)
	}
}

func TestWinStopsScoring(t *testing.T) {
	g := newTestGame(9)
	quiet(g)
	grounded(g)
	g.score = g.cfg.Gameplay.WinScore - 1
	g.enemies = append(g.enemies,
		g.newEnemy(sprite.Turtle, 56),
		g.newEnemy(sprite.Rabbit, 20),
	)

	res := g.Step(core.NewInputFrame(), tick)
	if res.State.Phase != core.PhaseWon {
		t.Fatalf("phase = %v, want won", res.State.Phase)
	}
	if res.State.Score != g.cfg.Gameplay.WinScore {
		t.Errorf("score = %d, want %d", res.State.Score, g.cfg.Gameplay.WinScore)
	}
	if g.enemies[1].Passed {
		t.Error("no enemy should be scored after the win")
	}

	res = g.Step(core.NewInputFrame(), tick)
	if res.State.Score != g.cfg.Gameplay.WinScore || res.State.Phase != core.PhaseWon {
		t.Errorf("state changed after win: %+v", res.State)
	}
}

func TestRestartWhilePlaying(t *testing.T) {
	g := newTestGame(11)

	if err := g.Restart(); !errors.Is(err, ErrRestartNotAllowed) {
		t.Fatalf("Restart while playing = %v, want ErrRestartNotAllowed", err)
	}

	// The restart key does nothing while playing either.
	res := g.Step(press(core.ActionRestart), tick)
	if g.tickCount != 1 {
		t.Errorf("tickCount = %d, want 1", g.tickCount)
	}
	for _, ev := range res.Events {
		if ev.Kind == core.EventRestart {
			t.Error("unexpected restart event while playing")
		}
	}
}

func TestRestart(t *testing.T) {
	tests := []struct {
		name  string
		phase core.Phase
	}{
		{"game over", core.PhaseGameOver},
		{"won", core.PhaseWon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(11)
			g.score = 4
			g.phase = tt.phase
			g.enemies = append(g.enemies, g.newEnemy(sprite.Turtle, 500))

			res := g.Step(press(core.ActionRestart), tick)
			if res.State.Phase != core.PhasePlaying {
				t.Errorf("phase = %v, want playing", res.State.Phase)
			}
			if res.State.Score != 0 {
				t.Errorf("score = %d, want 0", res.State.Score)
			}
			if len(g.enemies) != 0 {
				t.Errorf("enemies = %d, want 0", len(g.enemies))
			}
			if g.player.X != 100 || g.player.Y != 400 || g.player.Airborne {
				t.Errorf("player = %+v, want spawn pose at (100,400)", g.player)
			}
			found := false
			for _, ev := range res.Events {
				if ev.Kind == core.EventRestart {
					found = true
				}
			}
			if !found {
				t.Error("expected restart event")
			}
		})
	}
}

func TestRestartNeedsFreshPress(t *testing.T) {
	g := newTestGame(11)
	g.phase = core.PhaseWon

	g.Step(hold(core.ActionRestart), tick)
	if g.phase != core.PhaseWon {
		t.Error("held restart key should not restart")
	}
}

func TestJumpPhysics(t *testing.T) {
	g := newTestGame(1)
	quiet(g)
	grounded(g)

	res := g.Step(press(core.ActionJump), tick)
	if !g.player.Airborne {
		t.Fatal("player should be airborne after jump")
	}
	if g.player.Y >= 440 {
		t.Errorf("player y = %v, want above 440", g.player.Y)
	}
	if want := -15 + 0.8; g.player.VelY != want {
		t.Errorf("velY = %v, want %v", g.player.VelY, want)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != core.EventJump {
		t.Errorf("events = %v, want one jump", res.Events)
	}

	// Held key and a fresh press mid-air must not add impulse.
	vel := g.player.VelY
	g.Step(hold(core.ActionJump), tick)
	g.Step(press(core.ActionJump), tick)
	if g.player.VelY <= vel {
		t.Errorf("velY = %v, want gravity to keep increasing it past %v", g.player.VelY, vel)
	}

	landed := false
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame(), tick)
		if !g.player.Airborne {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("player did not land within 60 ticks")
	}
	if g.player.Y != 440 || g.player.VelY != 0 {
		t.Errorf("landed at y=%v vel=%v, want 440 and 0", g.player.Y, g.player.VelY)
	}
}

func TestJumpWhileFallingFromSpawn(t *testing.T) {
	g := newTestGame(1)
	quiet(g)

	g.Step(core.NewInputFrame(), tick)
	if !g.jump(&g.player) {
		t.Error("player spawned above the ground should still be able to jump once")
	}
}

func TestQuit(t *testing.T) {
	for _, phase := range []core.Phase{core.PhasePlaying, core.PhaseGameOver, core.PhaseWon} {
		g := newTestGame(2)
		g.phase = phase
		res := g.Step(hold(core.ActionQuit), tick)
		if !res.Quit {
			t.Errorf("%v: quit not reported", phase)
		}
		if g.tickCount != 0 {
			t.Errorf("%v: quit tick advanced the simulation", phase)
		}
	}
}

func TestDecorRecycles(t *testing.T) {
	g := newTestGame(13)

	tests := []struct {
		name  string
		e     *Entity
		width float64
	}{
		{"cloud", &g.clouds[0], 80},
		{"bush", &g.bushes[0], 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.e.X = -tt.width
			g.update(tt.e)
			if tt.e.X < 1000 {
				t.Errorf("x = %v, want recycled past the right edge", tt.e.X)
			}
			if !tt.e.Active {
				t.Error("decor must stay active")
			}
		})
	}

	if y := g.clouds[0].Y; y < 50 || y >= 200 {
		t.Errorf("recycled cloud y = %v, want [50,200)", y)
	}
	if x := g.bushes[0].X; x >= 1300 {
		t.Errorf("recycled bush x = %v, want < 1300", x)
	}
}

func TestSpawnCountdownAndInvariants(t *testing.T) {
	g := newTestGame(21)

	spawned := 0
	for i := 0; i < 3000; i++ {
		in := core.NewInputFrame()
		if i%40 == 0 {
			in.Set(core.ActionJump)
		}
		res := g.Step(in, tick)
		for _, ev := range res.Events {
			if ev.Kind == core.EventSpawn {
				spawned++
			}
		}
		if res.State.Phase.Terminal() {
			if err := g.Restart(); err != nil {
				t.Fatal(err)
			}
			continue
		}

		if g.spawnTimer < 1 || g.spawnTimer >= 120 {
			t.Fatalf("tick %d: spawnTimer = %d", i, g.spawnTimer)
		}
		if g.player.Y > 440 {
			t.Fatalf("tick %d: player below ground at %v", i, g.player.Y)
		}
		for _, e := range g.enemies {
			if !e.Species.Valid() {
				t.Fatalf("invalid species %d", e.Species)
			}
			if e.Right() <= 0 {
				t.Fatalf("off-screen enemy kept at x=%v", e.X)
			}
		}
		if g.score < 0 || g.score > g.cfg.Gameplay.WinScore {
			t.Fatalf("score %d out of range", g.score)
		}
	}
	if spawned == 0 {
		t.Error("no enemies spawned")
	}
}

func TestManySeedsNoPanic(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		g := newTestGame(seed)
		tracker := core.NewKeyTracker()
		var frame Frame
		for i := 0; i < 1500; i++ {
			var held []core.Action
			if (i+int(seed))%23 < 2 {
				held = append(held, core.ActionJump)
			}
			if i%300 == 299 {
				held = append(held, core.ActionRestart)
			}
			g.Step(tracker.Next(held...), tick)
			g.Render(&frame)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (*Game, []core.GameState) {
		g := newTestGame(12345)
		var states []core.GameState
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%37 == 0 {
				in.Set(core.ActionJump)
			}
			states = append(states, g.Step(in, tick).State)
		}
		return g, states
	}

	g1, s1 := run()
	g2, s2 := run()

	for i := range s1 {
		if s1[i] != s2[i] {
			t.Fatalf("tick %d: states differ %+v vs %+v", i, s1[i], s2[i])
		}
	}
	if len(g1.enemies) != len(g2.enemies) {
		t.Fatalf("enemy counts differ: %d vs %d", len(g1.enemies), len(g2.enemies))
	}
	for i := range g1.enemies {
		if g1.enemies[i] != g2.enemies[i] {
			t.Errorf("enemy %d differs: %+v vs %+v", i, g1.enemies[i], g2.enemies[i])
		}
	}
}

func TestElapsedAccumulates(t *testing.T) {
	g := newTestGame(1)
	quiet(g)
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame(), tick)
	}
	if got := g.State().Elapsed; got != 60*tick {
		t.Errorf("elapsed = %v, want %v", got, 60*tick)
	}
}
