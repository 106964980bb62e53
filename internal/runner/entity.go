package runner

import (
	"github.com/vovakirdan/pixel-runner/internal/core"
	"github.com/vovakirdan/pixel-runner/internal/sprite"
)

// Kind tags the entity variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindCloud
	KindBush
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindCloud:
		return "cloud"
	case KindBush:
		return "bush"
	default:
		return "unknown"
	}
}

// Entity is a positioned, sized object in the world. Kind selects which
// of the variant fields are meaningful and which update rule applies.
// Size is fixed at construction.
type Entity struct {
	Kind   Kind
	X, Y   float64
	W, H   float64
	Active bool

	// Player
	VelY     float64
	Airborne bool

	// Enemy
	Species sprite.Species
	Passed  bool // already counted toward the score
}

// Bounds returns the collision rectangle on the pixel grid.
func (e *Entity) Bounds() core.Rect {
	return core.RectF(e.X, e.Y, e.W, e.H)
}

// Right returns the x-coordinate of the right edge.
func (e *Entity) Right() float64 {
	return e.X + e.W
}

// SpriteKey returns the shared image this entity is drawn with.
func (e *Entity) SpriteKey() sprite.Key {
	switch e.Kind {
	case KindEnemy:
		return sprite.EnemyKey(e.Species)
	case KindCloud:
		return sprite.KeyCloud
	case KindBush:
		return sprite.KeyBush
	default:
		return sprite.KeyPlayer
	}
}

// update advances e by one tick using the rule for its kind.
func (g *Game) update(e *Entity) {
	switch e.Kind {
	case KindPlayer:
		g.updatePlayer(e)
	case KindEnemy:
		g.updateEnemy(e)
	case KindCloud:
		g.updateCloud(e)
	case KindBush:
		g.updateBush(e)
	}
}

// jump starts a jump if the player is on the ground.
// Returns false when the player is already airborne.
func (g *Game) jump(p *Entity) bool {
	if p.Airborne {
		return false
	}
	p.VelY = g.cfg.Physics.JumpImpulse
	p.Airborne = true
	return true
}

func (g *Game) updatePlayer(p *Entity) {
	p.VelY += g.cfg.Physics.Gravity
	p.Y += p.VelY

	if p.Y >= g.cfg.Player.RestY {
		p.Y = g.cfg.Player.RestY
		p.VelY = 0
		p.Airborne = false
	}
}

// updateEnemy scrolls the enemy left; once its right edge reaches the left
// border it is fully off-screen and becomes inactive.
func (g *Game) updateEnemy(e *Entity) {
	e.X -= g.cfg.Physics.ScrollSpeed
	if e.Right() <= 0 {
		e.Active = false
	}
}

func (g *Game) updateCloud(c *Entity) {
	c.X -= g.cfg.Decor.CloudSpeed
	if c.Right() < 0 {
		c.X = float64(g.cfg.Screen.Width + g.rng.Intn(g.cfg.Decor.CloudRespawnSpread))
		c.Y = float64(g.randRange(g.cfg.Decor.CloudMinY, g.cfg.Decor.CloudMaxY))
	}
}

func (g *Game) updateBush(b *Entity) {
	b.X -= g.cfg.Decor.BushSpeed
	if b.Right() < 0 {
		b.X = float64(g.cfg.Screen.Width + g.rng.Intn(g.cfg.Decor.BushRespawnSpread))
	}
}

func (g *Game) newPlayer() Entity {
	return Entity{
		Kind:   KindPlayer,
		X:      g.cfg.Player.X,
		Y:      g.cfg.Player.Y,
		W:      float64(g.cfg.Player.Width),
		H:      float64(g.cfg.Player.Height),
		Active: true,
	}
}

// newEnemy places an enemy at x with its bottom on the ground.
func (g *Game) newEnemy(s sprite.Species, x float64) Entity {
	size := g.atlas.Size(sprite.EnemyKey(s))
	return Entity{
		Kind:    KindEnemy,
		X:       x,
		Y:       float64(g.cfg.Screen.GroundY - size.H),
		W:       float64(size.W),
		H:       float64(size.H),
		Active:  true,
		Species: s,
	}
}

func (g *Game) newCloud(x, y float64) Entity {
	return Entity{
		Kind:   KindCloud,
		X:      x,
		Y:      y,
		W:      float64(g.cfg.Decor.CloudWidth),
		H:      float64(g.cfg.Decor.CloudHeight),
		Active: true,
	}
}

func (g *Game) newBush(x float64) Entity {
	return Entity{
		Kind:   KindBush,
		X:      x,
		Y:      g.cfg.Decor.BushY,
		W:      float64(g.cfg.Decor.BushWidth),
		H:      float64(g.cfg.Decor.BushHeight),
		Active: true,
	}
}
