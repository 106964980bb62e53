package sprite

import (
	"fmt"
	"image"
)

// Key names one shared sprite image. All instances of a variant (and, for
// enemies, a species) look identical, so entities hold a Key rather than
// their own pixels.
type Key int

const (
	KeyPlayer Key = iota
	KeyTurtle
	KeyRabbit
	KeyMushroom
	KeyCloud
	KeyBush

	keyCount
)

// String returns the key name, used for file names and logs.
func (k Key) String() string {
	switch k {
	case KeyPlayer:
		return "player"
	case KeyTurtle:
		return "turtle"
	case KeyRabbit:
		return "rabbit"
	case KeyMushroom:
		return "mushroom"
	case KeyCloud:
		return "cloud"
	case KeyBush:
		return "bush"
	default:
		return fmt.Sprintf("key(%d)", int(k))
	}
}

// EnemyKey maps a species to its sprite key.
func EnemyKey(s Species) Key {
	switch s {
	case Rabbit:
		return KeyRabbit
	case Mushroom:
		return KeyMushroom
	default:
		return KeyTurtle
	}
}

// Keys lists every sprite key.
func Keys() []Key {
	out := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		out = append(out, k)
	}
	return out
}

// Size is a sprite's pixel dimensions.
type Size struct {
	W, H int
}

// Atlas builds each sprite once, on first use, and hands out the same
// immutable image afterwards. It is not safe for concurrent use.
type Atlas struct {
	sizes  map[Key]Size
	images map[Key]*image.RGBA
}

// NewAtlas creates an atlas that builds sprites at the given sizes.
// Keys missing from sizes are built at their reference size.
func NewAtlas(sizes map[Key]Size) *Atlas {
	a := &Atlas{
		sizes:  make(map[Key]Size, keyCount),
		images: make(map[Key]*image.RGBA, keyCount),
	}
	for k, s := range sizes {
		a.sizes[k] = s
	}
	return a
}

// Size returns the dimensions the atlas builds k at.
func (a *Atlas) Size(k Key) Size {
	if s, ok := a.sizes[k]; ok {
		return s
	}
	return ReferenceSize(k)
}

// Get returns the image for k, building it on first request.
func (a *Atlas) Get(k Key) *image.RGBA {
	if img, ok := a.images[k]; ok {
		return img
	}
	img := Build(k, a.Size(k))
	a.images[k] = img
	return img
}

// Build renders the sprite for k at size s.
func Build(k Key, s Size) *image.RGBA {
	switch k {
	case KeyPlayer:
		return BuildPlayer(s.W, s.H).Image()
	case KeyTurtle:
		return BuildEnemy(Turtle, s.W, s.H).Image()
	case KeyRabbit:
		return BuildEnemy(Rabbit, s.W, s.H).Image()
	case KeyMushroom:
		return BuildEnemy(Mushroom, s.W, s.H).Image()
	case KeyCloud:
		return BuildCloud(s.W, s.H).Image()
	case KeyBush:
		return BuildBush(s.W, s.H).Image()
	default:
		return image.NewRGBA(image.Rect(0, 0, s.W, s.H))
	}
}

// ReferenceSize returns the size a sprite's recipe was laid out for.
func ReferenceSize(k Key) Size {
	var r recipe
	switch k {
	case KeyPlayer:
		r = playerRecipe
	case KeyTurtle:
		r = turtleRecipe
	case KeyRabbit:
		r = rabbitRecipe
	case KeyMushroom:
		r = mushroomRecipe
	case KeyCloud:
		r = cloudRecipe
	case KeyBush:
		r = bushRecipe
	}
	return Size{W: r.refW, H: r.refH}
}
