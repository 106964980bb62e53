package sprite

import (
	"fmt"

	"github.com/vovakirdan/pixel-runner/internal/raster"
)

// Species is the enemy subtype.
type Species int

const (
	Turtle Species = iota
	Rabbit
	Mushroom

	// speciesCount must stay last: random species are drawn from
	// [0, speciesCount) so the range follows the enum.
	speciesCount
)

// SpeciesCount returns the number of enemy species.
func SpeciesCount() int {
	return int(speciesCount)
}

// AllSpecies lists every enemy species in declaration order.
func AllSpecies() []Species {
	out := make([]Species, 0, speciesCount)
	for s := Species(0); s < speciesCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is a known species.
func (s Species) Valid() bool {
	return s >= 0 && s < speciesCount
}

// String returns the species name.
func (s Species) String() string {
	switch s {
	case Turtle:
		return "turtle"
	case Rabbit:
		return "rabbit"
	case Mushroom:
		return "mushroom"
	default:
		return fmt.Sprintf("species(%d)", int(s))
	}
}

// BuildPlayer draws the player character.
func BuildPlayer(w, h int) *raster.Buffer {
	return playerRecipe.build(w, h)
}

// BuildEnemy draws the enemy of the given species. Unknown species yield a
// transparent buffer.
func BuildEnemy(s Species, w, h int) *raster.Buffer {
	switch s {
	case Turtle:
		return turtleRecipe.build(w, h)
	case Rabbit:
		return rabbitRecipe.build(w, h)
	case Mushroom:
		return mushroomRecipe.build(w, h)
	default:
		return raster.New(w, h)
	}
}

// BuildCloud draws a background cloud.
func BuildCloud(w, h int) *raster.Buffer {
	return cloudRecipe.build(w, h)
}

// BuildBush draws a ground bush.
func BuildBush(w, h int) *raster.Buffer {
	return bushRecipe.build(w, h)
}
