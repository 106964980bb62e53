// Package sprite fabricates the game's character and decoration art at
// runtime by composing raster primitives, instead of loading image assets.
package sprite

import "image/color"

// Palette used by the recipes.
var (
	Black     = color.RGBA{0, 0, 0, 255}
	White     = color.RGBA{255, 255, 255, 255}
	Red       = color.RGBA{255, 0, 0, 255}
	Blue      = color.RGBA{0, 0, 255, 255}
	Brown     = color.RGBA{165, 42, 42, 255}
	Skin      = color.RGBA{255, 220, 177, 255}
	Denim     = color.RGBA{0, 100, 200, 255}
	Shell     = color.RGBA{0, 150, 0, 255}
	ShellDark = color.RGBA{0, 100, 0, 255}
	Reptile   = color.RGBA{100, 200, 100, 255}
	Fur       = color.RGBA{230, 230, 230, 255}
	Pink      = color.RGBA{255, 192, 203, 255}
	Nose      = color.RGBA{255, 182, 193, 255}
	Stem      = color.RGBA{245, 245, 245, 255}
	Foliage   = color.RGBA{0, 180, 0, 255}
)
