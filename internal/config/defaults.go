package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: Screen{
			Width:      1000,
			Height:     600,
			GroundY:    500,
			GroundTile: 50,
			ScrollStep: 5,
		},
		Physics: Physics{
			Gravity:     0.8,
			JumpImpulse: -15,
			ScrollSpeed: 5,
		},
		Player: Player{
			X:      100,
			Y:      400,
			Width:  50,
			Height: 60,
			RestY:  440,
		},
		Enemies: Enemies{
			Turtle:         Dimensions{Width: 40, Height: 35},
			Rabbit:         Dimensions{Width: 40, Height: 45},
			Mushroom:       Dimensions{Width: 40, Height: 38},
			SpawnMinTicks:  60,
			SpawnMaxTicks:  120,
			SpawnMinOffset: 50,
			SpawnMaxOffset: 200,
		},
		Decor: Decor{
			Clouds:             5,
			CloudWidth:         80,
			CloudHeight:        40,
			CloudSpeed:         2,
			CloudMinY:          50,
			CloudMaxY:          200,
			CloudRespawnSpread: 100,
			Bushes:             4,
			BushWidth:          60,
			BushHeight:         30,
			BushY:              480,
			BushSpeed:          5,
			BushRespawnSpread:  300,
		},
		Gameplay: Gameplay{
			WinScore: 10,
		},
		Text: Text{
			Font: FontBasic,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
