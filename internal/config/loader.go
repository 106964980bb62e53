package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search path.
const FileName = "runner.yaml"

// Load loads the runner configuration.
// Search order: customPath -> ~/.pixel-runner/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded over the defaults, so a file may set only the keys it changes.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pixel-runner", filename)
}

// Validate reports every out-of-range value at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Screen.GroundTile > 0, "screen.ground_tile must be positive")
	check(c.Physics.Gravity > 0, "physics.gravity must be positive")
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative (upward)")
	check(c.Physics.ScrollSpeed > 0, "physics.scroll_speed must be positive")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Player.Y <= c.Player.RestY, "player.y (%v) must not be below player.rest_y (%v)", c.Player.Y, c.Player.RestY)
	for name, d := range map[string]Dimensions{
		"turtle":   c.Enemies.Turtle,
		"rabbit":   c.Enemies.Rabbit,
		"mushroom": c.Enemies.Mushroom,
	} {
		check(d.Width > 0 && d.Height > 0, "enemies.%s size must be positive", name)
	}
	check(c.Enemies.SpawnMinTicks > 0 && c.Enemies.SpawnMinTicks < c.Enemies.SpawnMaxTicks,
		"enemies spawn ticks must satisfy 0 < min < max, got [%d, %d)", c.Enemies.SpawnMinTicks, c.Enemies.SpawnMaxTicks)
	check(c.Enemies.SpawnMinOffset >= 0 && c.Enemies.SpawnMinOffset < c.Enemies.SpawnMaxOffset,
		"enemies spawn offset must satisfy 0 <= min < max, got [%d, %d)", c.Enemies.SpawnMinOffset, c.Enemies.SpawnMaxOffset)
	check(c.Decor.Clouds >= 0 && c.Decor.Bushes >= 0, "decor counts must not be negative")
	check(c.Decor.CloudMinY < c.Decor.CloudMaxY, "decor cloud band must satisfy min < max")
	check(c.Decor.CloudRespawnSpread > 0, "decor.cloud_respawn_spread must be positive")
	check(c.Decor.BushRespawnSpread > 0, "decor.bush_respawn_spread must be positive")
	check(c.Gameplay.WinScore > 0, "gameplay.win_score must be positive")
	check(c.Text.Font == FontBasic || c.Text.Font == FontBlocks, "text.font must be %q or %q, got %q", FontBasic, FontBlocks, c.Text.Font)

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
