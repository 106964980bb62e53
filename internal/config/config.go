// Package config provides YAML-based configuration loading for the runner.
package config

// Config contains all tunables of the runner simulation.
type Config struct {
	Screen   Screen   `yaml:"screen"`
	Physics  Physics  `yaml:"physics"`
	Player   Player   `yaml:"player"`
	Enemies  Enemies  `yaml:"enemies"`
	Decor    Decor    `yaml:"decor"`
	Gameplay Gameplay `yaml:"gameplay"`
	Text     Text     `yaml:"text"`
}

// Screen defines the logical playfield.
type Screen struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	GroundY    int     `yaml:"ground_y"`
	GroundTile int     `yaml:"ground_tile"`
	ScrollStep float64 `yaml:"scroll_step"`
}

// Physics defines vertical motion and world scroll.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// Player defines the player's spawn pose and size.
type Player struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	RestY  float64 `yaml:"rest_y"`
}

// Dimensions is a width/height pair.
type Dimensions struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Enemies defines enemy sizes and spawning.
type Enemies struct {
	Turtle         Dimensions `yaml:"turtle"`
	Rabbit         Dimensions `yaml:"rabbit"`
	Mushroom       Dimensions `yaml:"mushroom"`
	SpawnMinTicks  int        `yaml:"spawn_min_ticks"`
	SpawnMaxTicks  int        `yaml:"spawn_max_ticks"`
	SpawnMinOffset int        `yaml:"spawn_min_offset"`
	SpawnMaxOffset int        `yaml:"spawn_max_offset"`
}

// Decor defines the recycled background decorations.
type Decor struct {
	Clouds             int     `yaml:"clouds"`
	CloudWidth         int     `yaml:"cloud_width"`
	CloudHeight        int     `yaml:"cloud_height"`
	CloudSpeed         float64 `yaml:"cloud_speed"`
	CloudMinY          int     `yaml:"cloud_min_y"`
	CloudMaxY          int     `yaml:"cloud_max_y"`
	CloudRespawnSpread int     `yaml:"cloud_respawn_spread"`
	Bushes             int     `yaml:"bushes"`
	BushWidth          int     `yaml:"bush_width"`
	BushHeight         int     `yaml:"bush_height"`
	BushY              float64 `yaml:"bush_y"`
	BushSpeed          float64 `yaml:"bush_speed"`
	BushRespawnSpread  int     `yaml:"bush_respawn_spread"`
}

// Gameplay defines win conditions.
type Gameplay struct {
	WinScore int `yaml:"win_score"`
}

// Text selects how HUD text is drawn.
type Text struct {
	Font string `yaml:"font"` // "basic" or "blocks"
}

// Font names accepted in Text.Font.
const (
	FontBasic  = "basic"
	FontBlocks = "blocks"
)
