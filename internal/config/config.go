// Package config provides YAML/TOML game configuration loading and
// difficulty management for the jumper variants.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned by Validate and the loaders for configs that
// cannot drive a simulation.
var ErrInvalidConfig = errors.New("invalid config")

// JumperConfig contains all configuration for one jumper variant.
type JumperConfig struct {
	View       ViewConfig       `yaml:"view" toml:"view"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Terrain    TerrainConfig    `yaml:"terrain" toml:"terrain"`
	Render     RenderConfig     `yaml:"render" toml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// ViewConfig defines the visible region in world units.
type ViewConfig struct {
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`   // World units per terminal column
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"` // World units per terminal row
}

// PhysicsConfig defines body parameters. All values are per frame.
type PhysicsConfig struct {
	GravityDefault float64 `yaml:"gravity_default" toml:"gravity_default"`
	GravityHold    float64 `yaml:"gravity_hold" toml:"gravity_hold"`
	JumpVelocity   float64 `yaml:"jump_velocity" toml:"jump_velocity"`
	MaxVelocity    float64 `yaml:"max_velocity" toml:"max_velocity"`
	MaxJumps       int     `yaml:"max_jumps" toml:"max_jumps"`
	RotationStep   float64 `yaml:"rotation_step" toml:"rotation_step"`
	Radius         float64 `yaml:"radius" toml:"radius"`
	BaseSpeed      float64 `yaml:"base_speed" toml:"base_speed"`
	StartDrop      float64 `yaml:"start_drop" toml:"start_drop"`
	HardLanding    float64 `yaml:"hard_landing" toml:"hard_landing"` // 0 disables the event
}

// TerrainConfig defines how ground is generated.
type TerrainConfig struct {
	Patterns     []string `yaml:"patterns" toml:"patterns"`   // Empty means every pattern
	Selection    string   `yaml:"selection" toml:"selection"` // "random" or "cycle"
	PairedSlopes bool     `yaml:"paired_slopes" toml:"paired_slopes"`
	FlatStart    bool     `yaml:"flat_start" toml:"flat_start"`
	PaletteSize  int      `yaml:"palette_size" toml:"palette_size"`
}

// RenderConfig defines host-side presentation.
type RenderConfig struct {
	HoldWindowMS int      `yaml:"hold_window_ms" toml:"hold_window_ms"` // Key repeat gap still counted as held
	Palette      []string `yaml:"palette" toml:"palette"`               // colornames for the graphical host
	Background   string   `yaml:"background" toml:"background"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// MaxJumpCap is the most jumps a body may take between groundings.
const MaxJumpCap = 2

// Validate reports the first setting that would break the simulation.
func (c JumperConfig) Validate() error {
	switch {
	case c.View.Width <= 0 || c.View.Height <= 0:
		return fmt.Errorf("%w: view size %.0fx%.0f", ErrInvalidConfig, c.View.Width, c.View.Height)
	case c.View.CellWidth <= 0 || c.View.CellHeight <= 0:
		return fmt.Errorf("%w: cell size %.0fx%.0f", ErrInvalidConfig, c.View.CellWidth, c.View.CellHeight)
	case c.Physics.Radius <= 0:
		return fmt.Errorf("%w: radius must be positive", ErrInvalidConfig)
	case c.Physics.BaseSpeed <= 0:
		return fmt.Errorf("%w: base_speed must be positive", ErrInvalidConfig)
	case c.Physics.MaxVelocity <= 0:
		return fmt.Errorf("%w: max_velocity must be positive", ErrInvalidConfig)
	case c.Physics.MaxJumps < 1 || c.Physics.MaxJumps > MaxJumpCap:
		return fmt.Errorf("%w: max_jumps must be between 1 and %d", ErrInvalidConfig, MaxJumpCap)
	case c.Terrain.PaletteSize < 1:
		return fmt.Errorf("%w: palette_size must be at least 1", ErrInvalidConfig)
	}

	switch c.Terrain.Selection {
	case "", "random", "cycle":
	default:
		return fmt.Errorf("%w: unknown selection %q", ErrInvalidConfig, c.Terrain.Selection)
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		return fmt.Errorf("%w: unknown progression %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}

	for _, p := range c.Terrain.Patterns {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: empty pattern name", ErrInvalidConfig)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown names are rejected.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(name)); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyJumperPreset modifies the config based on a difficulty preset.
func ApplyJumperPreset(cfg *JumperConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
