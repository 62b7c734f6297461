package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

//go:embed defaults/jumper_classic.yaml
var defaultJumperClassicYAML []byte

// DefaultJumperConfig returns the default jumper configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		View: ViewConfig{
			Width:      640,
			Height:     384,
			CellWidth:  8,
			CellHeight: 16,
		},
		Physics: PhysicsConfig{
			GravityDefault: 0.7,
			GravityHold:    0.2,
			JumpVelocity:   -7,
			MaxVelocity:    10,
			MaxJumps:       2,
			RotationStep:   30,
			Radius:         16,
			BaseSpeed:      3,
			StartDrop:      5,
			HardLanding:    24,
		},
		Terrain: TerrainConfig{
			Selection:    "random",
			PairedSlopes: true,
			FlatStart:    true,
			PaletteSize:  2,
		},
		Render: RenderConfig{
			HoldWindowMS: 120,
			Palette:      []string{"dimgray", "firebrick"},
			Background:   "midnightblue",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultJumperClassicConfig returns the configuration of the classic variant:
// three cycled patterns, softer gravity and no glide.
func DefaultJumperClassicConfig() JumperConfig {
	cfg := DefaultJumperConfig()
	cfg.Physics.GravityDefault = 0.15
	cfg.Physics.GravityHold = 0.15
	cfg.Physics.JumpVelocity = -5
	cfg.Terrain.Patterns = []string{"flat", "slope_descent", "slope_ascent"}
	cfg.Terrain.Selection = "cycle"
	cfg.Render.Palette = []string{"slategray", "darkorange"}
	cfg.Difficulty.Progression = ProgressionConfig{Type: "none"}
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case "jumper":
		return defaultJumperYAML
	case "jumper_classic":
		return defaultJumperClassicYAML
	default:
		return nil
	}
}
