package jumper

import (
	"fmt"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/sim"
)

// SimConfig translates a loaded variant config into a world config.
// The view is scaled to the host surface: screenW x screenH cells of
// CellWidth x CellHeight world units each. Non-positive screen sizes keep
// the configured view.
func SimConfig(cfg config.JumperConfig, screenW, screenH int) (sim.Config, error) {
	if err := cfg.Validate(); err != nil {
		return sim.Config{}, err
	}

	patterns := make([]sim.Pattern, 0, len(cfg.Terrain.Patterns))
	for _, name := range cfg.Terrain.Patterns {
		p, err := sim.ParsePattern(name)
		if err != nil {
			return sim.Config{}, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}
		patterns = append(patterns, p)
	}

	selection := sim.SelectRandom
	if cfg.Terrain.Selection == "cycle" {
		selection = sim.SelectCycle
	}

	viewW, viewH := cfg.View.Width, cfg.View.Height
	if screenW > 0 && screenH > 0 {
		viewW = float64(screenW) * cfg.View.CellWidth
		viewH = float64(screenH) * cfg.View.CellHeight
	}

	return sim.Config{
		ViewWidth:   viewW,
		ViewHeight:  viewH,
		Radius:      cfg.Physics.Radius,
		Speed:       cfg.Physics.BaseSpeed,
		StartDrop:   cfg.Physics.StartDrop,
		HardLanding: cfg.Physics.HardLanding,
		Physics:     physicsOf(cfg),
		Terrain: sim.TerrainConfig{
			Patterns:     patterns,
			Selection:    selection,
			PairedSlopes: cfg.Terrain.PairedSlopes,
			FlatStart:    cfg.Terrain.FlatStart,
			PaletteSize:  cfg.Terrain.PaletteSize,
		},
	}, nil
}

func physicsOf(cfg config.JumperConfig) sim.Physics {
	return sim.Physics{
		GravityDefault: cfg.Physics.GravityDefault,
		GravityHold:    cfg.Physics.GravityHold,
		JumpVelocity:   cfg.Physics.JumpVelocity,
		MaxVelocity:    cfg.Physics.MaxVelocity,
		MaxJumps:       cfg.Physics.MaxJumps,
		RotationStep:   cfg.Physics.RotationStep,
	}
}
