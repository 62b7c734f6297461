package config

import (
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// DifficultyManager turns distance or elapsed frames into the body's
// horizontal speed.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager with the initial level clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0, 1),
	}
}

// SetInitialLevel overrides the starting level.
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = core.ClampF(level, 0, 1)
}

// SetEnabled enables or disables progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level moves during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// progress is how far the run is toward max_at, in [0, 1].
func (d *DifficultyManager) progress(distance, frames int) float64 {
	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	switch d.cfg.Progression.Type {
	case "score", "":
		return core.ClampF(float64(distance)/maxAt, 0, 1)
	case "time":
		return core.ClampF(float64(frames)/maxAt, 0, 1)
	}
	return 0
}

// Level returns the current level, moving linearly from the initial level
// to 1 as the run approaches max_at.
func (d *DifficultyManager) Level(distance, frames int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}
	return d.initialLevel + d.progress(distance, frames)*(1-d.initialLevel)
}

// Speed returns the horizontal speed for the current level. It grows from
// base_speed toward base_speed * (1 + speed_multiplier) and never exceeds
// max_velocity, so the body cannot outrun its own terminal fall speed.
func (d *DifficultyManager) Speed(p PhysicsConfig, distance, frames int) float64 {
	speed := p.BaseSpeed * (1 + d.Level(distance, frames)*d.cfg.Scaling.SpeedMultiplier)
	if p.MaxVelocity > 0 {
		speed = math.Min(speed, p.MaxVelocity)
	}
	return speed
}
