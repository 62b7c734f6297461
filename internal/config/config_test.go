package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search path only finds what a test puts there.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultsAreValid(t *testing.T) {
	for name, cfg := range map[string]JumperConfig{
		"jumper":         DefaultJumperConfig(),
		"jumper_classic": DefaultJumperClassicConfig(),
	} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s defaults invalid: %v", name, err)
		}
	}
}

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		load func(string) (JumperConfig, error)
		want JumperConfig
	}{
		{"jumper", LoadJumper, DefaultJumperConfig()},
		{"jumper_classic", LoadJumperClassic, DefaultJumperClassicConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.load("")
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if got.View != tt.want.View {
				t.Errorf("view = %+v, want %+v", got.View, tt.want.View)
			}
			if got.Physics != tt.want.Physics {
				t.Errorf("physics = %+v, want %+v", got.Physics, tt.want.Physics)
			}
			if len(got.Terrain.Patterns) != len(tt.want.Terrain.Patterns) {
				t.Errorf("patterns = %v, want %v", got.Terrain.Patterns, tt.want.Terrain.Patterns)
			}
			if got.Terrain.Selection != tt.want.Terrain.Selection {
				t.Errorf("selection = %q, want %q", got.Terrain.Selection, tt.want.Terrain.Selection)
			}
			if len(GetDefaultYAML(tt.name)) == 0 {
				t.Error("embedded YAML missing")
			}
		})
	}
}

func TestLoadCustomYAMLOverridesDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "physics:\n  jump_velocity: -9\nterrain:\n  patterns: [flat, pits]\n")

	cfg, err := LoadJumper(path)
	if err != nil {
		t.Fatalf("LoadJumper: %v", err)
	}
	if cfg.Physics.JumpVelocity != -9 {
		t.Errorf("jump_velocity = %f, want -9", cfg.Physics.JumpVelocity)
	}
	if cfg.Physics.GravityDefault != 0.7 {
		t.Errorf("gravity_default = %f, untouched fields should keep defaults", cfg.Physics.GravityDefault)
	}
	if len(cfg.Terrain.Patterns) != 2 || cfg.Terrain.Patterns[1] != "pits" {
		t.Errorf("patterns = %v", cfg.Terrain.Patterns)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, `
[physics]
jump_velocity = -9.5
max_jumps = 1

[terrain]
selection = "cycle"
patterns = ["flat", "cliff"]
`)

	cfg, err := LoadJumperClassic(path)
	if err != nil {
		t.Fatalf("LoadJumperClassic: %v", err)
	}
	if cfg.Physics.JumpVelocity != -9.5 || cfg.Physics.MaxJumps != 1 {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if cfg.Physics.GravityDefault != 0.15 {
		t.Errorf("gravity_default = %f, want classic default 0.15", cfg.Physics.GravityDefault)
	}
	if cfg.Terrain.Selection != "cycle" || len(cfg.Terrain.Patterns) != 2 {
		t.Errorf("terrain = %+v", cfg.Terrain)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	isolate(t)
	if _, err := LoadJumper("/nonexistent/jumper.yaml"); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"zero width", "a.yaml", "view:\n  width: 0\n"},
		{"bad selection", "b.yaml", "terrain:\n  selection: shuffle\n"},
		{"no jumps", "c.toml", "[physics]\nmax_jumps = 0\n"},
		{"triple jump", "e.toml", "[physics]\nmax_jumps = 3\n"},
		{"negative speed", "d.yaml", "physics:\n  base_speed: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			writeFile(t, path, tt.content)
			_, err := LoadJumper(path)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "broken.yaml")
	writeFile(t, path, "physics: [not, a, map\n")

	_, err := LoadJumper(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("parse errors should not be reported as invalid config")
	}
}

func TestSearchOrder(t *testing.T) {
	dir := isolate(t)
	home := os.Getenv("HOME")

	// Local configs directory is used when no user config exists.
	writeFile(t, filepath.Join(dir, "configs", "jumper.toml"), "[physics]\nbase_speed = 4.0\n")
	cfg, err := LoadJumper("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Physics.BaseSpeed != 4 {
		t.Errorf("base_speed = %f, want 4 from ./configs", cfg.Physics.BaseSpeed)
	}

	// User config takes priority over the local directory.
	writeFile(t, filepath.Join(home, ".arcade", "configs", "jumper.yaml"), "physics:\n  base_speed: 5\n")
	cfg, err = LoadJumper("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Physics.BaseSpeed != 5 {
		t.Errorf("base_speed = %f, want 5 from user config", cfg.Physics.BaseSpeed)
	}

	// Invalid user config is skipped.
	writeFile(t, filepath.Join(home, ".arcade", "configs", "jumper.yaml"), "physics:\n  base_speed: 0\n")
	cfg, err = LoadJumper("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Physics.BaseSpeed != 4 {
		t.Errorf("base_speed = %f, want fallback to ./configs", cfg.Physics.BaseSpeed)
	}
}

func TestApplyJumperPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		enabled  bool
		level    float64
		maxJumps int
	}{
		{DifficultyEasy, true, 0.0, 2},
		{DifficultyNormal, true, 0.3, 2},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultJumperConfig()
			ApplyJumperPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("initial level = %f, want %f", cfg.Difficulty.InitialLevel, tt.level)
			}
			if cfg.Physics.MaxJumps != tt.maxJumps {
				t.Errorf("max jumps = %d, want %d", cfg.Physics.MaxJumps, tt.maxJumps)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("HARD"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(HARD) = %q, %v", p, err)
	}
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 0); !approx(got, 0.2) {
		t.Errorf("level at 0 = %f, want 0.2", got)
	}
	if got := dm.Level(500, 0); !approx(got, 0.6) {
		t.Errorf("level at 500 = %f, want 0.6", got)
	}
	if got := dm.Level(5000, 0); !approx(got, 1.0) {
		t.Errorf("level past max = %f, want 1.0", got)
	}
	phys := PhysicsConfig{BaseSpeed: 3, MaxVelocity: 10}
	if got := dm.Speed(phys, 5000, 0); !approx(got, 6) {
		t.Errorf("speed at max = %f, want 6", got)
	}
	if got := dm.Speed(PhysicsConfig{BaseSpeed: 3, MaxVelocity: 5}, 5000, 0); !approx(got, 5) {
		t.Errorf("capped speed = %f, want max_velocity 5", got)
	}

	dm.SetEnabled(false)
	if dm.IsEnabled() {
		t.Error("expected disabled")
	}
	if got := dm.Speed(phys, 5000, 0); !approx(got, 3.6) {
		t.Errorf("fixed speed = %f, want 3.6", got)
	}

	timed := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	})
	if got := timed.Level(999999, 50); !approx(got, 0.5) {
		t.Errorf("time level = %f, want 0.5", got)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jumper.yaml")
	writeFile(t, path, "physics:\n  base_speed: 3\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	writeFile(t, filepath.Join(dir, "other.yaml"), "x: 1\n")
	writeFile(t, path, "physics:\n  base_speed: 4\n")

	select {
	case got := <-w.Events:
		if got != w.Path() {
			t.Errorf("event for %q, want %q", got, w.Path())
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no event after writing the watched file")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	for range w.Events {
	}
}
