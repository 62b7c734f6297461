// Package jumper implements the endless side-scrolling jumper.
// The ball runs right on its own; the player taps to jump (twice in the air)
// and holds to fall slower. The run ends when the ball drops out of view.
package jumper

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/sim"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// Variant describes one registered flavour of the game.
type Variant struct {
	ID    string
	Title string
	Load  func(customPath string) (config.JumperConfig, error)
	// Default is used when Load fails.
	Default func() config.JumperConfig
}

var (
	// VariantJumper is the full game: every terrain pattern, glide on hold.
	VariantJumper = Variant{
		ID:      "jumper",
		Title:   "Jumper",
		Load:    config.LoadJumper,
		Default: config.DefaultJumperConfig,
	}
	// VariantClassic cycles flat and slope runs with soft gravity.
	VariantClassic = Variant{
		ID:      "jumper_classic",
		Title:   "Jumper Classic",
		Load:    config.LoadJumperClassic,
		Default: config.DefaultJumperClassicConfig,
	}
)

// End reasons recorded in run history.
const (
	EndFell    = "fell"
	EndQuit    = "quit"
	EndRunning = ""
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// ConfigPath returns the custom config path, if any.
func ConfigPath() string {
	return configPath
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config's own difficulty section.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes game logs. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// RunStats summarizes a run for the history table.
type RunStats struct {
	Variant      string
	Seed         int64
	Distance     int
	Frames       uint64
	Jumps        int
	HardLandings int
	EndReason    string
}

// Record converts the stats into a history row tagged with source.
func (s RunStats) Record(source string) storage.Run {
	return storage.Run{
		GameID:       s.Variant,
		Seed:         s.Seed,
		Distance:     s.Distance,
		Frames:       int64(s.Frames),
		Jumps:        s.Jumps,
		HardLandings: s.HardLandings,
		EndReason:    s.EndReason,
		Source:       source,
	}
}

// Game implements registry.Game on top of a sim.World.
type Game struct {
	variant      Variant
	cfg          config.JumperConfig
	runtime      core.RuntimeConfig
	world        *sim.World
	difficulty   *config.DifficultyManager
	score        int
	jumps        int
	hardLandings int
	gameOver     bool
	paused       bool
	endReason    string
	events       []sim.Event // From the last Step
	log          *log.Logger
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v, log: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset loads the variant config and starts a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger.With("game", g.variant.ID)

	cfg, err := g.variant.Load(configPath)
	if err != nil {
		g.log.Warn("using default config", "path", configPath, "err", err)
		cfg = g.variant.Default()
	}
	if difficultyPreset != "" {
		config.ApplyJumperPreset(&cfg, difficultyPreset)
	}

	simCfg, err := SimConfig(cfg, runtime.ScreenW, runtime.ScreenH)
	if err != nil {
		g.log.Warn("config rejected, using defaults", "err", err)
		cfg = g.variant.Default()
		simCfg, _ = SimConfig(cfg, runtime.ScreenW, runtime.ScreenH)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.world = sim.NewWorld(simCfg, sim.NewRandom(runtime.Seed))
	g.score = 0
	g.jumps = 0
	g.hardLandings = 0
	g.gameOver = false
	g.paused = false
	g.endReason = EndRunning
	g.events = nil

	g.log.Debug("run started", "seed", runtime.Seed, "view_w", simCfg.ViewWidth, "view_h", simCfg.ViewHeight)
}

// ApplyConfig swaps physics and difficulty between frames, for hot reload.
// Terrain and view changes take effect on the next Reset.
func (g *Game) ApplyConfig(cfg config.JumperConfig) error {
	if difficultyPreset != "" {
		config.ApplyJumperPreset(&cfg, difficultyPreset)
	}
	if _, err := SimConfig(cfg, g.runtime.ScreenW, g.runtime.ScreenH); err != nil {
		return err
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	if g.world != nil {
		g.world.SetPhysics(physicsOf(cfg))
	}
	g.log.Info("config reloaded")
	return nil
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.SetSpeed(g.difficulty.Speed(g.cfg.Physics, g.score, int(g.world.Frame())))

	res := g.world.Step(sim.Input{
		Tap:  in.Has(core.ActionJump),
		Hold: in.IsHeld(core.ActionJump),
	})
	g.score = int(res.Distance)

	for _, e := range res.Events {
		switch e.Kind {
		case sim.EventJump:
			g.jumps++
		case sim.EventHardLanding:
			g.hardLandings++
			g.log.Debug("hard landing", "frame", e.Frame, "x", e.X, "depth", e.Value)
		case sim.EventFell:
			g.gameOver = true
			g.endReason = EndFell
			g.log.Info("run over", "distance", g.score, "frames", e.Frame, "jumps", g.jumps)
		}
	}
	g.events = append(g.events, res.Events...)

	return core.StepResult{State: g.State()}
}

// Events returns the sim events raised by the last Step.
func (g *Game) Events() []sim.Event {
	return g.events
}

// World exposes the simulation for autopilots and graphical hosts.
func (g *Game) World() *sim.World {
	return g.world
}

// Config returns the active variant config.
func (g *Game) Config() config.JumperConfig {
	return g.cfg
}

// Stats returns the run summary. A run still in progress reports EndQuit.
func (g *Game) Stats() RunStats {
	reason := g.endReason
	if reason == EndRunning {
		reason = EndQuit
	}
	var frames uint64
	if g.world != nil {
		frames = g.world.Frame()
	}
	return RunStats{
		Variant:      g.variant.ID,
		Seed:         g.runtime.Seed,
		Distance:     g.score,
		Frames:       frames,
		Jumps:        g.jumps,
		HardLandings: g.hardLandings,
		EndReason:    reason,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the variants with the registry
func init() {
	registry.Register(VariantJumper.ID, func() registry.Game {
		return New(VariantJumper)
	})
	registry.Register(VariantClassic.ID, func() registry.Game {
		return New(VariantClassic)
	})
}
