// Package gfx hosts the jumper in a desktop window with ebiten.
// Mouse button, touch, and the space bar all feed the same tap/hold channel.
package gfx

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/sim"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// SourceWindow tags runs recorded from the window host.
const SourceWindow = "window"

// WindowRuntime is the runtime handed to the game. At the default
// 8x16 cell size it yields a 640x384 view.
func WindowRuntime(tickRate int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: tickRate, Seed: seed}
}

// Controller owns the host-independent part of the window loop:
// pointer edges in, one game step per tick, run history out.
type Controller struct {
	game     *jumper.Game
	runtime  core.RuntimeConfig
	adapter  sim.InputAdapter
	frame    core.InputFrame
	store    *storage.Store
	log      *log.Logger
	nextSeed func() int64
	saved    bool
}

// NewController creates a controller. A nil store disables run history.
func NewController(game *jumper.Game, store *storage.Store, runtime core.RuntimeConfig) *Controller {
	return &Controller{
		game:     game,
		runtime:  runtime,
		frame:    core.NewInputFrame(),
		store:    store,
		log:      log.New(io.Discard),
		nextSeed: func() int64 { return time.Now().UnixNano() },
	}
}

// SetLogger routes controller logs.
func (c *Controller) SetLogger(l *log.Logger) {
	if l != nil {
		c.log = l
	}
}

// Start resets the game for a new run.
func (c *Controller) Start() {
	if c.runtime.Seed == 0 {
		c.runtime.Seed = c.nextSeed()
	}
	c.game.Reset(c.runtime)
	c.adapter = sim.InputAdapter{}
	c.saved = false
}

// PointerDown records a press of any jump control.
func (c *Controller) PointerDown() {
	c.adapter.TapBegin()
}

// PointerUp records that every jump control is released.
func (c *Controller) PointerUp() {
	c.adapter.TapEnd()
}

// TogglePause pauses or resumes on the next tick.
func (c *Controller) TogglePause() {
	c.frame.Set(core.ActionPause)
}

// Restart starts a new run with a fresh seed once the current one is over.
func (c *Controller) Restart() bool {
	if !c.game.State().GameOver {
		return false
	}
	c.runtime.Seed = c.nextSeed()
	c.Start()
	return true
}

// Tick advances the game by one frame.
func (c *Controller) Tick() core.GameState {
	in := c.adapter.Snapshot()
	if in.Tap {
		c.frame.Set(core.ActionJump)
	}
	c.frame.SetHeld(core.ActionJump, in.Hold)

	state := c.game.Step(c.frame).State
	c.frame.Clear()

	if state.GameOver {
		c.Finish()
	}
	return state
}

// Finish records the current run once.
func (c *Controller) Finish() {
	if c.saved || c.store == nil {
		return
	}
	c.saved = true

	stats := c.game.Stats()
	if stats.Frames == 0 {
		return
	}
	if stats.EndReason == jumper.EndFell && stats.Distance > 0 {
		if _, err := c.store.SaveScore(stats.Variant, stats.Distance); err != nil {
			c.log.Warn("save score", "err", err)
		}
	}
	if _, err := c.store.SaveRun(stats.Record(SourceWindow)); err != nil {
		c.log.Warn("save run", "err", err)
	}
}

// Game returns the hosted game.
func (c *Controller) Game() *jumper.Game {
	return c.game
}
