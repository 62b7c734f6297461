package gfx

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

func newTestController(t *testing.T, store *storage.Store) *Controller {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	c := NewController(jumper.New(jumper.VariantJumper), store, WindowRuntime(60, 42))
	seed := int64(100)
	c.nextSeed = func() int64 { seed++; return seed }
	c.Start()
	return c
}

func TestWindowRuntimeView(t *testing.T) {
	c := newTestController(t, nil)
	cfg := c.Game().World().Config()
	if cfg.ViewWidth != 640 || cfg.ViewHeight != 384 {
		t.Errorf("view = %vx%v, want 640x384", cfg.ViewWidth, cfg.ViewHeight)
	}
}

func TestControllerTapAndHold(t *testing.T) {
	c := newTestController(t, nil)

	c.PointerDown()
	c.Tick()
	if got := c.Game().Stats().Jumps; got != 1 {
		t.Fatalf("jumps = %d, want 1", got)
	}

	// Holding does not jump again
	for range 5 {
		c.Tick()
	}
	if got := c.Game().Stats().Jumps; got != 1 {
		t.Errorf("jumps while held = %d, want 1", got)
	}
	if !c.frame.IsHeld(core.ActionJump) {
		t.Error("jump should be held until PointerUp")
	}

	c.PointerUp()
	c.Tick()
	if c.frame.IsHeld(core.ActionJump) {
		t.Error("jump should be released after PointerUp")
	}
}

func TestControllerPauseAndRestart(t *testing.T) {
	c := newTestController(t, nil)

	c.TogglePause()
	if !c.Tick().Paused {
		t.Fatal("TogglePause should pause on the next tick")
	}
	if c.Restart() {
		t.Error("Restart should be refused while the run is live")
	}
}

func TestControllerFinishRecordsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	c := newTestController(t, store)
	for range 20 {
		c.Tick()
	}
	c.Finish()
	c.Finish()

	runs, err := store.RecentRuns(jumper.VariantJumper.ID, 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Source != SourceWindow || runs[0].Seed != 42 || runs[0].Frames != 20 {
		t.Errorf("run = %+v", runs[0])
	}
}
