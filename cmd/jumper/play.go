package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant in the terminal",
	Long: `Start playing the specified variant (default: jumper).

Controls:
  Space/Up/W  - Jump; hold to glide
  P           - Pause
  Esc/B       - Pause, or leave when paused or over
  R           - Restart (after game over)
  Ctrl+S      - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C    - Quit

Terminals report key repeats, not releases: a key counts as held while
repeats keep arriving within render.hold_window_ms.

Difficulty options:
  easy   - Start slow, three jumps in the air
  normal - Start at 30% speed-up, progresses to max
  hard   - Start at 70% speed-up, a single air jump
  fixed  - No progression, stays at config's initial level

Examples:
  jumper play
  jumper play jumper_classic
  jumper play --difficulty hard
  jumper play --config ./my-jumper.toml --watch`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeVariants,
	RunE:              runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when the file changes")
}

// terminalRuntime builds a runtime config for the current terminal.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, continuing without one on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err = playOnce(gameID, store, terminalRuntime())
	return err
}

// playOnce runs one terminal game and reports whether the player asked
// for the menu.
func playOnce(gameID string, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return false, err
	}

	model := tui.NewModel(game, store, cfg).WithLogger(logger)

	if flagWatch {
		if flagConfig == "" {
			return false, fmt.Errorf("--watch needs --config")
		}
		w, err := config.NewWatcher(flagConfig)
		if err != nil {
			return false, fmt.Errorf("watch config: %w", err)
		}
		defer w.Close()
		model = model.WithWatcher(w)
	}

	return tui.Run(model)
}
