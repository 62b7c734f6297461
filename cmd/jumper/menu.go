package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the variant picker menu",
	Long: `Start in interactive menu mode. This is also what plain 'jumper' does.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a run ends, Esc returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Scores and run history
  Q            - Quit

Examples:
  jumper menu
  jumper menu --fps 30
  jumper menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalRuntime()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			// Each run from the menu gets its own seed unless one was given
			run := cfg
			if run.Seed == 0 {
				run.Seed = time.Now().UnixNano()
			}
			backToMenu, err := playOnce(result.GameID, store, run)
			if err != nil {
				return err
			}
			if !backToMenu {
				return nil
			}
		}
	}
}
