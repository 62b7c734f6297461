package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/platform/gfx"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play a variant in a desktop window",
	Long: `Open a desktop window and play the specified variant (default: jumper).

Controls:
  Mouse/Touch/Space  - Tap to jump, hold to glide
  P                  - Pause
  R                  - Restart (after game over)
  Esc/Q              - Quit

Examples:
  jumper window
  jumper window jumper_classic --seed 42`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeVariants,
	RunE:              runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	game, err := createJumper(gameID)
	if err != nil {
		return err
	}

	return gfx.Run(game, store, gfx.WindowRuntime(flagFPS, flagSeed), logger)
}
