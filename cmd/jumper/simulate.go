package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/autopilot"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// SourceSimulate tags runs recorded by the simulate command.
const SourceSimulate = "simulate"

var (
	flagFrames    int
	flagScript    string
	flagLookahead int
	flagRecord    bool
	flagRepeat    int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Run the autopilot without a display",
	Long: `Run a variant headless with an autopilot and print the result.

The built-in policy looks a few frames ahead and jumps over pits and walls.
A tengo script can replace it with --script; the script must define

  decide := func(view, state) { return {tap: bool, hold: bool} }

where view has x, y, vx, vy, radius, frame, jumps, max_jumps, grounded,
surface and surface_at(x), and state is a map kept between frames.

Runs are deterministic: the same seed, config and policy give the same result.

Examples:
  jumper simulate --seed 42
  jumper simulate --frames 100000 --repeat 10 --record
  jumper simulate --script ./policy.tengo`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeVariants,
	RunE:              runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 36000, "Stop after this many frames (0 = until the ball falls)")
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Tengo script policy")
	simulateCmd.Flags().IntVar(&flagLookahead, "lookahead", autopilot.DefaultLookaheadFrames, "Frames the built-in policy looks ahead")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Save each run to the history table")
	simulateCmd.Flags().IntVar(&flagRepeat, "repeat", 1, "Number of runs; each after the first uses the next seed")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}
	if flagRepeat < 1 {
		return fmt.Errorf("--repeat must be at least 1")
	}

	var store *storage.Store
	if flagRecord {
		if store, err = storage.Open(flagDBPath); err != nil {
			return err
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-20s  %-8s  %-7s  %-5s  %-4s  %s\n", "Seed", "Distance", "Frames", "Jumps", "Hard", "End")

	best := 0
	for i := range flagRepeat {
		policy, err := newPolicy()
		if err != nil {
			return err
		}

		game, err := createJumper(gameID)
		if err != nil {
			return err
		}
		game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed + int64(i)})

		stats, err := autopilot.Drive(ctx, game, policy, flagFrames)
		if errors.Is(err, context.Canceled) {
			logger.Warn("simulation interrupted", "frame", stats.Frames)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "  %-20d  %-8d  %-7d  %-5d  %-4d  %s\n",
			stats.Seed, stats.Distance, stats.Frames, stats.Jumps, stats.HardLandings, endLabel(stats))
		best = max(best, stats.Distance)

		if store != nil {
			if _, err := store.SaveRun(stats.Record(SourceSimulate)); err != nil {
				return err
			}
		}
	}

	if flagRepeat > 1 {
		fmt.Fprintf(out, "\nBest distance: %d\n", best)
	}
	return nil
}

// newPolicy builds a fresh policy per run so script state does not leak.
func newPolicy() (autopilot.Policy, error) {
	if flagScript != "" {
		return autopilot.LoadScriptPolicy(flagScript)
	}
	return autopilot.Lookahead{Frames: flagLookahead}, nil
}

// endLabel reports a frame-capped run as "limit" rather than "quit".
func endLabel(s jumper.RunStats) string {
	if s.EndReason == jumper.EndQuit {
		return "limit"
	}
	return s.EndReason
}
