package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagRuns    bool
	flagBySeed  bool
	flagScoreN  int
	flagClearDB bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores and run history",
	Long: `Display the top scores for a variant (default: jumper).

With --runs, lists the most recent runs with the seed each one used,
so a run can be replayed with 'jumper play --seed <seed>'.
With --by-seed, lists every run that used --seed.

Examples:
  jumper scores
  jumper scores jumper_classic -n 20
  jumper scores --runs
  jumper scores --by-seed --seed 42`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeVariants,
	RunE:              runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "Show recent runs instead of high scores")
	scoresCmd.Flags().BoolVar(&flagBySeed, "by-seed", false, "Show runs that used --seed")
	scoresCmd.Flags().IntVarP(&flagScoreN, "limit", "n", 10, "Number of rows to show")
	scoresCmd.Flags().BoolVar(&flagClearDB, "clear", false, "Delete all scores and runs for the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	switch {
	case flagClearDB:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", gameID)
		return nil

	case flagBySeed:
		runs, err := store.RunsBySeed(flagSeed)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Runs with seed %d\n\n", flagSeed)
		printRuns(cmd, runs)
		return nil

	case flagRuns:
		runs, err := store.RecentRuns(gameID, flagScoreN)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Recent Runs - %s\n\n", titleOf(gameID))
		printRuns(cmd, runs)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoreN)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", titleOf(gameID))

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'jumper play %s' to set the first distance!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Distance", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "--------", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.BestRun(gameID); err == nil && best != nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best run: %d (seed %d, %d jumps)\n", best.Distance, best.Seed, best.Jumps)
	}
	return nil
}

func printRuns(cmd *cobra.Command, runs []storage.Run) {
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return
	}

	fmt.Fprintf(out, "  %-16s  %-14s  %-8s  %-7s  %-5s  %-20s  %-5s  %s\n",
		"Date", "Variant", "Distance", "Frames", "Jumps", "Seed", "End", "Source")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-16s  %-14s  %-8d  %-7d  %-5d  %-20d  %-5s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.GameID, r.Distance, r.Frames, r.Jumps, r.Seed, r.EndReason, r.Source)
	}
}

// titleOf returns the display name of a registered variant.
func titleOf(id string) string {
	for _, g := range registry.List() {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}
