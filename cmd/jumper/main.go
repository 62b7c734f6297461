// jumper is an endless side-scrolling jumper for the terminal and the desktop.
//
// Usage:
//
//	jumper                     - Start the variant menu
//	jumper list                - List available variants
//	jumper play [variant]      - Play in the terminal
//	jumper window [variant]    - Play in a desktop window
//	jumper serve               - Start SSH server for remote play
//	jumper scores [variant]    - Show high scores and recent runs
//	jumper simulate [variant]  - Run the autopilot headless
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--config <path>      - Use a custom YAML or TOML config
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logFile is the open --log-file, closed after the command runs.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		_ = logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Jumper - an endless side-scroller for your terminal",
	Long: `Jumper is an endless side-scrolling game. The ball runs on its own;
tap to jump (twice in the air) and hold to fall slower.

Available commands:
  list      - Show all variants
  play      - Play a variant in the terminal
  window    - Play a variant in a desktop window
  menu      - Interactive variant picker
  serve     - Start SSH server for remote play
  scores    - View high scores and run history
  simulate  - Run the autopilot without a display

Examples:
  jumper
  jumper play jumper_classic
  jumper window --seed 42
  jumper serve --ssh :2222
  jumper simulate --frames 10000 --record`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// logger is configured by setup before any command runs.
var logger = log.New(io.Discard)

// setup applies the global flags shared by every command.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		logFile, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = logFile
	} else if fullScreen(cmd) {
		// Logs would tear the alt screen
		out = io.Discard
	}

	logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "jumper",
	})

	jumper.SetLogger(logger)
	jumper.SetConfigPath(flagConfig)
	jumper.SetDifficultyPreset(flagDifficulty)
	return nil
}

// fullScreen reports whether cmd takes over the terminal.
func fullScreen(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "jumper", "menu", "play":
		return true
	}
	return false
}

// variantArg returns the requested variant, defaulting to the full game.
func variantArg(args []string) (string, error) {
	id := jumper.VariantJumper.ID
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown variant %q (run 'jumper list' to see variants)", id)
	}
	return id, nil
}

// completeVariants offers registered variant IDs for the first argument.
func completeVariants(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return registry.IDs(), cobra.ShellCompDirectiveNoFileComp
}

// createJumper instantiates a variant that exposes its simulation.
func createJumper(id string) (*jumper.Game, error) {
	g, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	game, ok := g.(*jumper.Game)
	if !ok {
		return nil, fmt.Errorf("variant %q does not expose a simulation", id)
	}
	return game, nil
}
