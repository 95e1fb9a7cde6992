// neonrunner is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	neonrunner play          - Play locally
//	neonrunner serve         - Start SSH server for remote play
//	neonrunner scores        - Show the leaderboard
//	neonrunner characters    - List the playable heroes
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.neonrunner/runs.db)
//	--debug         - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/adventure-squad/neon-runner/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSprites    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonrunner",
	Short: "Neon Runner - an endless runner in your terminal",
	Long: `Neon Runner is a side-scrolling endless runner. Pick a hero, jump over
enemies, land on platforms, grab coins and hearts, and stay clear of
the neon ceiling.

Available commands:
  play        - Play in this terminal
  serve       - Start SSH server for remote play
  scores      - View the leaderboard
  characters  - List the heroes

Examples:
  neonrunner play
  neonrunner play --difficulty hard
  neonrunner serve --ssh :2222
  neonrunner scores --hero jack`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neonrunner/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite sheet YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(charactersCmd)
}

// newLogger builds the shared logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "neonrunner",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens ~/.neonrunner/neonrunner.log for appending. The
// terminal belongs to Bubble Tea while a game runs.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".neonrunner")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "neonrunner.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadRunnerConfig loads tuning from --config and applies --difficulty.
func loadRunnerConfig() (config.RunnerConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.RunnerConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	config.ApplyRunnerPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.RunnerConfig{}, err
	}
	return cfg, nil
}
