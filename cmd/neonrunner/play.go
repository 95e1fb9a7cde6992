package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/adventure-squad/neon-runner/internal/audio"
	"github.com/adventure-squad/neon-runner/internal/core"
	"github.com/adventure-squad/neon-runner/internal/platform/tui"
	"github.com/adventure-squad/neon-runner/internal/runner"
	"github.com/adventure-squad/neon-runner/internal/sprites"
	"github.com/adventure-squad/neon-runner/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Neon Runner",
	Long: `Start Neon Runner in this terminal.

Controls:
  Left/Right   - Choose hero
  1-3          - Pick hero directly
  Space/Up     - Confirm, jump, restart (mouse click works too)
  C/Esc        - Change hero on the ready screen
  Tab          - Leaderboard (outside a run)
  Ctrl+S       - Screenshot to ~/.neonrunner/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start and wider spawn gaps
  normal - The original tuning
  hard   - Faster start and tighter spawn gaps

Examples:
  neonrunner play
  neonrunner play --difficulty easy
  neonrunner play --mute
  neonrunner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadRunnerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(); logErr == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	sheet, err := sprites.Load(flagSprites)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load sprites: %v\n", err)
		sheet = nil
	}

	// Audio is optional; a missing device plays silently.
	var cues runner.Cues = runner.NopCues{}
	player := audio.NewPlayer(cfg.Audio, logger)
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
	} else {
		cues = player
	}
	defer player.Close()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(tui.Options{
		Runner:  cfg,
		Sprites: sheet,
		Cues:    cues,
		Store:   store,
		Logger:  logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
