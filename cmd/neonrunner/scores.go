package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/adventure-squad/neon-runner/internal/platform/tui"
	"github.com/adventure-squad/neon-runner/internal/runner"
	"github.com/adventure-squad/neon-runner/internal/storage"
)

var (
	flagHero  string
	flagLimit int
	flagPlain bool
	flagClear bool
	flagStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best runs, overall or for one hero.

In a terminal the leaderboard opens as an interactive table; use --plain
(or pipe the output) for a text listing.

Examples:
  neonrunner scores
  neonrunner scores --hero charlie --plain
  neonrunner scores --stats
  neonrunner scores --clear --hero jack`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagHero, "hero", "", "Only show runs of this hero (jack, peter, charlie)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stored runs (of --hero, or all)")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Print per-hero statistics")
}

func runScores(_ *cobra.Command, _ []string) {
	title := "All heroes"
	if flagHero != "" {
		hero, ok := runner.CharacterByID(flagHero)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown hero %q\n", flagHero)
			fmt.Fprintln(os.Stderr, "Run 'neonrunner characters' to see the heroes.")
			os.Exit(1)
		}
		title = hero.Name
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(flagHero); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared runs - %s\n", title)
		return

	case flagStats:
		printStats(store)
		return

	case !flagPlain && term.IsTerminal(int(os.Stdout.Fd())):
		width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
		if termErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagHero, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'neonrunner play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %s\n", "Rank", "Hero", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %s\n", "----", "----", "-----", "----", "----")

	for i, r := range runs {
		hero := r.Character
		if c, ok := runner.CharacterByID(r.Character); ok {
			hero = c.Name
		}
		secs := int(r.Duration().Seconds())
		fmt.Printf("  %-4d  %-8s  %-8d  %-6s  %s\n",
			i+1, hero, r.Score, fmt.Sprintf("%d:%02d", secs/60, secs%60), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show high score
	fmt.Println()
	if best, err := store.HighScore(flagHero); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

// printStats lists aggregated numbers per hero, best first.
func printStats(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	rows := make([]*storage.RunStats, 0, len(stats))
	for _, st := range stats {
		rows = append(rows, st)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].HighScore > rows[j].HighScore })

	fmt.Printf("  %-8s  %-5s  %-6s  %-8s  %s\n", "Hero", "Runs", "Best", "Average", "Last played")
	fmt.Printf("  %-8s  %-5s  %-6s  %-8s  %s\n", "----", "----", "----", "-------", "-----------")
	for _, st := range rows {
		hero := st.Character
		if c, ok := runner.CharacterByID(st.Character); ok {
			hero = c.Name
		}
		fmt.Printf("  %-8s  %-5d  %-6d  %-8.1f  %s\n",
			hero, st.RunsCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
