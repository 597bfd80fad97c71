package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nlopatin/hackergrid/internal/platform/tui"
	"github.com/nlopatin/hackergrid/internal/registry"
	"github.com/nlopatin/hackergrid/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 high scores and run statistics for the
specified variant.

Examples:
  hackergrid scores hacker
  hackergrid scores hacker_advanced
  hackergrid scores hacker --interactive`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in a full-screen table")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hackergrid list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, sbErr := tui.RunScoreboard(store, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hackergrid play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Aggregate run statistics
	stats, err := store.Stats(gameID)
	if err != nil || stats.Plays == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Wins: %d  Best: %d\n", stats.Plays, stats.Wins, stats.BestScore)
	if stats.TotalShots > 0 {
		hits := stats.TotalCollected + stats.TotalDestroyed
		fmt.Printf("Shots: %d  Hits: %d  Accuracy: %d%%\n", stats.TotalShots, hits, hits*100/stats.TotalShots)
	}
}
