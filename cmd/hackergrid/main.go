// hackergrid is a terminal grid shooter: rotate the turret, pull data
// chunks out of the stream, and blast everything else before it escapes.
//
// Usage:
//
//	hackergrid list              - List available game variants
//	hackergrid play <game>       - Play a variant
//	hackergrid serve             - Start SSH server for remote play
//	hackergrid scores <game>     - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.hackergrid/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game variants to register them
	_ "github.com/nlopatin/hackergrid/internal/games/hacker"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hackergrid",
	Short: "hackergrid - A grid shooter in your terminal",
	Long: `hackergrid is a terminal game where a rotating turret at the bottom of
a grid collects data chunks and destroys hostile processes before they
reach the bottom row.

Available commands:
  list     - Show all game variants
  play     - Play a variant directly
  serve    - Start SSH server for remote play
  scores   - View high scores and run statistics

Examples:
  hackergrid list
  hackergrid play hacker
  hackergrid play hacker_advanced --seed 42
  hackergrid serve --ssh :2222
  hackergrid scores hacker`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hackergrid/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
