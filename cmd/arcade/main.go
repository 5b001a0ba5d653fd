// arcade is a TUI arcade for playing Starfall in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show the leaderboard for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.astro-arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/velikanov/astro-arcade/internal/games/starfall"
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
	Use:   "arcade",
	Short: "Astro Arcade - dodge and shoot falling asteroids in your terminal",
	Long: `Astro Arcade is a terminal arcade built around Starfall, an
asteroid-dodging shooter with pooled physics, power-ups, and a shared
leaderboard.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  serve    - Start SSH server for remote play
  scores   - View the leaderboard

Examples:
  arcade list
  arcade play starfall
  arcade play starfall_blitz --difficulty hard
  arcade serve --ssh :2222
  arcade scores starfall`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.astro-arcade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
