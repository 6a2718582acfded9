// mindgym is a suite of short cognitive mini-games for the terminal.
//
// Usage:
//
//	mindgym list                 - List available games
//	mindgym play <game>          - Play a game
//	mindgym menu                 - Start menu to pick games interactively
//	mindgym scores <game>        - Show best scores and statistics for a game
//	mindgym check puzzle         - Verify the sliding-puzzle shuffle
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible layouts
//	--db <path>           - Set database path (default: ~/.mindgym/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-file <path>     - Log file for interactive commands
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/mindgym/internal/games/aim"
	_ "github.com/vovakirdan/mindgym/internal/games/chimp"
	_ "github.com/vovakirdan/mindgym/internal/games/lastcircle"
	_ "github.com/vovakirdan/mindgym/internal/games/npuzzle"
	_ "github.com/vovakirdan/mindgym/internal/games/numbermemory"
	_ "github.com/vovakirdan/mindgym/internal/games/reaction"
	_ "github.com/vovakirdan/mindgym/internal/games/schulte"
	_ "github.com/vovakirdan/mindgym/internal/games/sequencememory"
	_ "github.com/vovakirdan/mindgym/internal/games/verbalmemory"
	_ "github.com/vovakirdan/mindgym/internal/games/visualmemory"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mindgym",
	Short: "mindgym - Cognitive mini-games in your terminal",
	Long: `mindgym is a set of short cognitive mini-games: aim, chimp test,
number, visual, verbal and sequence memory, reaction time, Schulte table,
N-puzzle and last circle. Results are kept in a local SQLite database.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View best scores and statistics
  check    - Verify the puzzle generator

Examples:
  mindgym list
  mindgym play reaction
  mindgym play npuzzle --variant 4
  mindgym menu --difficulty hard
  mindgym scores schulte --variant 5`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mindgym/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play/menu (default ~/.mindgym/mindgym.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
}
