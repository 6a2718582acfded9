package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/effects"
	"github.com/vovakirdan/mindgym/internal/platform/tui"
	"github.com/vovakirdan/mindgym/internal/registry"
	"github.com/vovakirdan/mindgym/internal/session"
	"github.com/vovakirdan/mindgym/internal/storage"
)

var (
	flagVariant string
	flagNoSave  bool
	flagNoBell  bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD/HJKL - Move the cursor, slide tiles
  Enter/Space      - Start, pick, submit
  0-9, Backspace   - Type and edit answers (number memory)
  Y / N            - Seen / new (verbal memory)
  R                - Restart (after the round finished)
  Esc/B            - Leave the game
  Ctrl+S           - Save a screenshot to ~/.mindgym/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, longer show times
  normal - The configured values
  hard   - Fewer lives, shorter show times

Examples:
  mindgym play aim --variant 50
  mindgym play number-memory --difficulty easy
  mindgym play npuzzle --variant 4 --seed 42
  mindgym play schulte --no-save`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagVariant, "variant", "", "Game variant (see 'mindgym list')")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results")
	playCmd.Flags().BoolVar(&flagNoBell, "no-bell", false, "Disable the terminal bell")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'mindgym list' to see available games", gameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := registry.CreateVariant(gameID, flagVariant, cfg)
	if err != nil {
		return err
	}

	store := openStore(flagNoSave, logger)
	defer store.Close()

	rt := runtimeConfig()
	_, err = tui.Run(newSession(game, store, logger, rt), rt)
	return err
}

// newSession wires a game to the store, the logging and bell effects and the logger.
func newSession(game registry.Game, store storage.ScoreStore, logger *log.Logger, rt core.RuntimeConfig) *session.Session {
	sinks := effects.Multi{effects.NewLogger(logger)}
	if !flagNoBell {
		sinks = append(sinks, effects.NewBell(os.Stdout))
	}
	return session.New(game, session.Options{
		Store:   store,
		Effects: sinks,
		Logger:  logger,
		Runtime: rt,
	})
}

