package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindgym/internal/platform/tui"
	"github.com/vovakirdan/mindgym/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start mindgym with a game picker menu",
	Long: `Start mindgym in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game. Games with
variants (grid size, target count) ask for one first.
After a game ends, Esc returns to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game or variant
  Tab          - Scoreboard
  Esc          - Back
  Q            - Quit

Examples:
  mindgym menu
  mindgym menu --difficulty hard
  mindgym menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results")
	menuCmd.Flags().BoolVar(&flagNoBell, "no-bell", false, "Disable the terminal bell")
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(flagNoSave, logger)
	defer store.Close()

	rt := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, rt)
		if err != nil {
			return err
		}

		// Update config with any size changes
		rt = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		game, err := registry.CreateVariant(menuResult.GameID, menuResult.Variant, cfg)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// Fresh seed for each game unless one was given
		rt.Seed = flagSeed
		back, err := tui.Run(newSession(game, store, logger, rt), rt)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
