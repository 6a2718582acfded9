package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindgym/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its score direction and variants.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	out := cmd.OutOrStdout()
	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	rows := make([][]string, 0, len(games))
	for _, g := range games {
		variants := "-"
		if len(g.Variants) > 0 {
			variants = strings.Join(g.Variants, ", ")
		}
		rows = append(rows, []string{g.ID, g.Title, g.Kind.Order().String(), variants})
	}
	fmt.Fprint(out, formatTable([]string{"ID", "Title", "Best is", "Variants"}, rows))

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'mindgym play <id>' to play a game.")
}
