package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/registry"
	"github.com/vovakirdan/mindgym/internal/storage"
)

var (
	flagScoresVariant string
	flagHistory       bool
	flagLimit         int
	flagClear         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show best scores and statistics for a game",
	Long: `Display the best results for the specified game together with
count, mean, median and standard deviation.

Examples:
  mindgym scores reaction
  mindgym scores npuzzle --variant 4
  mindgym scores aim --history --limit 20
  mindgym scores chimp --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresVariant, "variant", storage.AnyVariant, "Only results of this variant ('*' for all)")
	scoresCmd.Flags().BoolVar(&flagHistory, "history", false, "List results newest first instead of best first")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Maximum number of results to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored result of the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	info, ok := registry.Info(args[0])
	if !ok {
		return fmt.Errorf("unknown game %q, run 'mindgym list' to see available games", args[0])
	}
	logger, _, err := newLogger(false)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClear {
		n, err := store.Clear(info.Kind)
		if err != nil {
			return err
		}
		logger.Info("cleared results", "game", info.ID, "count", n)
		fmt.Fprintf(out, "Deleted %d results for %s.\n", n, info.Title)
		return nil
	}

	return printScores(out, store, info)
}

// printScores writes the result table and the statistics line.
func printScores(out io.Writer, store storage.ScoreStore, info registry.GameInfo) error {
	kind := info.Kind
	history, err := store.History(kind, flagScoresVariant, storage.NewestFirst)
	if err != nil {
		return err
	}

	title := "Best Scores"
	results := storage.Top(kind, history, flagLimit)
	if flagHistory {
		title = "History"
		results = history
		if flagLimit > 0 && len(results) > flagLimit {
			results = results[:flagLimit]
		}
	}

	heading := fmt.Sprintf("%s - %s", title, info.Title)
	if flagScoresVariant != storage.AnyVariant {
		heading += " (" + flagScoresVariant + ")"
	}
	fmt.Fprintln(out, heading)
	fmt.Fprintln(out)

	if len(results) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'mindgym play %s' to set the first score!\n", info.ID)
		return nil
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		variant := r.Variant
		if variant == "" {
			variant = "-"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			kind.Format(r.Score),
			variant,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		}
	}
	fmt.Fprint(out, formatTable([]string{"#", "Score", "Variant", "Date"}, rows))

	stats, err := store.Stats(kind, flagScoresVariant)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, formatStats(kind, stats))
	return nil
}

// formatStats renders the summary statistics as a two-column table.
func formatStats(kind core.Kind, st storage.Stats) string {
	if st.Count == 0 {
		return ""
	}
	return formatTable([]string{"Statistic", "Value"}, [][]string{
		{"Rounds", strconv.Itoa(st.Count)},
		{"Best", kind.Format(st.Best)},
		{"Mean", kind.Format(st.Mean)},
		{"Median", kind.Format(st.Median)},
		{"Std. dev.", fmt.Sprintf("%.2f", st.StdDev)},
		{"Last played", st.LastPlayed.Local().Format("2006-01-02 15:04")},
	})
}
