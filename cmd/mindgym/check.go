package main

import (
	"fmt"
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindgym/internal/board"
)

var (
	flagCheckSize int
	flagCheckRuns int
	flagQuiet     bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify board generators",
}

var checkPuzzleCmd = &cobra.Command{
	Use:   "puzzle",
	Short: "Shuffle many sliding puzzles and verify every board",
	Long: `Run the sliding-puzzle shuffle repeatedly and check that each board is a
permutation, solvable and not already solved.

Examples:
  mindgym check puzzle
  mindgym check puzzle --size 4 --runs 100000
  mindgym check puzzle --seed 7`,
	RunE: runCheckPuzzle,
}

func init() {
	checkPuzzleCmd.Flags().IntVar(&flagCheckSize, "size", 3, "Puzzle size (N for an NxN board)")
	checkPuzzleCmd.Flags().IntVar(&flagCheckRuns, "runs", 10000, "Number of shuffles")
	checkPuzzleCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Hide the progress bar")
	checkCmd.AddCommand(checkPuzzleCmd)
}

func runCheckPuzzle(cmd *cobra.Command, _ []string) error {
	if flagCheckRuns < 1 {
		return fmt.Errorf("--runs must be at least 1")
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bar := pb.New(flagCheckRuns)
	if flagQuiet {
		bar.SetWriter(io.Discard)
	}
	bar.Start()
	report, err := board.Check(flagCheckSize, flagCheckRuns, seed, func() { bar.Increment() })
	used := time.Since(bar.StartTime())
	bar.Finish()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatCheckReport(report, seed, used))
	if !report.OK() {
		return fmt.Errorf("%d of %d boards failed verification", report.Runs-passed(report), report.Runs)
	}
	return nil
}

// passed counts boards that were valid, solvable and not solved.
func passed(r board.CheckReport) int {
	return r.Runs - r.Failed - r.Corrupt - r.Unsolvable - r.Solved
}

func formatCheckReport(r board.CheckReport, seed int64, used time.Duration) string {
	return formatTable([]string{"Check", "Result"}, [][]string{
		{"Board", fmt.Sprintf("%dx%d", r.Size, r.Size)},
		{"Seed", fmt.Sprint(seed)},
		{"Runs", fmt.Sprint(r.Runs)},
		{"Passed", fmt.Sprint(passed(r))},
		{"Shuffle errors", fmt.Sprint(r.Failed)},
		{"Not a permutation", fmt.Sprint(r.Corrupt)},
		{"Unsolvable", fmt.Sprint(r.Unsolvable)},
		{"Already solved", fmt.Sprint(r.Solved)},
		{"Inversions min/mean/max", fmt.Sprintf("%d / %.1f / %d", r.MinInv, r.MeanInv, r.MaxInv)},
		{"Time", used.Round(time.Millisecond).String()},
	})
}
