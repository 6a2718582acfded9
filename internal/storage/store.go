// Package storage persists finished game results. Results are append-only:
// play only ever records new ones, queries never mutate them.
package storage

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/mindgym/internal/core"
)

// AnyVariant matches results of every variant in queries.
const AnyVariant = "*"

var (
	// ErrUnknownKind is returned when recording a result for an unknown game.
	ErrUnknownKind = errors.New("storage: unknown game kind")

	// ErrInvalidScore is returned for NaN or infinite scores.
	ErrInvalidScore = errors.New("storage: score must be a finite number")
)

// Result is one finished round.
type Result struct {
	ID        string // UUID
	Kind      core.Kind
	Score     float64
	Variant   string // Empty when the game has no variant
	CreatedAt time.Time
}

// Order selects the sort order of History.
type Order int

const (
	Chronological Order = iota // Oldest first
	NewestFirst
)

// Stats summarizes the results of one kind (and variant filter).
type Stats struct {
	Kind       core.Kind
	Count      int
	Best       float64
	Mean       float64
	StdDev     float64 // Population standard deviation
	Median     float64
	LastScore  float64
	LastPlayed time.Time
}

// ScoreStore records results and answers best/history/stats queries.
// Implementations serialize writes and are safe for concurrent use.
type ScoreStore interface {
	RecordResult(kind core.Kind, score float64, variant string) (Result, error)
	BestScore(kind core.Kind, variant string) (float64, bool, error)
	History(kind core.Kind, variant string, order Order) ([]Result, error)
	Stats(kind core.Kind, variant string) (Stats, error)
	Close() error
}

// Clearer is implemented by stores that support the admin clear operation.
type Clearer interface {
	Clear(kind core.Kind) (int64, error)
}

// checkResult validates the arguments of RecordResult.
func checkResult(kind core.Kind, score float64) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidScore, score)
	}
	return nil
}

// matchVariant reports whether a stored variant satisfies a query filter.
func matchVariant(filter, variant string) bool {
	return filter == AnyVariant || filter == variant
}

// computeStats builds Stats from results in chronological order.
func computeStats(kind core.Kind, results []Result) Stats {
	st := Stats{Kind: kind, Count: len(results)}
	if len(results) == 0 {
		return st
	}

	scores := make([]float64, len(results))
	st.Best = results[0].Score
	for i, r := range results {
		scores[i] = r.Score
		if kind.Better(r.Score, st.Best) {
			st.Best = r.Score
		}
	}
	last := results[len(results)-1]
	st.LastScore = last.Score
	st.LastPlayed = last.CreatedAt

	st.Mean, st.StdDev = stat.PopMeanStdDev(scores, nil)
	sort.Float64s(scores)
	st.Median = stat.Quantile(0.5, stat.Empirical, scores, nil)
	return st
}

// Top returns up to limit results ranked best first for the kind.
// Equal scores keep their chronological order.
func Top(kind core.Kind, results []Result, limit int) []Result {
	ranked := append([]Result(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return kind.Better(ranked[i].Score, ranked[j].Score)
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
