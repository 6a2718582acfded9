package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/mindgym/internal/core"
)

// Memory is an in-process ScoreStore. Results live until the process exits;
// used by tests and by `play --no-save`.
type Memory struct {
	mu      sync.RWMutex
	results []Result
	now     func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

// RecordResult appends a result.
func (m *Memory) RecordResult(kind core.Kind, score float64, variant string) (Result, error) {
	if err := checkResult(kind, score); err != nil {
		return Result{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r := Result{
		ID:        uuid.New().String(),
		Kind:      kind,
		Score:     score,
		Variant:   variant,
		CreatedAt: m.now(),
	}
	m.results = append(m.results, r)
	return r, nil
}

// BestScore returns the best score for the kind, honoring its score order.
func (m *Memory) BestScore(kind core.Kind, variant string) (float64, bool, error) {
	results, _ := m.History(kind, variant, Chronological)
	if len(results) == 0 {
		return 0, false, nil
	}
	best := results[0].Score
	for _, r := range results[1:] {
		if kind.Better(r.Score, best) {
			best = r.Score
		}
	}
	return best, true, nil
}

// History returns the matching results. Insertion order is chronological,
// so it also breaks ties between equal timestamps.
func (m *Memory) History(kind core.Kind, variant string, order Order) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Result
	for _, r := range m.results {
		if r.Kind == kind && matchVariant(variant, r.Variant) {
			out = append(out, r)
		}
	}
	if order == NewestFirst {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

// Stats summarizes the matching results.
func (m *Memory) Stats(kind core.Kind, variant string) (Stats, error) {
	results, _ := m.History(kind, variant, Chronological)
	return computeStats(kind, results), nil
}

// Clear deletes every result of the kind.
func (m *Memory) Clear(kind core.Kind) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.results[:0]
	var removed int64
	for _, r := range m.results {
		if r.Kind == kind {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	m.results = kept
	return removed, nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}

var (
	_ ScoreStore = (*Memory)(nil)
	_ Clearer    = (*Memory)(nil)
)
