package board

import (
	"github.com/vovakirdan/mindgym/internal/core"
)

// spreadAttempts bounds the randomized greedy passes for non-adjacent targets.
const spreadAttempts = 16

// Targets picks count distinct cells of g. When count is at most half the
// cells, the cells are chosen so no two share an edge, if a randomized greedy
// pass finds such a set within spreadAttempts tries; otherwise, or when the
// count is larger, the cells are sampled without constraint.
// The result is in pick order; count is clamped to [0, cells].
func Targets(g core.Grid, count int, rng core.RNG) []int {
	cells := g.Cells()
	count = core.Clamp(count, 0, cells)
	if count == 0 {
		return nil
	}

	if count <= cells/2 {
		for attempt := 0; attempt < spreadAttempts; attempt++ {
			if picked, ok := spread(g, count, rng); ok {
				return picked
			}
		}
	}
	return Sample(cells, count, rng)
}

// spread tries once to pick count mutually non-adjacent cells.
func spread(g core.Grid, count int, rng core.RNG) ([]int, bool) {
	blocked := make([]bool, g.Cells())
	picked := make([]int, 0, count)

	for _, idx := range Perm(g.Cells(), rng) {
		if blocked[idx] {
			continue
		}
		picked = append(picked, idx)
		if len(picked) == count {
			return picked, true
		}
		blocked[idx] = true
		for _, n := range g.Neighbors(idx) {
			blocked[n] = true
		}
	}
	return nil, false
}

// Perm returns a random permutation of 0..n-1 (Fisher-Yates).
func Perm(n int, rng core.RNG) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample picks k distinct values from 0..n-1 with a partial Fisher-Yates shuffle.
func Sample(n, k int, rng core.RNG) []int {
	k = core.Clamp(k, 0, n)
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// Pick returns a random value in 0..n-1 different from exclude, when n > 1.
func Pick(n, exclude int, rng core.RNG) int {
	if n <= 1 {
		return 0
	}
	if exclude < 0 || exclude >= n {
		return rng.Intn(n)
	}
	v := rng.Intn(n - 1)
	if v >= exclude {
		v++
	}
	return v
}

// Sequence returns length random cells of 0..cells-1. Consecutive entries
// differ so every flash is visible as a separate step.
func Sequence(length, cells int, rng core.RNG) []int {
	var seq []int
	for i := 0; i < length; i++ {
		seq = Extend(seq, cells, rng)
	}
	return seq
}

// Extend appends one random cell to seq, different from its last entry.
func Extend(seq []int, cells int, rng core.RNG) []int {
	last := -1
	if len(seq) > 0 {
		last = seq[len(seq)-1]
	}
	return append(seq, Pick(cells, last, rng))
}

// SchulteTable returns the numbers 1..size² in random cell order.
func SchulteTable(size int, rng core.RNG) []int {
	n := size * size
	table := Perm(n, rng)
	for i := range table {
		table[i]++
	}
	return table
}

// Digits returns a random n-digit decimal string without a leading zero.
func Digits(n int, rng core.RNG) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	buf[0] = byte('1' + rng.Intn(9))
	for i := 1; i < n; i++ {
		buf[i] = byte('0' + rng.Intn(10))
	}
	return string(buf)
}
