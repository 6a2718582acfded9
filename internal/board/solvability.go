package board

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/mindgym/internal/core"
)

// ErrCorrupt is returned by Validate when tile positions do not form a permutation.
var ErrCorrupt = errors.New("board: tile positions are not a permutation")

// Inversions counts pairs of tiles that are out of relative order in a
// position -> tile listing. The blank (0) and unclaimed positions (-1) are ignored.
func Inversions(order []int) int {
	inv := 0
	for i := 0; i < len(order); i++ {
		if order[i] <= 0 {
			continue
		}
		for j := i + 1; j < len(order); j++ {
			if order[j] > 0 && order[i] > order[j] {
				inv++
			}
		}
	}
	return inv
}

// IsSolvable applies the inversion-parity rule to a position -> tile listing.
//
// Odd size: solvable iff the inversion count is even.
// Even size: solvable iff inversions + blankRowFromBottom is even, where
// blankRowFromBottom = size - 1 - blankRow.
func IsSolvable(size int, order []int) bool {
	if size < MinSize || len(order) != size*size {
		return false
	}
	blank := -1
	for pos, id := range order {
		if id == 0 {
			blank = pos
			break
		}
	}
	if blank < 0 {
		return false
	}

	inv := Inversions(order)
	if size%2 == 1 {
		return inv%2 == 0
	}
	blankRowFromBottom := size - 1 - blank/size
	return (inv+blankRowFromBottom)%2 == 0
}

// Validate checks that every position 0..n-1 is held by exactly one tile.
func (p *Puzzle) Validate() error {
	n := p.Cells()
	if len(p.Tiles) != n {
		return fmt.Errorf("%w: %d tiles for %d cells", ErrCorrupt, len(p.Tiles), n)
	}
	claimed := make([]int, n)
	for i := range claimed {
		claimed[i] = -1
	}
	for id, t := range p.Tiles {
		if t.ID != id {
			return fmt.Errorf("%w: tile slot %d holds id %d", ErrCorrupt, id, t.ID)
		}
		if t.Pos < 0 || t.Pos >= n {
			return fmt.Errorf("%w: tile %d at out-of-range position %d", ErrCorrupt, id, t.Pos)
		}
		if other := claimed[t.Pos]; other >= 0 {
			return fmt.Errorf("%w: tiles %d and %d share position %d", ErrCorrupt, other, id, t.Pos)
		}
		claimed[t.Pos] = id
	}
	return nil
}

// Repair makes the board a permutation again. The blank is fixed at the last
// position; non-blank tiles keep their position when it is valid and not yet
// taken (lower IDs win), and the remaining tiles take the unused positions in
// ascending order. The result is deterministic but not necessarily solvable;
// callers re-check solvability.
func (p *Puzzle) Repair() {
	n := p.Cells()
	if len(p.Tiles) != n {
		tiles := make([]Tile, n)
		for id := range tiles {
			tiles[id] = Tile{ID: id, Pos: -1}
			if id < len(p.Tiles) {
				tiles[id].Pos = p.Tiles[id].Pos
			}
		}
		p.Tiles = tiles
	}

	taken := make([]bool, n)
	p.Tiles[0] = Tile{ID: 0, Pos: n - 1}
	taken[n-1] = true

	var displaced []int
	for id := 1; id < n; id++ {
		p.Tiles[id].ID = id
		pos := p.Tiles[id].Pos
		if pos >= 0 && pos < n && !taken[pos] {
			taken[pos] = true
			continue
		}
		displaced = append(displaced, id)
	}

	// Hand out the unused pool in ascending order
	next := 0
	for _, id := range displaced {
		for taken[next] {
			next++
		}
		p.Tiles[id].Pos = next
		taken[next] = true
	}
}

// Shuffle produces a random, solvable, non-solved size x size puzzle.
//
// It starts from the solved board and performs size²×ShuffleMovesFactor random
// blank moves, plus one more half of the time so the blank can end on either
// checkerboard colour. The result is reachable by construction. The board is
// then validated, repaired if needed, and checked with IsSolvable; a board that
// fails the check is discarded and the walk starts over, up to
// maxShuffleAttempts times.
func Shuffle(size int, rng core.RNG) (*Puzzle, error) {
	p, err := NewSolved(size)
	if err != nil {
		return nil, err
	}

	moves := size * size * ShuffleMovesFactor
	for attempt := 0; attempt < maxShuffleAttempts; attempt++ {
		p.walk(moves+rng.Intn(2), rng)

		if p.Validate() != nil {
			p.Repair()
		}
		if !p.Solvable() {
			// Start over from a clean board
			p, _ = NewSolved(size)
			continue
		}
		if p.Solved() {
			// Keep walking from here on the next attempt
			continue
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w after %d attempts (size %d)", ErrUnsolvable, maxShuffleAttempts, size)
}

// walk performs random legal blank moves without validation. A move does not
// undo the previous one unless that would leave the blank a single choice,
// which on a 2x2 board would make the whole walk forced.
func (p *Puzzle) walk(moves int, rng core.RNG) {
	g := p.Grid()
	prev := -1
	candidates := make([]int, 0, 4)

	for i := 0; i < moves; i++ {
		blank := p.Blank()
		candidates = candidates[:0]
		for _, pos := range g.Neighbors(blank) {
			if pos != prev {
				candidates = append(candidates, pos)
			}
		}
		if len(candidates) < 2 {
			candidates = append(candidates[:0], g.Neighbors(blank)...)
		}
		pos := candidates[rng.Intn(len(candidates))]
		id := p.At(pos)
		p.Tiles[id].Pos, p.Tiles[0].Pos = blank, pos
		prev = blank
	}
}
