package board

import (
	"fmt"

	"github.com/vovakirdan/mindgym/internal/core"
)

// CheckReport summarizes a batch of shuffles.
type CheckReport struct {
	Size       int
	Runs       int
	Failed     int // Shuffle returned an error
	Corrupt    int // Positions did not form a permutation
	Unsolvable int
	Solved     int // Already solved at the start
	MinInv     int
	MaxInv     int
	MeanInv    float64
}

// OK reports whether every shuffle produced a valid starting board.
func (r CheckReport) OK() bool {
	return r.Failed+r.Corrupt+r.Unsolvable+r.Solved == 0
}

// Check runs Shuffle runs times with seeds seed, seed+1, ... and verifies each
// board. progress, if not nil, is called after every run.
func Check(size, runs int, seed int64, progress func()) (CheckReport, error) {
	if size < MinSize {
		return CheckReport{}, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	r := CheckReport{Size: size, Runs: runs, MinInv: -1}
	total := 0

	for i := 0; i < runs; i++ {
		p, err := Shuffle(size, core.NewRNG(seed+int64(i)))
		if progress != nil {
			progress()
		}
		if err != nil {
			r.Failed++
			continue
		}
		if p.Validate() != nil {
			r.Corrupt++
			continue
		}
		if !p.Solvable() {
			r.Unsolvable++
		}
		if p.Solved() {
			r.Solved++
		}

		inv := Inversions(p.Order())
		total += inv
		if r.MinInv < 0 || inv < r.MinInv {
			r.MinInv = inv
		}
		if inv > r.MaxInv {
			r.MaxInv = inv
		}
	}

	if checked := runs - r.Failed - r.Corrupt; checked > 0 {
		r.MeanInv = float64(total) / float64(checked)
	}
	if r.MinInv < 0 {
		r.MinInv = 0
	}
	return r, nil
}
