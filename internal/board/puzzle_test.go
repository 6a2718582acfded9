package board

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vovakirdan/mindgym/internal/core"
)

// assertPermutation fails the test if the board's positions are not exactly 0..n-1.
func assertPermutation(t *testing.T, p *Puzzle) {
	t.Helper()
	n := p.Cells()
	seen := make([]bool, n)
	for _, tile := range p.Tiles {
		if tile.Pos < 0 || tile.Pos >= n {
			t.Fatalf("tile %d at out-of-range position %d", tile.ID, tile.Pos)
		}
		if seen[tile.Pos] {
			t.Fatalf("position %d occupied twice", tile.Pos)
		}
		seen[tile.Pos] = true
	}
}

func TestShuffleProducesSolvablePermutation(t *testing.T) {
	for size := 2; size <= 6; size++ {
		for seed := int64(1); seed <= 25; seed++ {
			p, err := Shuffle(size, core.NewRNG(seed))
			if err != nil {
				t.Fatalf("Shuffle(%d) seed %d failed: %v", size, seed, err)
			}

			assertPermutation(t, p)

			if !IsSolvable(size, p.Order()) {
				t.Errorf("Shuffle(%d) seed %d returned unsolvable board %v", size, seed, p.Order())
			}
			if p.Solved() {
				t.Errorf("Shuffle(%d) seed %d returned the solved board", size, seed)
			}
		}
	}
}

func TestShuffleNeverTrivialForSize3(t *testing.T) {
	rng := core.NewRNG(7)
	trivial := 0
	for i := 0; i < 500; i++ {
		p, err := Shuffle(3, rng)
		if err != nil {
			t.Fatalf("Shuffle(3) failed: %v", err)
		}
		if p.Solved() {
			trivial++
		}
	}
	if trivial != 0 {
		t.Errorf("%d of 500 shuffles were already solved", trivial)
	}
}

func TestShuffleCoversBoards(t *testing.T) {
	tests := []struct {
		size        int
		minDistinct int
	}{
		{2, 8}, // 11 solvable non-solved boards exist
		{3, 200},
	}

	for _, tt := range tests {
		rng := core.NewRNG(int64(tt.size))
		distinct := make(map[string]bool)
		blanks := make(map[int]int)
		for i := 0; i < 500; i++ {
			p, err := Shuffle(tt.size, rng)
			if err != nil {
				t.Fatalf("Shuffle(%d) failed: %v", tt.size, err)
			}
			distinct[fmt.Sprint(p.Order())] = true
			blanks[p.Blank()]++
		}

		if len(distinct) < tt.minDistinct {
			t.Errorf("Shuffle(%d) produced %d distinct boards in 500 runs, expected at least %d",
				tt.size, len(distinct), tt.minDistinct)
		}
		for pos := 0; pos < tt.size*tt.size; pos++ {
			if blanks[pos] == 0 {
				t.Errorf("Shuffle(%d) never left the blank at %d: %v", tt.size, pos, blanks)
			}
		}
	}
}

func TestShuffleRejectsSmallSize(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		if _, err := Shuffle(size, core.NewRNG(1)); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Shuffle(%d) err = %v, expected ErrInvalidSize", size, err)
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	p1, _ := Shuffle(4, core.NewRNG(12345))
	p2, _ := Shuffle(4, core.NewRNG(12345))

	o1, o2 := p1.Order(), p2.Order()
	for i := range o1 {
		if o1[i] != o2[i] {
			t.Fatalf("same seed produced different boards:\n%v\n%v", o1, o2)
		}
	}
}

func TestMovesPreservePermutation(t *testing.T) {
	rng := core.NewRNG(99)
	for size := 2; size <= 5; size++ {
		p, err := Shuffle(size, rng)
		if err != nil {
			t.Fatalf("Shuffle(%d) failed: %v", size, err)
		}

		for i := 0; i < 300; i++ {
			// Mix legal moves, illegal moves and slides
			switch i % 3 {
			case 0:
				movable := p.Movable()
				p.Move(movable[rng.Intn(len(movable))])
			case 1:
				p.Move(rng.Intn(p.Cells()))
			default:
				p.Slide(core.Action(int(core.ActionUp) + rng.Intn(4)))
			}
			assertPermutation(t, p)
		}
	}
}

func TestRandomWalkFromSolvedStaysSolvable(t *testing.T) {
	rng := core.NewRNG(2024)
	for size := 2; size <= 6; size++ {
		p, _ := NewSolved(size)
		for i := 0; i < 1000; i++ {
			movable := p.Movable()
			if !p.Move(movable[rng.Intn(len(movable))]) {
				t.Fatal("Move() rejected a movable tile")
			}
			if i%50 == 0 && !p.Solvable() {
				t.Fatalf("size %d: board became unsolvable after %d legal moves: %v", size, i+1, p.Order())
			}
		}
	}
}

func TestMoveRejectsNonAdjacent(t *testing.T) {
	p, _ := NewSolved(3)
	// Blank at 8; position 0 is far away
	before := p.Order()
	if p.Move(0) {
		t.Error("Move(0) should be rejected")
	}
	if p.Move(8) {
		t.Error("moving the blank onto itself should be rejected")
	}
	if p.Move(42) {
		t.Error("out of range move should be rejected")
	}
	after := p.Order()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("rejected move changed the board")
		}
	}

	if !p.Move(7) {
		t.Fatal("Move(7) next to the blank should succeed")
	}
	if p.Blank() != 7 || p.At(8) != 8 {
		t.Errorf("after Move(7): blank at %d, tile at 8 = %d", p.Blank(), p.At(8))
	}
}

func TestSlideDirections(t *testing.T) {
	p, _ := NewSolved(3)

	// Blank at bottom-right: nothing below or right of it
	if p.Slide(core.ActionUp) || p.Slide(core.ActionLeft) {
		t.Error("slides from outside the board should be rejected")
	}

	// Tile above the blank slides down
	if !p.Slide(core.ActionDown) {
		t.Fatal("Slide(Down) should move tile 6")
	}
	if p.Blank() != 5 || p.At(8) != 6 {
		t.Errorf("after Slide(Down): blank %d, tile at 8 = %d", p.Blank(), p.At(8))
	}

	// And back up
	p.Slide(core.ActionUp)
	if !p.Solved() {
		t.Error("Slide(Up) should restore the solved board")
	}
}

func TestSolvedDetection(t *testing.T) {
	p, _ := NewSolved(4)
	if !p.Solved() {
		t.Fatal("NewSolved should be solved")
	}
	p.Move(p.Movable()[0])
	if p.Solved() {
		t.Error("board should not be solved after a move")
	}
}

func TestFromOrder(t *testing.T) {
	p, err := FromOrder(2, []int{3, 1, 2, 0})
	if err != nil {
		t.Fatalf("FromOrder failed: %v", err)
	}
	if p.At(0) != 3 || p.Blank() != 3 {
		t.Errorf("FromOrder built wrong board: %v", p.Order())
	}

	if _, err := FromOrder(2, []int{1, 1, 2, 0}); err == nil {
		t.Error("FromOrder should reject duplicates")
	}
	if _, err := FromOrder(2, []int{1, 2, 0}); err == nil {
		t.Error("FromOrder should reject short listings")
	}
}

func TestClone(t *testing.T) {
	p, _ := NewSolved(3)
	c := p.Clone()
	c.Move(7)
	if !p.Solved() {
		t.Error("moving the clone changed the original")
	}
}
