package board

import (
	"errors"
	"testing"
)

func TestIsSolvableKnownBoards(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		order []int
		want  bool
	}{
		{"solved 3x3", 3, []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, true},
		{"swapped 7 8 on 3x3", 3, []int{1, 2, 3, 4, 5, 6, 8, 7, 0}, false},
		{"one move 3x3", 3, []int{1, 2, 3, 4, 5, 6, 7, 0, 8}, true},
		{"solved 4x4", 4, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0}, true},
		{"swapped 14 15 on 4x4", 4, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15, 14, 0}, false},
		{"blank moved up on 4x4", 4, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0, 13, 14, 15, 12}, true},
		{"solved 2x2", 2, []int{1, 2, 3, 0}, true},
		{"swapped 2x2", 2, []int{2, 1, 3, 0}, false},
		{"no blank", 2, []int{1, 2, 3, 4}, false},
		{"wrong length", 3, []int{1, 2, 0}, false},
		{"too small", 1, []int{0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSolvable(tt.size, tt.order); got != tt.want {
				t.Errorf("IsSolvable(%d, %v) = %v, expected %v", tt.size, tt.order, got, tt.want)
			}
		})
	}
}

func TestInversions(t *testing.T) {
	if got := Inversions([]int{1, 2, 3, 0}); got != 0 {
		t.Errorf("Inversions(solved) = %d", got)
	}
	if got := Inversions([]int{3, 2, 1, 0}); got != 3 {
		t.Errorf("Inversions(3,2,1) = %d, expected 3", got)
	}
	if got := Inversions([]int{2, -1, 1, 0}); got != 1 {
		t.Errorf("unclaimed positions should be ignored, got %d", got)
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	p, _ := NewSolved(3)
	if err := p.Validate(); err != nil {
		t.Fatalf("solved board invalid: %v", err)
	}

	p.Tiles[3].Pos = p.Tiles[4].Pos
	if err := p.Validate(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("shared position: err = %v, expected ErrCorrupt", err)
	}

	p, _ = NewSolved(3)
	p.Tiles[2].Pos = 99
	if err := p.Validate(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("out of range: err = %v, expected ErrCorrupt", err)
	}
}

func TestRepairIsDeterministic(t *testing.T) {
	build := func() *Puzzle {
		p, _ := NewSolved(3)
		// Tiles 4 and 5 collide, tile 7 is off the board, blank is misplaced
		p.Tiles[5].Pos = p.Tiles[4].Pos
		p.Tiles[7].Pos = -3
		p.Tiles[0].Pos = 0
		return p
	}

	a, b := build(), build()
	a.Repair()
	b.Repair()

	if err := a.Validate(); err != nil {
		t.Fatalf("repaired board still invalid: %v", err)
	}
	if a.Blank() != 8 {
		t.Errorf("blank at %d after repair, expected 8", a.Blank())
	}
	// Tile 4 keeps position 3 (lower ID wins); 5 and 7 take the free cells 4 and 6
	if a.Tiles[4].Pos != 3 || a.Tiles[5].Pos != 4 || a.Tiles[7].Pos != 6 {
		t.Errorf("unexpected repair result: %v", a.Order())
	}

	oa, ob := a.Order(), b.Order()
	for i := range oa {
		if oa[i] != ob[i] {
			t.Fatalf("repair is not deterministic: %v vs %v", oa, ob)
		}
	}
}

func TestRepairRestoresMissingTiles(t *testing.T) {
	p := &Puzzle{Size: 2, Tiles: []Tile{{ID: 0, Pos: 3}, {ID: 1, Pos: 1}}}
	p.Repair()
	if err := p.Validate(); err != nil {
		t.Fatalf("repair left invalid board: %v", err)
	}
	if p.Tiles[1].Pos != 1 {
		t.Errorf("tile 1 moved to %d, expected to keep 1", p.Tiles[1].Pos)
	}
}
