// Package board generates the randomized layouts used by the games: the
// sliding-puzzle shuffle with its solvability guarantee, non-adjacent target
// cells, flash sequences, Schulte tables and digit strings.
package board

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/mindgym/internal/core"
)

// Tile counts and retry bounds for the sliding puzzle.
const (
	MinSize            = 2
	ShuffleMovesFactor = 20 // Random blank moves per cell
	maxShuffleAttempts = 8
)

var (
	// ErrInvalidSize is returned for puzzles smaller than 2x2.
	ErrInvalidSize = errors.New("board: puzzle size must be at least 2")

	// ErrUnsolvable is returned when no solvable shuffle was produced within the retry bound.
	ErrUnsolvable = errors.New("board: could not produce a solvable shuffle")
)

// Tile is one piece of the sliding puzzle. ID 0 is the blank.
type Tile struct {
	ID  int
	Pos int
}

// Puzzle is a size x size sliding puzzle. Tiles[id] holds the tile with that ID,
// so positions can be looked up by ID directly and by position via At.
type Puzzle struct {
	Size  int
	Tiles []Tile
}

// NewSolved creates a solved puzzle: tile i+1 at position i, blank last.
func NewSolved(size int) (*Puzzle, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	n := size * size
	p := &Puzzle{Size: size, Tiles: make([]Tile, n)}
	p.Tiles[0] = Tile{ID: 0, Pos: n - 1}
	for id := 1; id < n; id++ {
		p.Tiles[id] = Tile{ID: id, Pos: id - 1}
	}
	return p, nil
}

// FromOrder builds a puzzle from a position -> tile ID listing (0 = blank).
func FromOrder(size int, order []int) (*Puzzle, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	n := size * size
	if len(order) != n {
		return nil, fmt.Errorf("board: order has %d entries, expected %d", len(order), n)
	}
	p := &Puzzle{Size: size, Tiles: make([]Tile, n)}
	seen := make([]bool, n)
	for pos, id := range order {
		if id < 0 || id >= n || seen[id] {
			return nil, fmt.Errorf("board: order is not a permutation (tile %d at %d)", id, pos)
		}
		seen[id] = true
		p.Tiles[id] = Tile{ID: id, Pos: pos}
	}
	return p, nil
}

// Grid returns the puzzle's grid geometry.
func (p *Puzzle) Grid() core.Grid {
	return core.Square(p.Size)
}

// Cells returns the number of positions on the board.
func (p *Puzzle) Cells() int {
	return p.Size * p.Size
}

// Blank returns the position of the blank.
func (p *Puzzle) Blank() int {
	return p.Tiles[0].Pos
}

// At returns the tile ID at the given position, or -1 if no tile claims it.
func (p *Puzzle) At(pos int) int {
	for _, t := range p.Tiles {
		if t.Pos == pos {
			return t.ID
		}
	}
	return -1
}

// Order returns the position -> tile ID listing. Positions that no tile claims
// (only possible on a corrupted board) hold -1.
func (p *Puzzle) Order() []int {
	order := make([]int, p.Cells())
	for i := range order {
		order[i] = -1
	}
	for _, t := range p.Tiles {
		if t.Pos >= 0 && t.Pos < len(order) {
			order[t.Pos] = t.ID
		}
	}
	return order
}

// Solved returns true if every tile is at its home position.
func (p *Puzzle) Solved() bool {
	n := p.Cells()
	if p.Tiles[0].Pos != n-1 {
		return false
	}
	for id := 1; id < n; id++ {
		if p.Tiles[id].Pos != id-1 {
			return false
		}
	}
	return true
}

// Solvable returns true if the current arrangement can reach the solved state.
func (p *Puzzle) Solvable() bool {
	return IsSolvable(p.Size, p.Order())
}

// Movable returns the positions whose tile can slide into the blank.
func (p *Puzzle) Movable() []int {
	return p.Grid().Neighbors(p.Blank())
}

// Move slides the tile at pos into the blank if they are adjacent.
// Returns false and leaves the board unchanged otherwise.
func (p *Puzzle) Move(pos int) bool {
	g := p.Grid()
	if !g.Valid(pos) || !g.Adjacent(pos, p.Blank()) {
		return false
	}
	id := p.At(pos)
	if id <= 0 {
		return false
	}
	p.Tiles[id].Pos, p.Tiles[0].Pos = p.Tiles[0].Pos, pos

	// Full-board check after every move
	if p.Validate() != nil {
		p.Repair()
	}
	return true
}

// Slide moves the tile next to the blank in the direction of travel: ActionUp
// moves the tile below the blank up, ActionLeft moves the tile right of it left.
func (p *Puzzle) Slide(dir core.Action) bool {
	row, col := p.Grid().Coord(p.Blank())
	switch dir {
	case core.ActionUp:
		row++
	case core.ActionDown:
		row--
	case core.ActionLeft:
		col++
	case core.ActionRight:
		col--
	default:
		return false
	}
	if row < 0 || row >= p.Size || col < 0 || col >= p.Size {
		return false
	}
	return p.Move(p.Grid().Index(row, col))
}

// Clone returns a deep copy of the puzzle.
func (p *Puzzle) Clone() *Puzzle {
	c := &Puzzle{Size: p.Size, Tiles: make([]Tile, len(p.Tiles))}
	copy(c.Tiles, p.Tiles)
	return c
}
