// Package core provides fundamental types for the mind games: phases and the
// phase machine, the tick-driven scheduler, input, effects and the screen buffer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Grid describes a rows x cols board addressed by row-major cell index.
type Grid struct {
	Rows int
	Cols int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(rows, cols int) Grid {
	return Grid{Rows: rows, Cols: cols}
}

// Square creates a size x size grid.
func Square(size int) Grid {
	return Grid{Rows: size, Cols: size}
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

// Index converts (row, col) to a cell index.
func (g Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// Coord converts a cell index to (row, col).
func (g Grid) Coord(idx int) (row, col int) {
	return idx / g.Cols, idx % g.Cols
}

// Valid returns true if idx addresses a cell of this grid.
func (g Grid) Valid(idx int) bool {
	return idx >= 0 && idx < g.Cells()
}

// Adjacent returns true if a and b share an edge.
func (g Grid) Adjacent(a, b int) bool {
	ar, ac := g.Coord(a)
	br, bc := g.Coord(b)
	return Abs(ar-br)+Abs(ac-bc) == 1
}

// Neighbors returns the edge-adjacent cells of idx in up, down, left, right order.
func (g Grid) Neighbors(idx int) []int {
	row, col := g.Coord(idx)
	out := make([]int, 0, 4)
	if row > 0 {
		out = append(out, idx-g.Cols)
	}
	if row < g.Rows-1 {
		out = append(out, idx+g.Cols)
	}
	if col > 0 {
		out = append(out, idx-1)
	}
	if col < g.Cols-1 {
		out = append(out, idx+1)
	}
	return out
}

// Step moves idx one cell in the given direction, clamped to the grid.
func (g Grid) Step(idx int, a Action) int {
	row, col := g.Coord(idx)
	switch a {
	case ActionUp:
		row--
	case ActionDown:
		row++
	case ActionLeft:
		col--
	case ActionRight:
		col++
	}
	return g.Index(Clamp(row, 0, g.Rows-1), Clamp(col, 0, g.Cols-1))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
