package core

// Snapshot is a copy of a game's round data: enough to draw the board or to
// compare two runs for determinism. Slices are copies and safe to keep.
type Snapshot struct {
	State    GameState
	Grid     Grid   // Board geometry, zero when the game has no board
	Cells    []int  // Per-cell content; meaning is per game, -1 = empty
	Cursor   int    // Highlighted cell, -1 when none
	Text     string // Shown or typed text (digits, current word)
	Sequence []int  // Ordered cells of the round (flash order, picks so far)
}

// CopyInts returns a copy of s, nil for an empty slice.
func CopyInts(s []int) []int {
	if len(s) == 0 {
		return nil
	}
	return append([]int(nil), s...)
}
