// Package gridview draws the boards and status lines shared by the
// grid-based games and maps cursor input onto board cells.
package gridview

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/mindgym/internal/core"
)

// Cell describes how one board cell is drawn.
type Cell struct {
	Label string     // Centered text, may be empty
	Color core.Color // Border and label color
	Fill  bool       // Paint the cell interior solid
	Blank bool       // Draw nothing at all
}

// Layout places a grid on the screen.
type Layout struct {
	Grid  core.Grid
	X, Y  int
	CellW int
	CellH int // 3 for boxed cells, 1 for compact bracketed cells
}

// Rows reserved for the header and the footer.
const (
	headerRows = 2
	footerRows = 2
)

// Fit centers the grid in the area between the header and the footer,
// choosing boxed cells when they fit and compact cells otherwise.
func Fit(dst *core.Screen, g core.Grid, cellW int) Layout {
	avail := dst.Height() - headerRows - footerRows
	l := Layout{Grid: g, CellW: cellW, CellH: 3}
	if g.Rows*3 > avail {
		l.CellH = 1
	}
	w := g.Cols * l.CellW
	h := g.Rows * l.CellH
	l.X = (dst.Width() - w) / 2
	l.Y = headerRows + (avail-h)/2
	if l.X < 0 {
		l.X = 0
	}
	if l.Y < headerRows {
		l.Y = headerRows
	}
	return l
}

// CellRect returns the screen rectangle of cell idx.
func (l Layout) CellRect(idx int) core.Rect {
	row, col := l.Grid.Coord(idx)
	return core.NewRect(l.X+col*l.CellW, l.Y+row*l.CellH, l.CellW, l.CellH)
}

// CellAt maps a screen position back to a cell index, or -1.
func (l Layout) CellAt(x, y int) int {
	for idx := 0; idx < l.Grid.Cells(); idx++ {
		if l.CellRect(idx).Contains(x, y) {
			return idx
		}
	}
	return -1
}

// Draw renders every cell. The cursor cell is highlighted; pass -1 for none.
func (l Layout) Draw(dst *core.Screen, cursor int, cell func(idx int) Cell) {
	for idx := 0; idx < l.Grid.Cells(); idx++ {
		c := cell(idx)
		if c.Blank && idx != cursor {
			continue
		}
		r := l.CellRect(idx)
		if l.CellH >= 3 {
			l.drawBoxed(dst, r, c, idx == cursor)
		} else {
			l.drawCompact(dst, r, c, idx == cursor)
		}
	}
}

func (l Layout) drawBoxed(dst *core.Screen, r core.Rect, c Cell, focused bool) {
	border := c.Color
	if focused {
		border = core.ColorBrightYellow
	}
	dst.DrawBox(r, border)
	if c.Fill {
		for x := r.X + 1; x < r.Right()-1; x++ {
			dst.SetColored(x, r.Y+1, '█', c.Color)
		}
	}
	if c.Label != "" {
		x := r.X + (r.W-runewidth.StringWidth(c.Label))/2
		dst.DrawTextColored(x, r.Y+1, c.Label, c.Color)
	}
}

func (l Layout) drawCompact(dst *core.Screen, r core.Rect, c Cell, focused bool) {
	left, right := '[', ']'
	if focused {
		left, right = '>', '<'
	}
	dst.SetColored(r.X, r.Y, left, c.Color)
	dst.SetColored(r.Right()-1, r.Y, right, c.Color)

	inner := r.W - 2
	text := c.Label
	if c.Fill {
		text = strings.Repeat("█", inner)
	}
	if w := runewidth.StringWidth(text); w < inner {
		text = strings.Repeat(" ", (inner-w+1)/2) + text
	}
	dst.DrawTextColored(r.X+1, r.Y, runewidth.Truncate(text, inner, ""), c.Color)
}

// Header draws the title on the first row with the status right-aligned.
func Header(dst *core.Screen, title, status string) {
	dst.DrawTextColored(1, 0, title, core.ColorBrightCyan)
	x := dst.Width() - runewidth.StringWidth(status) - 1
	dst.DrawTextColored(x, 0, status, core.ColorWhite)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// Footer draws a key hint on the last row.
func Footer(dst *core.Screen, hint string) {
	dst.DrawTextCentered(dst.Height()-1, hint, core.ColorGray)
}

// Message draws a centered line just above the footer.
func Message(dst *core.Screen, text string, c core.Color) {
	dst.DrawTextCentered(dst.Height()-2, text, c)
}

// Center draws a centered line in the middle of the play area, offset by dy rows.
func Center(dst *core.Screen, dy int, text string, c core.Color) {
	dst.DrawTextCentered(dst.Height()/2+dy, text, c)
}

// Pick interprets grid input: directions move the cursor, Confirm picks the
// cell under it and Select picks an explicit cell (moving the cursor there).
// It reports the picked cell and whether the input was a pick.
func Pick(in core.Input, g core.Grid, cursor *int) (int, bool) {
	switch {
	case in.Action.IsDirection():
		if !g.Valid(*cursor) {
			*cursor = 0
			return -1, false
		}
		*cursor = g.Step(*cursor, in.Action)
		return -1, false
	case in.Action == core.ActionConfirm:
		if !g.Valid(*cursor) {
			return -1, false
		}
		return *cursor, true
	case in.Action == core.ActionSelect:
		if !g.Valid(in.Cell) {
			return -1, false
		}
		*cursor = in.Cell
		return in.Cell, true
	}
	return -1, false
}

// Status joins header fragments such as "Level 3" and "Lives 2".
// Empty parts are left out.
func Status(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "   ")
}
