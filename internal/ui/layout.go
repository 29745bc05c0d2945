package ui

import "github.com/appengine-ltd/toybox/internal/calc"

// Keypad geometry in terminal cells. View and buttonAt must agree on it:
// title, blank, three-line display box, memo line, blank, then one row of
// buttons every other line.
const (
	cellWidth = 7
	cellGap   = 1
	gridCols  = 4
	gridTop   = 7
)

func spanWidth(span int) int {
	if span < 1 {
		span = 1
	}
	return span*cellWidth + (span-1)*cellGap
}

func gridWidth() int {
	return spanWidth(gridCols)
}

// buttonAt maps a terminal cell to the keypad button drawn there.
func buttonAt(pad [][]calc.Button, x, y int) (row, col int, ok bool) {
	if x < 0 || y < gridTop {
		return 0, 0, false
	}
	rel := y - gridTop
	if rel%2 != 0 {
		return 0, 0, false
	}
	row = rel / 2
	if row >= len(pad) {
		return 0, 0, false
	}
	left := 0
	for c, b := range pad[row] {
		w := spanWidth(b.Span)
		if x >= left && x < left+w {
			return row, c, true
		}
		left += w + cellGap
	}
	return 0, 0, false
}
