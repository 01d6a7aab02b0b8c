package cards

import (
	"fmt"

	"github.com/AvinashSingh09/WebBingo/internal/models"
)

// Line is a named set of cell positions forming a winning shape.
type Line struct {
	// ID is stable across the process, e.g. "row-0" or "col-3"
	ID string

	// Cells are the positions that must all be marked
	Cells []int
}

// Precomputed once at process start, shared read-only across all rooms.
var linesByVariant = map[models.Variant][]Line{
	models.VariantFilms:   gridLines(3, 9),
	models.VariantNumbers: gridLines(5, 5),
}

// LinesFor returns the win shapes for a variant: all rows and all columns,
// no diagonals.
func LinesFor(v models.Variant) []Line {
	return linesByVariant[v]
}

func gridLines(rows, cols int) []Line {
	lines := make([]Line, 0, rows+cols)
	for r := 0; r < rows; r++ {
		cells := make([]int, cols)
		for c := 0; c < cols; c++ {
			cells[c] = r*cols + c
		}
		lines = append(lines, Line{ID: fmt.Sprintf("row-%d", r), Cells: cells})
	}
	for c := 0; c < cols; c++ {
		cells := make([]int, rows)
		for r := 0; r < rows; r++ {
			cells[r] = r*cols + c
		}
		lines = append(lines, Line{ID: fmt.Sprintf("col-%d", c), Cells: cells})
	}
	return lines
}
