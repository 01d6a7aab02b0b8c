package models

// Variant selects the card layout and win rules for a deployment.
type Variant string

const (
	// VariantFilms is a 3x9 grid with five filled cells per row drawn from
	// the film catalog; the only win condition is full coverage.
	VariantFilms Variant = "films"

	// VariantNumbers is the classic 5x5 grid with one numeric range per
	// column and an always-marked free center; completing any row or
	// column wins.
	VariantNumbers Variant = "numbers"
)

// CellKind describes what a single card cell holds.
type CellKind int

const (
	// CellEmpty is a padding cell that can never be marked.
	CellEmpty CellKind = iota

	// CellFree is an always-marked cell (the 5x5 center).
	CellFree

	// CellItem holds a drawable item value.
	CellItem
)

// Cell is one position on a card.
type Cell struct {
	// Kind describes how the cell participates in marking and wins
	Kind CellKind

	// Value is the drawable item; empty for CellEmpty and CellFree
	Value string
}

// Card is a player's fixed grid, fully determined by (room seed, player ID).
type Card struct {
	// Variant the card was generated for
	Variant Variant

	// Rows and Cols give the grid dimensions
	Rows int
	Cols int

	// Cells in row-major order, len == Rows*Cols
	Cells []Cell
}

// Items returns every drawable item value on the card, in cell order.
func (c Card) Items() []string {
	items := make([]string, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if cell.Kind == CellItem {
			items = append(items, cell.Value)
		}
	}
	return items
}

// FreeCells returns the positions of always-marked cells.
func (c Card) FreeCells() []int {
	var free []int
	for i, cell := range c.Cells {
		if cell.Kind == CellFree {
			free = append(free, i)
		}
	}
	return free
}
