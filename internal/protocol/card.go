package protocol

import "github.com/AvinashSingh09/WebBingo/internal/models"

// FromCard converts a card to its wire form.
func FromCard(card models.Card) WireCard {
	cells := make([]WireCell, len(card.Cells))
	for i, cell := range card.Cells {
		switch cell.Kind {
		case models.CellFree:
			v := "FREE"
			cells[i] = WireCell{Value: &v, Free: true}
		case models.CellItem:
			v := cell.Value
			cells[i] = WireCell{Value: &v}
		default:
			// padding cell, Value stays null
		}
	}
	return WireCard{
		Variant: string(card.Variant),
		Rows:    card.Rows,
		Cols:    card.Cols,
		Cells:   cells,
	}
}

// MarkedIndexes flattens a mark set into a sorted-free wire list. Order is
// not significant to clients.
func MarkedIndexes(marks map[int]bool) []int {
	out := make([]int, 0, len(marks))
	for idx, on := range marks {
		if on {
			out = append(out, idx)
		}
	}
	return out
}
