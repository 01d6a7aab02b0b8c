package cards

import (
	"strconv"

	"github.com/AvinashSingh09/WebBingo/internal/models"
)

const (
	filmRows       = 3
	filmCols       = 9
	filmsPerRow    = 5
	numberRows     = 5
	numberCols     = 5
	numbersPerCol  = 5
	numberRangeLen = 15
	freeCenterIdx  = 12
)

// Generator produces deterministic cards for one game variant.
type Generator struct {
	variant models.Variant
}

// Config for the card generator.
type Config struct {
	// Variant selects the card layout; defaults to films.
	Variant models.Variant
}

// New creates a new card generator.
func New(cfg *Config) *Generator {
	variant := models.VariantFilms
	if cfg != nil && cfg.Variant != "" {
		variant = cfg.Variant
	}
	return &Generator{variant: variant}
}

// Variant returns the configured card variant.
func (g *Generator) Variant() models.Variant {
	return g.variant
}

// Generate derives a card from the room seed and player identity. It is pure:
// the same inputs always yield the same card, regardless of call order.
func (g *Generator) Generate(seed uint32, playerID string) models.Card {
	r := newRNG(seed ^ hashString(playerID))
	if g.variant == models.VariantNumbers {
		return generateNumbers(r)
	}
	return generateFilms(r)
}

// generateFilms fills five of nine random columns per row from a shuffled
// copy of the film catalog, with no film repeated across the card.
func generateFilms(r *rng) models.Card {
	films := make([]string, len(filmCatalog))
	copy(films, filmCatalog)
	for i := len(films) - 1; i > 0; i-- {
		j := r.intn(i + 1)
		films[i], films[j] = films[j], films[i]
	}

	cells := make([]models.Cell, filmRows*filmCols)
	next := 0
	for row := 0; row < filmRows; row++ {
		positions := make([]int, 0, filmsPerRow)
		for len(positions) < filmsPerRow {
			pos := r.intn(filmCols)
			if !containsInt(positions, pos) {
				positions = append(positions, pos)
			}
		}
		for _, pos := range positions {
			cells[row*filmCols+pos] = models.Cell{Kind: models.CellItem, Value: films[next]}
			next++
		}
	}

	return models.Card{Variant: models.VariantFilms, Rows: filmRows, Cols: filmCols, Cells: cells}
}

// generateNumbers draws each column without replacement from its own
// 15-value range and marks the center cell free.
func generateNumbers(r *rng) models.Card {
	cells := make([]models.Cell, numberRows*numberCols)
	for col := 0; col < numberCols; col++ {
		low := col*numberRangeLen + 1
		chosen := make([]int, 0, numbersPerCol)
		for len(chosen) < numbersPerCol {
			n := low + r.intn(numberRangeLen)
			if !containsInt(chosen, n) {
				chosen = append(chosen, n)
			}
		}
		for row := 0; row < numberRows; row++ {
			cells[row*numberCols+col] = models.Cell{
				Kind:  models.CellItem,
				Value: strconv.Itoa(chosen[row]),
			}
		}
	}
	cells[freeCenterIdx] = models.Cell{Kind: models.CellFree}

	return models.Card{Variant: models.VariantNumbers, Rows: numberRows, Cols: numberCols, Cells: cells}
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
