package game

import "github.com/they4kman/sweepcore/util/collections"

// Strategy decides which cells are mined, given the first cell the player
// reveals. A game invokes its strategy exactly once, lazily, on that first
// reveal.
type Strategy interface {
	Name() string

	// PlaceMines returns a mine set of exactly game.NumMines cells.
	// The board must hold at least that many candidates after the
	// strategy's exclusions; a mine count too high for the board is a
	// configuration error, not a runtime case to recover from.
	PlaceMines(game Game, first Cell) collections.Set[Cell]
}

// StandardStrategy never mines the first-revealed cell or any of its
// neighbors, so the opening reveal always shows a zero and cascades.
type StandardStrategy struct{}

func (StandardStrategy) Name() string { return "Standard" }

func (StandardStrategy) PlaceMines(game Game, first Cell) collections.Set[Cell] {
	excluded := make(collections.Set[Cell], 9)
	excluded.Add(first)
	for _, neighbor := range game.Board.Neighbors(first) {
		excluded.Add(neighbor)
	}
	return sampleCells(game, excluded, game.NumMines)
}

// ImpossibleStrategy mines the first-revealed cell itself: the opening
// reveal always detonates.
type ImpossibleStrategy struct{}

func (ImpossibleStrategy) Name() string { return "Impossible" }

func (ImpossibleStrategy) PlaceMines(game Game, first Cell) collections.Set[Cell] {
	excluded := make(collections.Set[Cell], 1)
	excluded.Add(first)

	mines := sampleCells(game, excluded, game.NumMines-1)
	mines.Add(first)
	return mines
}

// Strategies names every placement strategy, for UI selection.
var Strategies = map[string]Strategy{
	"standard":   StandardStrategy{},
	"impossible": ImpossibleStrategy{},
}

// sampleCells draws n distinct cells from the board's domain minus the
// excluded set, shuffle-and-take. Candidates are collected in row-major
// order before shuffling so a seeded game places the same mines every run.
func sampleCells(game Game, excluded collections.Set[Cell], n int) collections.Set[Cell] {
	candidates := make([]Cell, 0, len(game.Board)-len(excluded))
	for _, cell := range game.Board.Cells() {
		if !excluded.Contains(cell) {
			candidates = append(candidates, cell)
		}
	}

	game.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	sampled := make(collections.Set[Cell], n)
	for _, cell := range candidates[:n] {
		sampled.Add(cell)
	}
	return sampled
}
