package game

import (
	"sort"
	"strings"

	"github.com/they4kman/sweepcore/util/collections"
)

// Board maps every cell of a rows×cols rectangle to its visible state. The
// domain is fixed at creation: no cell is ever added or removed afterwards.
type Board map[Cell]CellState

func newBoard(rows, cols int) Board {
	board := make(Board, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			board[Cell{Row: row, Col: col}] = Hidden
		}
	}
	return board
}

func (board Board) clone() Board {
	cloned := make(Board, len(board))
	for cell, state := range board {
		cloned[cell] = state
	}
	return cloned
}

// Neighbors returns the up-to-8 cells adjacent to cell which exist on the
// board. Corner cells have 3 neighbors, edge cells 5, interior cells 8.
func (board Board) Neighbors(cell Cell) []Cell {
	neighbors := make([]Cell, 0, 8)
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			neighbor := Cell{Row: cell.Row + dRow, Col: cell.Col + dCol}
			if _, ok := board[neighbor]; ok {
				neighbors = append(neighbors, neighbor)
			}
		}
	}
	return neighbors
}

// countCovered returns the number of cells still hidden or flagged.
func (board Board) countCovered() (count int) {
	for _, state := range board {
		if state == Hidden || state == Flagged {
			count++
		}
	}
	return
}

// Cells returns the board's domain in row-major order. Map iteration order
// is randomized, so anything that must be reproducible under a seed
// (sampling, guessing) goes through this.
func (board Board) Cells() []Cell {
	cells := make([]Cell, 0, len(board))
	for cell := range board {
		cells = append(cells, cell)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

// Render returns the board as a cols-wide character grid, one cell state
// per column.
func (board Board) Render(rows, cols int) string {
	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if col > 0 {
				b.WriteString(" ")
			}
			b.WriteString(board[Cell{Row: row, Col: col}].String())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// countAdjacentMines counts the mines adjacent to cell, scanning by mine
// coordinate rather than by neighbor set so it works before the cell's own
// state is written.
func countAdjacentMines(cell Cell, mines collections.Set[Cell]) (count int) {
	for mine := range mines {
		if cell.IsAdjacent(mine) {
			count++
		}
	}
	return
}
