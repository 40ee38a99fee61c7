package game

import (
	"fmt"
	"strconv"
)

// Cell is a board coordinate. It is a plain value type, so two Cells compare
// equal iff their coordinates do, and it can be used directly as a map key.
type Cell struct {
	Row, Col int
}

func (cell Cell) String() string {
	return fmt.Sprintf("(%d, %d)", cell.Row, cell.Col)
}

// IsAdjacent reports whether other is a distinct cell within one row and one
// column of cell. It is pure coordinate arithmetic and does not consult any
// board, so callers scanning a whole board domain can use it directly.
func (cell Cell) IsAdjacent(other Cell) bool {
	if cell == other {
		return false
	}
	return absDiff(cell.Row, other.Row) <= 1 && absDiff(cell.Col, other.Col) <= 1
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// CellState is the visible state of a single cell. Revealed cells carry their
// adjacent-mine count as their own value, so Empty..Number8 are 0..8.
type CellState int

const (
	Exploded CellState = iota - 3
	Flagged
	Hidden
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
)

// IsRevealed reports whether the cell has been opened (and did not explode).
func (state CellState) IsRevealed() bool {
	return state >= Empty
}

// MineCount returns the adjacent-mine count of a revealed cell, or -1 for
// any covered state.
func (state CellState) MineCount() int {
	if !state.IsRevealed() {
		return -1
	}
	return int(state)
}

func (state CellState) String() string {
	switch {
	case state == Exploded:
		return "*"
	case state == Flagged:
		return "F"
	case state == Hidden:
		return "#"
	case state == Empty:
		return "."
	case state >= Number1 && state <= Number8:
		return strconv.Itoa(int(state))
	default:
		return "!"
	}
}

// ActionKind discriminates the moves a player (or director) can make.
type ActionKind int

const (
	RevealAction ActionKind = iota
	FlagAction
)

func (kind ActionKind) String() string {
	switch kind {
	case RevealAction:
		return "reveal"
	case FlagAction:
		return "flag"
	default:
		return "unknown"
	}
}

// Action is a single proposed move against a game.
type Action struct {
	Cell Cell
	Kind ActionKind
}

func (action Action) String() string {
	return fmt.Sprintf("%s %s", action.Kind, action.Cell)
}
