package game

import (
	"fmt"
	"math/rand"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/they4kman/sweepcore/util/collections"
)

// BoardSnapshot is a replayable record of a game: its seed and a character
// grid holding both the mine layout and each cell's visible state.
//
//	*  exploded mine        f  flagged (no mine under it)
//	F  flagged mine         .  revealed
//	O  covered mine         #  hidden
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Snapshot records the game's mine layout and visible board.
func (game Game) Snapshot() BoardSnapshot {
	var b strings.Builder
	for row := 0; row < game.Rows; row++ {
		if row > 0 {
			b.WriteString("\n")
		}
		for col := 0; col < game.Cols; col++ {
			b.WriteString(game.serializeCell(Cell{Row: row, Col: col}))
		}
	}
	return BoardSnapshot{
		Seed:            game.seed,
		SerializedBoard: b.String(),
	}
}

func (game Game) serializeCell(cell Cell) string {
	state := game.Board[cell]

	if game.Mines.Contains(cell) {
		switch state {
		case Exploded:
			return "*"
		case Flagged:
			return "F"
		default:
			return "O"
		}
	}

	switch {
	case state == Flagged:
		return "f"
	case state.IsRevealed():
		return "."
	default:
		return "#"
	}
}

// CreateGame rebuilds a game from the snapshot. With fresh set, every cell
// comes back hidden and only the mine layout is kept, ready to replay; the
// mine set arrives pre-populated either way, so the placement strategy is
// never consulted.
func (snapshot *BoardSnapshot) CreateGame(fresh bool) (Game, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Game{}, fmt.Errorf("snapshot holds no board")
	}

	numRows, numCols := len(rows), len(rows[0])
	mines := make(collections.Set[Cell])

	for rowIdx, row := range rows {
		if len(row) != numCols {
			return Game{}, fmt.Errorf("snapshot row %d is %d cells wide, want %d",
				rowIdx, len(row), numCols)
		}
		for colIdx, c := range row {
			switch c {
			case '*', 'F', 'O':
				mines.Add(Cell{Row: rowIdx, Col: colIdx})
			case 'f', '.', '#':
			default:
				return Game{}, fmt.Errorf("unrecognized cell %q in snapshot", c)
			}
		}
	}

	game := Game{
		Rows:     numRows,
		Cols:     numCols,
		NumMines: len(mines),
		Board:    newBoard(numRows, numCols),
		Mines:    mines,
		Status:   Playing,
		strategy: StandardStrategy{},
		seed:     snapshot.Seed,
		rand:     rand.New(rand.NewSource(snapshot.Seed)),
	}
	if fresh {
		return game, nil
	}

	for rowIdx, row := range rows {
		for colIdx, c := range row {
			cell := Cell{Row: rowIdx, Col: colIdx}
			switch c {
			case '*':
				game.Board[cell] = Exploded
			case 'F', 'f':
				game.Board[cell] = Flagged
			case '.':
				game.Board[cell] = CellState(countAdjacentMines(cell, mines))
			}
		}
	}
	game.Status = game.evaluateStatus()
	return game, nil
}
