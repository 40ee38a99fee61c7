package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/they4kman/sweepcore/util/collections"
)

type GameStatus int

const (
	Playing GameStatus = iota
	Won
	Lost
)

func (status GameStatus) String() string {
	switch status {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

type GameConfig struct {
	Rows, Cols int
	NumMines   int

	// Strategy decides mine placement on the first reveal; nil means Standard
	Strategy Strategy

	// Seed for the shuffle collaborator; 0 draws a seed from the clock
	Seed int64
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Rows:     16,
		Cols:     30,
		NumMines: 99,
	}
}

// Game is a full game state. Every mutating operation returns a new Game
// value with a freshly cloned board; callers never observe a game mid-move.
type Game struct {
	Rows, Cols int
	NumMines   int
	Board      Board

	// Mines is empty until the first reveal invokes the placement strategy,
	// and immutable afterwards.
	Mines collections.Set[Cell]

	Status GameStatus

	strategy Strategy
	seed     int64
	rand     *rand.Rand
}

func NewGame(config GameConfig) (Game, error) {
	if config.Rows < 1 || config.Cols < 1 {
		return Game{}, fmt.Errorf("invalid board size %dx%d", config.Rows, config.Cols)
	}
	if config.NumMines < 0 || config.NumMines > config.Rows*config.Cols {
		return Game{}, fmt.Errorf("cannot place %d mines on a %dx%d board",
			config.NumMines, config.Rows, config.Cols)
	}

	strategy := config.Strategy
	if strategy == nil {
		strategy = StandardStrategy{}
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return Game{
		Rows:     config.Rows,
		Cols:     config.Cols,
		NumMines: config.NumMines,
		Board:    newBoard(config.Rows, config.Cols),
		Mines:    make(collections.Set[Cell]),
		Status:   Playing,
		strategy: strategy,
		seed:     seed,
		rand:     rand.New(rand.NewSource(seed)),
	}, nil
}

func (game Game) clone() Game {
	game.Board = game.Board.clone()
	return game
}

// Reveal opens a hidden cell and returns the resulting game. The first
// reveal of a game also places the mines, via the configured strategy, so
// the mine layout can honor its guarantees about the opening cell. Opening
// a cell whose adjacent-mine count is zero cascades (see floodReveal).
//
// Revealing a non-hidden cell, or revealing after the game has ended, is a
// caller bug and fails with InvalidCellStateError/InvalidGameStatusError.
func (game Game) Reveal(cell Cell) (Game, error) {
	if game.Status != Playing {
		return game, InvalidGameStatusError{Status: game.Status}
	}
	if state := game.Board[cell]; state != Hidden {
		return game, InvalidCellStateError{Cell: cell, State: state}
	}

	next := game.clone()
	if len(next.Mines) != next.NumMines {
		next.Mines = next.strategy.PlaceMines(next, cell)
	}
	next.floodReveal(cell)
	next.Status = next.evaluateStatus()
	return next, nil
}

// ToggleFlag flags a hidden cell, or unflags a flagged one. Unflagging a
// cell that borders a revealed zero-cell immediately reveals it as well:
// such a flag is necessarily stale (the zero-cell proves no mine is
// adjacent), and removing it must let the cascade finally claim the cell
// it was blocking.
func (game Game) ToggleFlag(cell Cell) (Game, error) {
	if game.Status != Playing {
		return game, InvalidGameStatusError{Status: game.Status}
	}

	switch state := game.Board[cell]; state {
	case Hidden:
		next := game.clone()
		next.Board[cell] = Flagged
		next.Status = next.evaluateStatus()
		return next, nil

	case Flagged:
		next := game.clone()
		next.Board[cell] = Hidden
		for _, neighbor := range game.Board.Neighbors(cell) {
			if game.Board[neighbor] == Empty {
				return next.Reveal(cell)
			}
		}
		return next, nil

	default:
		return game, InvalidCellStateError{Cell: cell, State: state}
	}
}

// Apply dispatches an Action to Reveal or ToggleFlag.
func (game Game) Apply(action Action) (Game, error) {
	switch action.Kind {
	case RevealAction:
		return game.Reveal(action.Cell)
	case FlagAction:
		return game.ToggleFlag(action.Cell)
	default:
		return game, fmt.Errorf("unknown action kind %d", action.Kind)
	}
}

// evaluateStatus derives the game status from the board alone. An exploded
// cell means the game is lost no matter what else the board shows; the game
// is won once the covered cells are exactly the mine-count many, whether or
// not any of them are (correctly) flagged.
func (game Game) evaluateStatus() GameStatus {
	covered := 0
	for _, state := range game.Board {
		switch state {
		case Exploded:
			return Lost
		case Hidden, Flagged:
			covered++
		}
	}
	if covered == game.NumMines {
		return Won
	}
	return Playing
}

func (game Game) String() string {
	return game.Board.Render(game.Rows, game.Cols)
}
