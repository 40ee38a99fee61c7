package game

import "fmt"

// InvalidCellStateError reports a reveal or flag toggle on a cell whose
// current state does not satisfy the action's precondition. It indicates a
// bug in the caller, not a recoverable condition.
type InvalidCellStateError struct {
	Cell  Cell
	State CellState
}

func (e InvalidCellStateError) Error() string {
	return fmt.Sprintf("cell %s is %q and does not allow this action", e.Cell, e.State)
}

// InvalidGameStatusError reports a mutating action on a game that is no
// longer playing.
type InvalidGameStatusError struct {
	Status GameStatus
}

func (e InvalidGameStatusError) Error() string {
	return fmt.Sprintf("game is already %s; no further moves are allowed", e.Status)
}
