package game

import "github.com/gammazero/deque"

// floodReveal opens start and cascades through zero-count cells, mutating
// the receiver in place (callers hand it a private clone). The explicit work
// list keeps the cascade iterative, so boards of any size stay clear of
// call-stack limits. Each cell is processed at most once: the Hidden check
// at dequeue time discards duplicates, and every processed cell leaves the
// Hidden state, so the queue drains.
func (game *Game) floodReveal(start Cell) {
	var queue deque.Deque[Cell]
	queue.PushBack(start)

	for queue.Len() > 0 {
		cell := queue.PopFront()
		if game.Board[cell] != Hidden {
			continue
		}

		if game.Mines.Contains(cell) {
			game.Board[cell] = Exploded
			continue
		}

		count := countAdjacentMines(cell, game.Mines)
		game.Board[cell] = CellState(count)
		if count > 0 {
			continue
		}

		// The cascade scans the whole domain with bare coordinate
		// adjacency rather than the Neighbors set: it propagates through
		// any zero-valued cell, unbounded by the placement exclusion zone.
		for other, state := range game.Board {
			if state == Hidden && cell.IsAdjacent(other) {
				queue.PushBack(other)
			}
		}
	}
}
