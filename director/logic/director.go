package logic

import (
	"github.com/sirupsen/logrus"

	"github.com/they4kman/sweepcore/game"
)

// Log carries the director's per-deduction Debug entries. Callers tune its
// level to watch the reasoning.
var Log = logrus.New()

// Director proposes only logically forced moves: it flags a cell when some
// numbered neighbor needs every covered cell around it to be a mine, and
// reveals a cell when some numbered neighbor already has its full mine
// quota flagged. It never guesses: NextStep reports no move when nothing
// is forced, which can happen well before the game is over.
type Director struct{}

func (Director) Name() string {
	return "logic"
}

func (director Director) NextStep(g game.Game) (game.Action, bool) {
	if g.Status != game.Playing {
		return game.Action{}, false
	}

	// Board iteration order is unspecified; any qualifying cell will do.
	for cell, state := range g.Board {
		if state != game.Hidden {
			continue
		}
		if action, ok := director.deduce(g, cell); ok {
			return action, true
		}
	}
	return game.Action{}, false
}

// deduce inspects the numbered neighbors of a hidden cell. The flag rule is
// checked against every neighbor before the reveal rule, so a cell that
// must be a mine is never revealed off another neighbor's satisfied quota.
func (Director) deduce(g game.Game, cell game.Cell) (game.Action, bool) {
	neighbors := g.Board.Neighbors(cell)

	for _, neighbor := range neighbors {
		count := g.Board[neighbor].MineCount()
		if count < 0 {
			continue
		}
		if coveredNeighbors(g, neighbor) == count {
			Log.WithFields(logrus.Fields{
				"cell":     cell,
				"neighbor": neighbor,
				"count":    count,
			}).Debug("every covered neighbor must be a mine; flagging")
			return game.Action{Cell: cell, Kind: game.FlagAction}, true
		}
	}

	for _, neighbor := range neighbors {
		count := g.Board[neighbor].MineCount()
		if count < 0 {
			continue
		}
		if flagged := flaggedNeighbors(g, neighbor); count <= flagged {
			Log.WithFields(logrus.Fields{
				"cell":     cell,
				"neighbor": neighbor,
				"count":    count,
				"flagged":  flagged,
			}).Debug("mine quota already flagged; revealing")
			return game.Action{Cell: cell, Kind: game.RevealAction}, true
		}
	}

	return game.Action{}, false
}

func coveredNeighbors(g game.Game, cell game.Cell) (count int) {
	for _, neighbor := range g.Board.Neighbors(cell) {
		if state := g.Board[neighbor]; state == game.Hidden || state == game.Flagged {
			count++
		}
	}
	return
}

func flaggedNeighbors(g game.Game, cell game.Cell) (count int) {
	for _, neighbor := range g.Board.Neighbors(cell) {
		if g.Board[neighbor] == game.Flagged {
			count++
		}
	}
	return
}
