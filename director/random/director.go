package random

import (
	"math/rand"
	"time"

	"github.com/they4kman/sweepcore/game"
)

// Director reveals a uniformly random hidden cell. It supplies the opening
// move of a fresh game and serves as the driver's fallback when nothing is
// logically forced.
type Director struct {
	Rand *rand.Rand
}

func New(seed int64) *Director {
	return &Director{Rand: rand.New(rand.NewSource(seed))}
}

func (*Director) Name() string {
	return "random"
}

func (director *Director) NextStep(g game.Game) (game.Action, bool) {
	if g.Status != game.Playing {
		return game.Action{}, false
	}

	hidden := make([]game.Cell, 0, len(g.Board))
	for _, cell := range g.Board.Cells() {
		if g.Board[cell] == game.Hidden {
			hidden = append(hidden, cell)
		}
	}
	if len(hidden) == 0 {
		return game.Action{}, false
	}

	if director.Rand == nil {
		director.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	cell := hidden[director.Rand.Intn(len(hidden))]
	return game.Action{Cell: cell, Kind: game.RevealAction}, true
}
