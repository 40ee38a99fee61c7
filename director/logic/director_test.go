package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/sweepcore/game"
)

func restoreGame(t *testing.T, board string) game.Game {
	t.Helper()
	snapshot := &game.BoardSnapshot{SerializedBoard: board}
	g, err := snapshot.CreateGame(false)
	require.NoError(t, err)
	return g
}

func TestNextStepNoneOnFreshBoard(t *testing.T) {
	g, err := game.NewGame(game.GameConfig{Rows: 4, Cols: 4, NumMines: 2, Seed: 5})
	require.NoError(t, err)

	// no cell is revealed yet, so nothing can be forced
	_, ok := Director{}.NextStep(g)
	assert.False(t, ok)

	stepped, err := game.TakeStep(g, Director{})
	require.NoError(t, err)
	assert.Equal(t, g.Board, stepped.Board)
	assert.Equal(t, g.Status, stepped.Status)
}

func TestNextStepNoneWhenNothingIsForced(t *testing.T) {
	// a lone "1" with three covered neighbors forces nothing
	g := restoreGame(t, ""+
		"O#\n"+
		"#.")
	require.Equal(t, game.Playing, g.Status)

	_, ok := Director{}.NextStep(g)
	assert.False(t, ok)

	stepped, err := game.TakeStep(g, Director{})
	require.NoError(t, err)
	assert.Equal(t, g.Board, stepped.Board)
}

func TestNextStepFlagsForcedMine(t *testing.T) {
	// the "2" at (1, 0) has exactly two covered neighbors, so both must be
	// mines; the safe hidden cell at (0, 2) forces nothing
	g := restoreGame(t, ""+
		"OO#\n"+
		"...")
	require.Equal(t, game.Playing, g.Status)

	action, ok := Director{}.NextStep(g)
	require.True(t, ok)

	// board scan order is unspecified, but only flags qualify here, and
	// only on actual mines
	assert.Equal(t, game.FlagAction, action.Kind)
	assert.True(t, g.Mines.Contains(action.Cell), "flagged %s, which is not a mine", action.Cell)
}

func TestNextStepRevealsWhenQuotaIsFlagged(t *testing.T) {
	g := restoreGame(t, ""+
		"F#\n"+
		"..")
	require.Equal(t, game.Playing, g.Status)

	action, ok := Director{}.NextStep(g)
	require.True(t, ok)

	// the flag satisfies both numbered cells, so (0, 1) is provably safe
	assert.Equal(t, game.Action{Cell: game.Cell{Row: 0, Col: 1}, Kind: game.RevealAction}, action)

	g, err := g.Apply(action)
	require.NoError(t, err)
	assert.Equal(t, game.Won, g.Status)
}

func TestDirectorConvergesOnEndgame(t *testing.T) {
	// corner mine, two covered cells left; the director must flag the mine
	// and/or reveal its way to a win without ever guessing
	g := restoreGame(t, ""+
		"#..\n"+
		"...\n"+
		"..O")
	require.Equal(t, game.Playing, g.Status)

	for steps := 0; g.Status == game.Playing; steps++ {
		require.Less(t, steps, 10, "director failed to converge")

		next, err := game.TakeStep(g, Director{})
		require.NoError(t, err)
		if next.Status == g.Status && assert.ObjectsAreEqual(next.Board, g.Board) {
			break
		}
		g = next
	}

	assert.Equal(t, game.Won, g.Status)
	assert.NotEqual(t, game.Exploded, g.Board[game.Cell{Row: 2, Col: 2}])
}

func TestDirectorNeverExplodes(t *testing.T) {
	g, err := game.Beginner.NewGame(nil)
	require.NoError(t, err)

	g, err = g.Reveal(game.Cell{Row: 4, Col: 4})
	require.NoError(t, err)

	// drive the game until it is won or the director stalls; a logical
	// director may stall, but it must never lose
	for steps := 0; g.Status == game.Playing && steps < 500; steps++ {
		next, err := game.TakeStep(g, Director{})
		require.NoError(t, err)
		if next.Status == g.Status && assert.ObjectsAreEqual(next.Board, g.Board) {
			break
		}
		g = next
	}

	assert.NotEqual(t, game.Lost, g.Status)
}

func TestDirectorName(t *testing.T) {
	assert.Equal(t, "logic", Director{}.Name())
}
