package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardPlacementProtectsOpening(t *testing.T) {
	g, err := NewGame(GameConfig{Rows: 9, Cols: 9, NumMines: 10, Seed: 42})
	require.NoError(t, err)

	first := Cell{Row: 4, Col: 4}
	g, err = g.Reveal(first)
	require.NoError(t, err)

	assert.Len(t, g.Mines, 10)
	assert.False(t, g.Mines.Contains(first), "opening cell was mined")
	for _, neighbor := range g.Board.Neighbors(first) {
		assert.False(t, g.Mines.Contains(neighbor), "opening neighbor %s was mined", neighbor)
	}

	// with the whole neighborhood mine-free, the opening always shows a zero
	assert.Equal(t, Empty, g.Board[first])
	assert.NotEqual(t, Lost, g.Status)
}

func TestImpossiblePlacementDetonatesOpening(t *testing.T) {
	for _, first := range []Cell{{0, 0}, {4, 4}, {8, 0}} {
		g, err := NewGame(GameConfig{
			Rows: 9, Cols: 9, NumMines: 10,
			Strategy: ImpossibleStrategy{},
			Seed:     7,
		})
		require.NoError(t, err)

		g, err = g.Reveal(first)
		require.NoError(t, err)

		assert.Len(t, g.Mines, 10)
		assert.True(t, g.Mines.Contains(first), "opening cell %s was not mined", first)
		assert.Equal(t, Exploded, g.Board[first])
		assert.Equal(t, Lost, g.Status)
	}
}

func TestPlacementIsLazy(t *testing.T) {
	g, err := NewGame(GameConfig{Rows: 9, Cols: 9, NumMines: 30, Seed: 3})
	require.NoError(t, err)
	assert.Empty(t, g.Mines, "mines placed before the first reveal")

	g, err = g.Reveal(Cell{Row: 4, Col: 4})
	require.NoError(t, err)
	require.Len(t, g.Mines, 30)

	placed := g.Mines

	// a later reveal must not re-run placement
	for _, cell := range g.Board.Cells() {
		if g.Board[cell] != Hidden || g.Mines.Contains(cell) {
			continue
		}
		g, err = g.Reveal(cell)
		require.NoError(t, err)
		break
	}
	assert.Equal(t, placed, g.Mines)
}

func TestSeededPlacementIsReproducible(t *testing.T) {
	place := func() Game {
		g, err := NewGame(GameConfig{Rows: 16, Cols: 16, NumMines: 40, Seed: 1234})
		require.NoError(t, err)
		g, err = g.Reveal(Cell{Row: 8, Col: 8})
		require.NoError(t, err)
		return g
	}

	first, second := place(), place()
	assert.Equal(t, first.Mines, second.Mines)
	assert.Equal(t, first.Board, second.Board)
}

func TestZeroMinesNeverInvokesStrategy(t *testing.T) {
	// an empty mine set already matches NumMines, so placement never runs
	// and the first reveal clears the whole board
	g, err := NewGame(GameConfig{Rows: 3, Cols: 3, NumMines: 0, Seed: 1})
	require.NoError(t, err)

	g, err = g.Reveal(Cell{Row: 1, Col: 1})
	require.NoError(t, err)

	assert.Empty(t, g.Mines)
	assert.Equal(t, Won, g.Status)
	for _, cell := range g.Board.Cells() {
		assert.Equal(t, Empty, g.Board[cell])
	}
}

func TestNewGameValidation(t *testing.T) {
	cases := []struct {
		name   string
		config GameConfig
	}{
		{"zero rows", GameConfig{Rows: 0, Cols: 9, NumMines: 1}},
		{"zero cols", GameConfig{Rows: 9, Cols: 0, NumMines: 1}},
		{"negative mines", GameConfig{Rows: 9, Cols: 9, NumMines: -1}},
		{"more mines than cells", GameConfig{Rows: 3, Cols: 3, NumMines: 10}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewGame(c.config)
			assert.Error(t, err)
		})
	}
}

func TestStrategyRegistry(t *testing.T) {
	require.Contains(t, Strategies, "standard")
	require.Contains(t, Strategies, "impossible")
	assert.Equal(t, "Standard", Strategies["standard"].Name())
	assert.Equal(t, "Impossible", Strategies["impossible"].Name())
}

func TestDifficultyPresets(t *testing.T) {
	cases := []struct {
		difficulty Difficulty
		rows, cols int
		numMines   int
	}{
		{Trivial, 9, 9, 5},
		{Beginner, 9, 9, 10},
		{Intermediate, 16, 16, 40},
		{Expert, 16, 30, 99},
	}

	for _, c := range cases {
		t.Run(c.difficulty.Name, func(t *testing.T) {
			assert.Equal(t, c.rows, c.difficulty.Rows)
			assert.Equal(t, c.cols, c.difficulty.Cols)
			assert.Equal(t, c.numMines, c.difficulty.NumMines)

			g, err := c.difficulty.NewGame(nil)
			require.NoError(t, err)
			assert.Len(t, g.Board, c.rows*c.cols)
			assert.Equal(t, c.numMines, g.NumMines)
			assert.Equal(t, Playing, g.Status)
		})
	}
}
