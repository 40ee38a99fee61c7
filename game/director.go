package game

// Director proposes moves for an in-progress game. Implementations read the
// game value they are handed and never mutate it.
type Director interface {
	Name() string

	// NextStep returns the director's proposed action, or ok=false when it
	// has none to make.
	NextStep(game Game) (action Action, ok bool)
}

// TakeStep applies the director's proposed action, or returns the game
// unchanged when the director proposes none.
func TakeStep(game Game, director Director) (Game, error) {
	action, ok := director.NextStep(game)
	if !ok {
		return game, nil
	}
	return game.Apply(action)
}
