package game

// Difficulty is a named preset of board dimensions and mine count.
type Difficulty struct {
	Name       string
	Rows, Cols int
	NumMines   int
}

var (
	Trivial      = Difficulty{Name: "Trivial", Rows: 9, Cols: 9, NumMines: 5}
	Beginner     = Difficulty{Name: "Beginner", Rows: 9, Cols: 9, NumMines: 10}
	Intermediate = Difficulty{Name: "Intermediate", Rows: 16, Cols: 16, NumMines: 40}
	Expert       = Difficulty{Name: "Expert", Rows: 16, Cols: 30, NumMines: 99}
)

// Difficulties names every preset, for UI selection.
var Difficulties = map[string]Difficulty{
	"trivial":      Trivial,
	"beginner":     Beginner,
	"intermediate": Intermediate,
	"expert":       Expert,
}

// Config returns a GameConfig sized from the preset; callers fill in
// Strategy and Seed as needed.
func (difficulty Difficulty) Config() GameConfig {
	return GameConfig{
		Rows:     difficulty.Rows,
		Cols:     difficulty.Cols,
		NumMines: difficulty.NumMines,
	}
}

// NewGame constructs a game from the preset. A nil strategy means Standard.
func (difficulty Difficulty) NewGame(strategy Strategy) (Game, error) {
	config := difficulty.Config()
	config.Strategy = strategy
	return NewGame(config)
}
