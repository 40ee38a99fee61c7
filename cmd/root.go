package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/sweepcore/director/logic"
	"github.com/they4kman/sweepcore/director/random"
	"github.com/they4kman/sweepcore/game"
)

var log = logrus.New()

var (
	gameConfig  = game.NewGameConfig()
	difficulty  game.Difficulty
	useGuess    bool
	verbose     bool
	snapshotDir string
)

var rootCmd = &cobra.Command{
	Use:   "sweepcore",
	Short: "Watch the logical director play Minesweeper",
	Long: `sweepcore drives its Minesweeper rules engine from the command line:
it builds a board, reveals an opening cell, and lets the logical director
flag and reveal every forced cell until the game is won, lost, or stalled.

Pick a preset
	sweepcore --difficulty beginner

Or size the board by hand
	sweepcore --rows 16 --cols 30 --mines 99

Use the impossible strategy to lose on the very first reveal
	sweepcore --strategy impossible
`,
	Run: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
			logic.Log.SetLevel(logrus.DebugLevel)
		}

		if cmd.Flags().Changed("difficulty") {
			if !cmd.Flags().Changed("rows") {
				gameConfig.Rows = difficulty.Rows
			}
			if !cmd.Flags().Changed("cols") {
				gameConfig.Cols = difficulty.Cols
			}
			if !cmd.Flags().Changed("mines") {
				gameConfig.NumMines = difficulty.NumMines
			}
		}
		if gameConfig.Seed == 0 {
			gameConfig.Seed = time.Now().UnixNano()
		}

		g, err := game.NewGame(gameConfig)
		if err != nil {
			log.Fatal(err)
		}

		directors := []game.Director{logic.Director{}}
		if useGuess {
			directors = append(directors, random.New(gameConfig.Seed))
		}

		moves := 0
		for g.Status == game.Playing {
			acted := false
			for _, director := range directors {
				action, ok := director.NextStep(g)
				if !ok {
					continue
				}

				next, err := g.Apply(action)
				if err != nil {
					log.WithError(err).Fatal("director proposed an illegal move")
				}
				log.WithFields(logrus.Fields{
					"director": director.Name(),
					"action":   action.String(),
				}).Debug("applied step")

				g = next
				moves++
				acted = true
				break
			}

			if !acted {
				log.Info("no move is logically forced; stopping")
				break
			}
		}

		fmt.Print(g)
		log.WithFields(logrus.Fields{
			"status": g.Status,
			"moves":  moves,
			"seed":   gameConfig.Seed,
		}).Info("done")

		if snapshotDir != "" {
			saveSnapshot(g)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func saveSnapshot(g game.Game) {
	stat, err := os.Stat(snapshotDir)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(snapshotDir, 0777); err != nil {
				log.Error(err)
				return
			}
		} else {
			log.Error(err)
			return
		}
	} else if !stat.Mode().IsDir() {
		log.Errorf("%s is not a directory; cannot save snapshots to it", snapshotDir)
		return
	}

	path := filepath.Join(snapshotDir, generateReplayFilename(g, time.Now()))

	snapshot := g.Snapshot()
	if err := os.WriteFile(path, []byte(snapshot.Serialize()), 0666); err != nil {
		log.Error(err)
		return
	}
	log.WithField("path", path).Info("saved snapshot")
}

func generateReplayFilename(g game.Game, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var statusStr string
	switch g.Status {
	case game.Won:
		statusStr = "win"
	case game.Lost:
		statusStr = "loss"
	default:
		statusStr = "other"
	}
	filenameBuilder.WriteString(statusStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}

type difficultyValue struct {
	difficulty *game.Difficulty
}

func (value *difficultyValue) String() string {
	return strings.ToLower(value.difficulty.Name)
}

func (value *difficultyValue) Set(name string) error {
	difficulty, isValid := game.Difficulties[strings.ToLower(name)]
	if !isValid {
		return fmt.Errorf("invalid difficulty")
	}
	*value.difficulty = difficulty
	return nil
}

func (value *difficultyValue) Type() string {
	return "game.Difficulty"
}

type strategyValue struct {
	strategy *game.Strategy
}

func (value *strategyValue) String() string {
	if *value.strategy == nil {
		return "standard"
	}
	return strings.ToLower((*value.strategy).Name())
}

func (value *strategyValue) Set(name string) error {
	strategy, isValid := game.Strategies[strings.ToLower(name)]
	if !isValid {
		return fmt.Errorf("invalid strategy")
	}
	*value.strategy = strategy
	return nil
}

func (value *strategyValue) Type() string {
	return "game.Strategy"
}

func init() {
	rootCmd.Flags().IntVarP(&gameConfig.Rows, "rows", "r", gameConfig.Rows, "Number of rows in the game board")
	rootCmd.Flags().IntVarP(&gameConfig.Cols, "cols", "c", gameConfig.Cols, "Number of columns in the game board")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", gameConfig.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement and guessing (0 draws one from the clock)")
	rootCmd.Flags().VarP(&difficultyValue{&difficulty}, "difficulty", "d", "Named preset: trivial, beginner, intermediate or expert")
	rootCmd.Flags().VarP(&strategyValue{&gameConfig.Strategy}, "strategy", "s", `Mine placement strategy.
standard: the first-revealed cell and its neighbors are kept mine-free
impossible: the first-revealed cell is always a mine`)
	rootCmd.Flags().BoolVarP(&useGuess, "guess", "g", true, "Reveal a random cell when no move is logically forced")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every step the directors take")
	rootCmd.Flags().StringVar(&snapshotDir, "snapshot-dir", "", "Path to directory where a snapshot of the final board should be saved")
}
