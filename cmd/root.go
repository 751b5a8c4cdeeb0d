package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/cavesweep/director/constraint"
	"github.com/they4kman/cavesweep/director/random"
	"github.com/they4kman/cavesweep/game"
)

var gameConfig = game.NewGameConfig()
var directorName = "none"
var snapshotPath string
var verbose = false

var rootCmd = &cobra.Command{
	Use:   "cavesweep",
	Short: "Play Minesweeper with radars and rockets",
	Long: `cavesweep is a Minesweeper game played on the terminal, with radar
and rocket power-ups hidden among the mines.

Run with no arguments to play manually
	cavesweep

Use the director flag to make the computer play for you
	cavesweep --director constraint

Replay the layout of a saved game
	cavesweep --snapshot snapshots/20240101_120000_loss.yaml
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			game.Log.SetLevel(logrus.DebugLevel)
		}

		if !cmd.Flags().Changed("seed") {
			gameConfig.Seed = time.Now().UnixNano()
		}

		if snapshotPath != "" {
			in, err := os.ReadFile(snapshotPath)
			if err != nil {
				return err
			}
			if gameConfig.Snapshot, err = game.LoadSnapshot(string(in)); err != nil {
				return err
			}
		}

		if newDirector := directors[directorName]; newDirector != nil {
			gameConfig.Director = newDirector(gameConfig.Seed)
		}

		return game.Run(gameConfig, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var directors = map[string]func(seed int64) game.Director{
	"none": nil,
	"random": func(seed int64) game.Director {
		return random.New(seed)
	},
	"constraint": func(seed int64) game.Director {
		return &constraint.Director{}
	},
}

type directorValue string

func newDirectorValue(val string, p *string) *directorValue {
	*p = val
	return (*directorValue)(p)
}

func (value *directorValue) String() string {
	return string(*value)
}

func (value *directorValue) Set(name string) error {
	if _, isValid := directors[name]; !isValid {
		return fmt.Errorf("invalid director %q, expected one of %s", name, directorNames())
	}
	*value = directorValue(name)
	return nil
}

func (value *directorValue) Type() string {
	return "director"
}

func directorNames() string {
	names := make([]string, 0, len(directors))
	for name := range directors {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", gameConfig.Width, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", gameConfig.Height, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", gameConfig.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().IntVar(&gameConfig.NumRadars, "radars", gameConfig.NumRadars, "Number of radar power-ups")
	rootCmd.Flags().IntVar(&gameConfig.NumRockets, "rockets", gameConfig.NumRockets, "Number of rocket power-ups")
	rootCmd.Flags().Int64VarP(&gameConfig.Seed, "seed", "s", 0, "Seed of the board layout (defaults to the current time)")

	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Load the board from a snapshot file")
	rootCmd.Flags().BoolVar(&gameConfig.LoadSnapshotFresh, "fresh", gameConfig.LoadSnapshotFresh, "Cover every cell of the loaded snapshot")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "save-dir", "", "Directory where snapshots of finished games are saved")

	rootCmd.Flags().VarP(newDirectorValue(directorName, &directorName), "director", "d", `Make the computer play.
none: play manually
random: reveal random cells
constraint: deduce from hints, guess when stuck`)
	rootCmd.Flags().IntVar(&gameConfig.MaxDirectorMoves, "max-moves", 0, "Moves a director may make before giving up (defaults to 4 per cell)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log board events")
}
