package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type GameConfig struct {
	Width, Height int
	NumMines      int
	NumRadars     int
	NumRockets    int

	Seed int64

	// Snapshot to load board configuration from
	Snapshot *BoardSnapshot
	// Whether to set all cells as unrevealed when loading the Snapshot
	LoadSnapshotFresh bool

	Director Director
	// Upper bound on the moves a director may make in a single game
	MaxDirectorMoves int

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:             16,
		Height:            16,
		NumMines:          40,
		NumRadars:         5,
		NumRockets:        3,
		Director:          nil,
		Snapshot:          nil,
		LoadSnapshotFresh: true,
	}
}

func (config GameConfig) boardConfig() BoardConfig {
	return BoardConfig{
		Width:      config.Width,
		Height:     config.Height,
		NumMines:   config.NumMines,
		NumRadars:  config.NumRadars,
		NumRockets: config.NumRockets,
		Seed:       config.Seed,
		OnGameEnd:  config.onGameEnd,
	}
}

func (config GameConfig) createBoard() (*Board, error) {
	if config.Snapshot == nil {
		return NewBoard(config.boardConfig())
	}
	return config.Snapshot.CreateBoard(config.boardConfig(), config.LoadSnapshotFresh)
}

func (config GameConfig) onGameEnd(board *Board) {
	config.saveSnapshot(board)
}

func (config GameConfig) saveSnapshot(board *Board) {
	if config.SavedSnapshotsDir == "" {
		return
	}

	log := Log.WithField("dir", config.SavedSnapshotsDir)

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Error("cannot save snapshot")
			return
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			log.WithError(err).Error("cannot create snapshot directory")
			return
		}
	} else if !stat.Mode().IsDir() {
		log.Error("snapshot path is not a directory")
		return
	}

	filename := config.generateReplayFilename(board, time.Now())
	path := filepath.Join(config.SavedSnapshotsDir, filename)

	// TODO: prevent duplicate filenames when two games end within a second
	if err := os.WriteFile(path, []byte(board.Snapshot().Serialize()), 0666); err != nil {
		log.WithError(err).Error("cannot write snapshot")
		return
	}

	log.WithField("path", path).Info("saved snapshot")
}

func (config GameConfig) generateReplayFilename(board *Board, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch board.State() {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}

const helpText = `commands:
  r X Y    reveal the cell on row X, column Y
  f X Y    toggle the flag on row X, column Y
  d X Y    describe the cell on row X, column Y
  s        print a snapshot of the board
  n        start a new game on a fresh layout
  q        quit
`

// Run plays games on a text terminal: with a director the computer plays a
// single game, otherwise commands are read from in until it is exhausted or
// the player quits.
func Run(config GameConfig, in io.Reader, out io.Writer) error {
	board, err := config.createBoard()
	if err != nil {
		return err
	}

	if config.Director != nil {
		return runDirector(config, board, out)
	}

	printBoard(out, board)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit":
			return nil

		case "n", "new":
			if config.Snapshot != nil {
				// Same dimensions and tiles as the loaded layout, new placement
				config.Width, config.Height = board.Width(), board.Height()
				config.NumMines, config.NumRadars, config.NumRockets = board.NumMines(), board.NumRadars(), board.NumRockets()
				config.Snapshot = nil
			}
			config.Seed = board.Rand().Int63()
			if board, err = config.createBoard(); err != nil {
				return err
			}
			printBoard(out, board)

		case "s", "snapshot":
			fmt.Fprintln(out, board.Snapshot().Serialize())

		case "r", "reveal", "f", "flag", "d", "describe":
			x, y, err := parseCoords(board, fields[1:])
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}

			switch fields[0][0] {
			case 'd':
				for _, line := range board.DescribeTile(x, y).Lines() {
					fmt.Fprintln(out, line)
				}
				continue
			case 'f':
				board.Apply(CellAction{X: x, Y: y, Action: FlagCell})
			default:
				if outcome := board.Apply(CellAction{X: x, Y: y, Action: RevealCell}); outcome != Empty {
					fmt.Fprintf(out, "%s!\n", outcome)
				}
			}
			printBoard(out, board)

		default:
			fmt.Fprint(out, helpText)
		}
	}

	return scanner.Err()
}

func runDirector(config GameConfig, board *Board, out io.Writer) error {
	director := config.Director
	director.Init(board)
	defer director.End()

	maxMoves := config.MaxDirectorMoves
	if maxMoves <= 0 {
		maxMoves = 4 * board.NumCells()
	}

	for moves := 0; board.canPlay() && moves < maxMoves; moves++ {
		action, ok := director.Act()
		if !ok {
			break
		}

		outcome := board.Apply(action)
		Log.WithFields(logrus.Fields{
			"move":    moves,
			"action":  action.String(),
			"outcome": outcome.String(),
		}).Debug("director acted")
	}

	printBoard(out, board)
	return nil
}

func parseCoords(board *Board, args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, errors.New("expected a row and a column")
	}

	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, errors.Errorf("invalid row %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, errors.Errorf("invalid column %q", args[1])
	}

	if !board.inBounds(x, y) {
		return 0, 0, errors.Errorf("(%d, %d) is outside of the %dx%d board", x, y, board.Width(), board.Height())
	}
	return x, y, nil
}

func printBoard(out io.Writer, board *Board) {
	fmt.Fprint(out, board)

	fmt.Fprintf(out, "flags %d/%d", board.NumFlags(), board.NumMines())
	if safe := board.NumCells() - board.NumMines(); safe > 0 {
		fmt.Fprintf(out, "  cleared %d%%", 100*board.NumDiscovered()/safe)
	}

	switch board.State() {
	case Won:
		fmt.Fprint(out, "  you won!")
	case Lost:
		fmt.Fprint(out, "  game over")
	}
	fmt.Fprintln(out)
}
