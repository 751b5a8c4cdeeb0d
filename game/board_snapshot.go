package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type BoardSnapshot struct {
	Seed       int64  `yaml:"seed"`
	State      string `yaml:"state"`
	Generated  bool   `yaml:"generated"`
	Mines      int    `yaml:"mines"`
	Radars     int    `yaml:"radars"`
	Rockets    int    `yaml:"rockets"`
	Discovered int    `yaml:"discovered"`
	// Rows of cells, two characters each: the content (. * r k) and the
	// status (# covered, _ discovered, F flagged, ? unknown)
	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func (board *Board) Snapshot() *BoardSnapshot {
	rows := make([]string, board.height)
	for x := range board.cells {
		var row strings.Builder
		for y := range board.cells[x] {
			row.WriteString(board.cells[x][y].serialize())
		}
		rows[x] = row.String()
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		State:           board.State().String(),
		Generated:       board.hasClicked,
		Mines:           board.numMines,
		Radars:          board.numRadars,
		Rockets:         board.numRockets,
		Discovered:      board.numDiscovered,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

// CreateBoard rebuilds the board described by the snapshot. Dimensions, seed
// and tile counts come from the snapshot; the rest of config is kept. With
// fresh, every cell starts covered and unflagged, so the same layout can be
// played again.
func (snapshot *BoardSnapshot) CreateBoard(config BoardConfig, fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")

	config.Height = len(rows)
	config.Width = len(rows[0]) / 2
	if config.Width == 0 {
		return nil, errors.Wrap(ErrInvalidSnapshot, "empty board")
	}
	config.Seed = snapshot.Seed
	config.Rand = nil
	config.NumMines = snapshot.Mines
	config.NumRadars = snapshot.Radars
	config.NumRockets = snapshot.Rockets

	if !snapshot.Generated {
		return NewBoard(config)
	}

	board := createBoard(config)
	board.numMines = 0

	for x, row := range rows {
		if len(row) != 2*config.Width {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "row %d is %d characters long, expected %d",
				x, len(row), 2*config.Width)
		}

		for y := 0; y < config.Width; y++ {
			cell := &board.cells[x][y]
			if !cell.deserialize(row[2*y:2*y+2], fresh) {
				return nil, errors.Wrapf(ErrInvalidSnapshot, "unknown cell %q at (%d, %d)", row[2*y:2*y+2], x, y)
			}

			if cell.content == Mine {
				board.numMines++
			}
			if cell.flag == Flagged {
				board.numFlags++
				if cell.content == Mine {
					board.numFlaggedMines++
				}
			}
		}
	}

	board.fillHints()
	board.hasClicked = true

	if !fresh {
		board.numDiscovered = snapshot.Discovered
		switch snapshot.State {
		case Won.String():
			board.isGameOver, board.hasWon = true, true
		case Lost.String():
			board.isGameOver = true
		}
		// Flagged cells were uncovered at game over too
		if board.isGameOver {
			board.uncoverAll()
		}
	}

	return board, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
