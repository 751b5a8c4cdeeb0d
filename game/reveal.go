package game

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/cavesweep/util/grid"
)

// Reveal steps on the cell on row x, column y and reports what was
// triggered. Empty is returned when nothing special happened, including when
// the game is over or the cell is flagged.
func (board *Board) Reveal(x, y int) TileContent {
	cell := board.mustCellAt(x, y)

	if !board.canPlay() || cell.flag == Flagged {
		return Empty
	}

	if !board.hasClicked {
		// NewBoard refuses configurations which could fail here
		if err := board.generate(cell.Point()); err != nil {
			panic(errors.Wrap(err, "generate board"))
		}
		board.hasClicked = true
	}

	switch {
	case cell.content == Mine:
		board.lose()
		return Mine

	case cell.content == Radar && cell.isDiscovered:
		cell.content = Empty
		return Radar

	case cell.content == Rocket && cell.isDiscovered:
		cell.content = Empty
		board.launchRocket(cell)
		return Rocket

	case board.mineHints[cell.x][cell.y] == 0:
		board.revealCave(cell)

	default:
		board.discover(cell)
	}

	return Empty
}

func (board *Board) discover(cell *Cell) {
	if cell.flag == Flagged {
		return
	}
	if cell.discover() {
		board.numDiscovered++
	}
}

// revealCave uncovers the region of hint-less cells around cell, along with
// the numbered ring bordering it. Flagged cells stay covered.
func (board *Board) revealCave(cell *Cell) {
	cave := grid.ConnectedRegion(board.mineHints, cell.Point(), 0)
	for _, p := range cave {
		caveCell := board.cellAt(p)
		board.discover(caveCell)

		for _, neighbor := range caveCell.Neighbors() {
			board.discover(neighbor)
		}
	}
}

// launchRocket sweeps the column of cell, downwards then upwards. Each
// direction uncovers cells until it meets a mine, which gets flagged.
// Flagged cells are passed over, swept cells without hint open their cave.
// Only a rocket which flagged a mine can win the game.
func (board *Board) launchRocket(cell *Cell) {
	flagged := false
	for _, dx := range []int{1, -1} {
		for x := cell.x + dx; x >= 0 && x < board.height; x += dx {
			swept := &board.cells[x][cell.y]
			if swept.content == Mine {
				board.setFlag(swept, Flagged)
				flagged = true
				break
			}

			switch {
			case swept.flag == Flagged:
			case board.mineHints[x][cell.y] == 0:
				board.revealCave(swept)
			default:
				board.discover(swept)
			}
		}
	}

	if flagged {
		board.checkWin()
	}
}

// ToggleFlag flags or unflags a covered cell. Flagging the last mine wins the
// game.
func (board *Board) ToggleFlag(x, y int) {
	cell := board.mustCellAt(x, y)

	if !board.hasClicked || !board.canPlay() || cell.isDiscovered {
		return
	}

	if cell.flag == Flagged {
		board.setFlag(cell, NoFlag)
	} else {
		board.setFlag(cell, Flagged)
	}

	board.checkWin()
}

func (board *Board) setFlag(cell *Cell, flag FlagState) {
	if cell.flag == flag {
		return
	}

	if cell.flag == Flagged {
		board.numFlags--
		if cell.content == Mine {
			board.numFlaggedMines--
		}
	}

	cell.flag = flag

	if flag == Flagged {
		board.numFlags++
		if cell.content == Mine {
			board.numFlaggedMines++
		}
	}
}

func (board *Board) checkWin() {
	if board.canPlay() && board.numFlaggedMines == board.numMines {
		board.win()
	}
}

// Apply performs a player action
func (board *Board) Apply(action CellAction) TileContent {
	switch action.Action {
	case RevealCell:
		return board.Reveal(action.X, action.Y)
	case FlagCell:
		board.ToggleFlag(action.X, action.Y)
	}
	return Empty
}

func (board *Board) win() {
	board.hasWon = true
	board.gameOver()
}

func (board *Board) lose() {
	board.gameOver()
}

// gameOver uncovers the whole board. NumDiscovered is left as is.
func (board *Board) gameOver() {
	board.isGameOver = true
	board.uncoverAll()

	Log.WithFields(logrus.Fields{
		"state":      board.State().String(),
		"discovered": board.numDiscovered,
		"flags":      board.numFlags,
		"seed":       board.seed,
	}).Debug("game over")

	if board.onGameEnd != nil {
		board.onGameEnd(board)
	}
}

// uncoverAll marks every cell discovered, flagged ones included, without
// touching the counters.
func (board *Board) uncoverAll() {
	for x := range board.cells {
		for y := range board.cells[x] {
			board.cells[x][y].isDiscovered = true
		}
	}
}
