package game

import (
	"fmt"

	"github.com/they4kman/cavesweep/util/grid"
)

type Cell struct {
	board *Board

	x, y int

	content      TileContent
	isDiscovered bool
	flag         FlagState
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) X() int {
	return cell.x
}

func (cell *Cell) Y() int {
	return cell.y
}

func (cell *Cell) Point() grid.Point {
	return grid.Point{X: cell.x, Y: cell.y}
}

func (cell *Cell) Content() TileContent {
	return cell.content
}

func (cell *Cell) IsDiscovered() bool {
	return cell.isDiscovered
}

func (cell *Cell) IsFlagged() bool {
	return cell.flag == Flagged
}

func (cell *Cell) Flag() FlagState {
	return cell.flag
}

func (cell *Cell) NumMines() int {
	return cell.board.mineHints[cell.x][cell.y]
}

// Neighbors returns the surrounding cells, diagonals included
func (cell *Cell) Neighbors() []*Cell {
	points := grid.NeighborsOf(cell.Point(), cell.board.height, cell.board.width)
	neighbors := make([]*Cell, len(points))
	for i, p := range points {
		neighbors[i] = cell.board.cellAt(p)
	}
	return neighbors
}

// discover marks the cell discovered, and reports whether it was hidden before
func (cell *Cell) discover() bool {
	if cell.isDiscovered {
		return false
	}
	cell.isDiscovered = true
	return true
}

// Snapshot encoding: one content character followed by one status character.
var contentChars = map[TileContent]byte{
	Empty:  '.',
	Mine:   '*',
	Radar:  'r',
	Rocket: 'k',
}

func (cell *Cell) serialize() string {
	var status byte
	switch {
	case cell.flag == Flagged:
		status = 'F'
	case cell.flag == Unknown:
		status = '?'
	case cell.isDiscovered:
		status = '_'
	default:
		status = '#'
	}
	return string([]byte{contentChars[cell.content], status})
}

func (cell *Cell) deserialize(s string, fresh bool) bool {
	if len(s) != 2 {
		return false
	}

	found := false
	for content, c := range contentChars {
		if s[0] == c {
			cell.content = content
			found = true
			break
		}
	}
	if !found {
		return false
	}

	cell.isDiscovered = false
	cell.flag = NoFlag
	switch s[1] {
	case '#':
	case '_':
		cell.isDiscovered = true
	case 'F':
		cell.flag = Flagged
	case '?':
		cell.flag = Unknown
	default:
		return false
	}

	if fresh {
		cell.isDiscovered = false
		cell.flag = NoFlag
	}

	return true
}
