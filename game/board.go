package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
	"github.com/they4kman/cavesweep/util/grid"
)

type BoardConfig struct {
	Width, Height int
	NumMines      int
	NumRadars     int
	NumRockets    int

	Seed int64
	// Rand overrides the source seeded from Seed
	Rand *rand.Rand

	OnGameEnd func(*Board)
}

// Board is the game state. It is not safe for concurrent use; hosts driving
// it from several goroutines must serialize every call.
type Board struct {
	width, height int // in number of cells
	numMines      int
	numRadars     int
	numRockets    int
	cells         [][]Cell

	// filled on generation, immutable afterwards
	mineHints  [][]int
	radarHints [][]int

	hasClicked bool
	isGameOver bool
	hasWon     bool

	numFlags        int
	numFlaggedMines int
	numDiscovered   int

	seed      int64
	rand      *rand.Rand
	onGameEnd func(*Board)
}

// NewBoard returns an empty board. Tiles are placed on the first Reveal, so
// the first revealed cell and its surroundings never hold a mine.
func NewBoard(config BoardConfig) (*Board, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return createBoard(config), nil
}

func (config BoardConfig) validate() error {
	if config.Width < 1 || config.Height < 1 {
		return errors.Wrapf(ErrInvalidConfig, "board must be at least 1x1, got %dx%d", config.Width, config.Height)
	}
	if config.NumMines < 0 || config.NumRadars < 0 || config.NumRockets < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative tile count (mines=%d, radars=%d, rockets=%d)",
			config.NumMines, config.NumRadars, config.NumRockets)
	}

	numCells := config.Width * config.Height
	maxSafeZone := minInt(3, config.Width) * minInt(3, config.Height)
	if config.NumMines > numCells-maxSafeZone {
		return errors.Wrapf(ErrBoardTooSmall, "%d mines do not fit a %dx%d board with a %d cell safe zone",
			config.NumMines, config.Width, config.Height, maxSafeZone)
	}
	if total := config.NumMines + config.NumRadars + config.NumRockets; total > numCells {
		return errors.Wrapf(ErrBoardTooSmall, "%d special tiles do not fit %d cells", total, numCells)
	}
	return nil
}

func createBoard(config BoardConfig) *Board {
	r := config.Rand
	if r == nil {
		r = rand.New(rand.NewSource(config.Seed))
	}

	board := &Board{
		width:      config.Width,
		height:     config.Height,
		numMines:   config.NumMines,
		numRadars:  config.NumRadars,
		numRockets: config.NumRockets,
		cells:      make([][]Cell, config.Height),
		mineHints:  newIntGrid(config.Height, config.Width),
		radarHints: newIntGrid(config.Height, config.Width),
		seed:       config.Seed,
		rand:       r,
		onGameEnd:  config.OnGameEnd,
	}

	for x := range board.cells {
		row := make([]Cell, config.Width)
		board.cells[x] = row

		for y := range row {
			cell := &row[y]
			cell.board = board
			cell.x, cell.y = x, y
		}
	}

	return board
}

func newIntGrid(rows, cols int) [][]int {
	g := make([][]int, rows)
	for i := range g {
		g[i] = make([]int, cols)
	}
	return g
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumRadars() int {
	return board.numRadars
}

func (board *Board) NumRockets() int {
	return board.numRockets
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

// NumDiscovered counts the cells the player uncovered. It stops moving once
// the game is over, so the final reveal does not count as progress.
func (board *Board) NumDiscovered() int {
	return board.numDiscovered
}

func (board *Board) Seed() int64 {
	return board.seed
}

// Rand is the board's random source, handy to seed the next game
func (board *Board) Rand() *rand.Rand {
	return board.rand
}

func (board *Board) HasClicked() bool {
	return board.hasClicked
}

func (board *Board) IsGameOver() bool {
	return board.isGameOver
}

func (board *Board) HasWon() bool {
	return board.hasWon
}

func (board *Board) State() BoardState {
	switch {
	case !board.isGameOver:
		return Ongoing
	case board.hasWon:
		return Won
	default:
		return Lost
	}
}

func (board *Board) canPlay() bool {
	return !board.isGameOver
}

func (board *Board) inBounds(x, y int) bool {
	return grid.InBounds(grid.Point{X: x, Y: y}, board.height, board.width)
}

func (board *Board) cellAt(p grid.Point) *Cell {
	return &board.cells[p.X][p.Y]
}

// CellAt returns the cell on row x, column y, or nil outside the board
func (board *Board) CellAt(x, y int) *Cell {
	if board.inBounds(x, y) {
		return &board.cells[x][y]
	}
	return nil
}

func (board *Board) mustCellAt(x, y int) *Cell {
	cell := board.CellAt(x, y)
	if cell == nil {
		panic(InvalidArgumentError{
			fmt.Sprintf("cell (%d, %d) outside of %dx%d board", x, y, board.width, board.height),
		})
	}
	return cell
}

// Cells returns every cell in row-major order
func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, 0, board.NumCells())
	for x := range board.cells {
		for y := range board.cells[x] {
			cells = append(cells, &board.cells[x][y])
		}
	}
	return cells
}

func (board *Board) IsDiscovered(x, y int) bool {
	return board.mustCellAt(x, y).isDiscovered
}

func (board *Board) ContentOf(x, y int) TileContent {
	return board.mustCellAt(x, y).content
}

func (board *Board) FlagOf(x, y int) FlagState {
	return board.mustCellAt(x, y).flag
}

func (board *Board) MineAdjacency(x, y int) int {
	board.mustCellAt(x, y)
	return board.mineHints[x][y]
}

// Hint returns the number of neighbors holding kind. Only mines and radars
// are counted; any other kind panics.
func (board *Board) Hint(x, y int, kind TileContent) int {
	board.mustCellAt(x, y)
	switch kind {
	case Mine:
		return board.mineHints[x][y]
	case Radar:
		return board.radarHints[x][y]
	default:
		panic(InvalidArgumentError{fmt.Sprintf("no hints are kept for %s tiles", kind)})
	}
}

// String draws the board as the player sees it, one row per line
func (board *Board) String() string {
	var b strings.Builder
	for x := range board.cells {
		for y := range board.cells[x] {
			if y > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(board.cells[x][y].glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (cell *Cell) glyph() byte {
	switch {
	case cell.flag == Flagged:
		return 'F'
	case !cell.isDiscovered && cell.flag == Unknown:
		return '?'
	case !cell.isDiscovered:
		return '#'
	}

	switch cell.content {
	case Mine:
		return '*'
	case Radar:
		return 'R'
	case Rocket:
		return 'K'
	}
	if n := cell.NumMines(); n > 0 {
		return byte('0' + n)
	}
	return '.'
}
