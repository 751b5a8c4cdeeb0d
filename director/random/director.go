package random

import (
	"math/rand"

	"github.com/they4kman/cavesweep/game"
)

// Director reveals covered cells in a random order
type Director struct {
	rand  *rand.Rand
	board *game.Board
	order []*game.Cell
}

// New returns a Director drawing from its own seeded source. The zero value
// is usable too, and then follows the board's seed.
func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	if director.rand == nil {
		director.rand = rand.New(rand.NewSource(board.Seed()))
	}

	director.order = board.Cells()
	director.rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() (game.CellAction, bool) {
	if director.board == nil || director.board.IsGameOver() {
		return game.CellAction{}, false
	}

	for _, cell := range director.order {
		if !cell.IsDiscovered() && !cell.IsFlagged() {
			return game.CellAction{X: cell.X(), Y: cell.Y(), Action: game.RevealCell}, true
		}
	}
	return game.CellAction{}, false
}

func (director *Director) End() {
	director.board = nil
	director.order = nil
}
