package constraint

import (
	"fmt"
	"math"

	"github.com/they4kman/cavesweep/director/random"
	"github.com/they4kman/cavesweep/game"
	"github.com/they4kman/cavesweep/util/collections"
)

// Director plays from what the discovered hints tell about their covered
// neighbors, and guesses only when no hint settles a cell.
type Director struct {
	board    *game.Board
	fallback random.Director
}

type Observation struct {
	origin   *game.Cell
	numMines int
	cells    collections.Set[*game.Cell]
}

func (observation Observation) String() string {
	return fmt.Sprintf("Obs[%v, %d ε %d cells]", observation.origin, observation.numMines, len(observation.cells))
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.fallback.Init(board)
}

func (director *Director) Act() (game.CellAction, bool) {
	if director.board == nil || director.board.IsGameOver() {
		return game.CellAction{}, false
	}

	actors := []func() (game.CellAction, bool){
		director.actRocket,
		director.actDeliberate,
		director.actLowestProbability,
		director.fallback.Act,
	}

	for _, actor := range actors {
		if action, ok := actor(); ok {
			return action, true
		}
	}
	return game.CellAction{}, false
}

func (director *Director) End() {
	director.fallback.End()
	director.board = nil
}

// observations lists, for every discovered hint touching covered cells, how
// many mines remain among them
func (director *Director) observations() []Observation {
	var observations []Observation
	for _, cell := range director.board.Cells() {
		if !cell.IsDiscovered() || cell.Content() == game.Mine {
			continue
		}

		observation := Observation{
			origin:   cell,
			numMines: cell.NumMines(),
			cells:    make(collections.Set[*game.Cell]),
		}
		for _, neighbor := range cell.Neighbors() {
			switch {
			case neighbor.IsFlagged():
				observation.numMines--
			case !neighbor.IsDiscovered():
				observation.cells.Add(neighbor)
			}
		}

		if len(observation.cells) > 0 {
			observations = append(observations, observation)
		}
	}
	return observations
}

func (director *Director) actRocket() (game.CellAction, bool) {
	for _, cell := range director.board.Cells() {
		if cell.IsDiscovered() && cell.Content() == game.Rocket {
			return game.CellAction{X: cell.X(), Y: cell.Y(), Action: game.RevealCell}, true
		}
	}
	return game.CellAction{}, false
}

func (director *Director) actDeliberate() (game.CellAction, bool) {
	safe := make(collections.Set[*game.Cell])
	mines := make(collections.Set[*game.Cell])

	for _, observation := range director.observations() {
		switch observation.numMines {
		case 0:
			for cell := range observation.cells {
				safe.Add(cell)
			}
		case len(observation.cells):
			for cell := range observation.cells {
				mines.Add(cell)
			}
		}
	}

	// A cell proven both ways means a flag is wrong; trust neither
	contradictions := safe.Intersection(mines)
	safe = safe.Difference(contradictions)
	mines = mines.Difference(contradictions)

	// Walk the board to keep the choice independent of map ordering
	for _, cell := range director.board.Cells() {
		if safe.Contains(cell) {
			return game.CellAction{X: cell.X(), Y: cell.Y(), Action: game.RevealCell}, true
		}
	}
	for _, cell := range director.board.Cells() {
		if mines.Contains(cell) {
			return game.CellAction{X: cell.X(), Y: cell.Y(), Action: game.FlagCell}, true
		}
	}
	return game.CellAction{}, false
}

func (director *Director) actLowestProbability() (game.CellAction, bool) {
	cellProbabilities := make(map[*game.Cell]float64)
	for _, observation := range director.observations() {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			if current, ok := cellProbabilities[cell]; !ok || probability > current {
				cellProbabilities[cell] = probability
			}
		}
	}

	var best *game.Cell
	lowestProbability := math.Inf(1)
	for _, cell := range director.board.Cells() {
		probability, ok := cellProbabilities[cell]
		if ok && probability < lowestProbability {
			best, lowestProbability = cell, probability
		}
	}

	if best == nil {
		return game.CellAction{}, false
	}
	return game.CellAction{X: best.X(), Y: best.Y(), Action: game.RevealCell}, true
}
