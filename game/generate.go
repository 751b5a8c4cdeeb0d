package game

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/cavesweep/util/grid"
)

// generate lays out mines, radars and rockets around the first click, then
// computes the hint grids.
//
// Tiles are drawn without replacement from explicit candidate lists, so the
// number of draws is bounded by the number of tiles.
func (board *Board) generate(first grid.Point) error {
	candidates := make([]grid.Point, 0, board.NumCells())
	for _, cell := range board.Cells() {
		if cell.Point().DistanceSquared(first) >= safeRadiusSquared {
			candidates = append(candidates, cell.Point())
		}
	}

	candidates, err := board.place(candidates, Mine, board.numMines)
	if err != nil {
		return err
	}

	// Power-ups may land anywhere a mine did not, first click included
	candidates = candidates[:0]
	for _, cell := range board.Cells() {
		if cell.content == Empty {
			candidates = append(candidates, cell.Point())
		}
	}

	if candidates, err = board.place(candidates, Radar, board.numRadars); err != nil {
		return err
	}
	if _, err = board.place(candidates, Rocket, board.numRockets); err != nil {
		return err
	}

	board.fillHints()

	Log.WithFields(logrus.Fields{
		"width":   board.width,
		"height":  board.height,
		"mines":   board.numMines,
		"radars":  board.numRadars,
		"rockets": board.numRockets,
		"first":   first.String(),
		"seed":    board.seed,
	}).Debug("generated board")

	return nil
}

// place puts count tiles of the given content on cells picked at random from
// candidates, and returns the candidates left over.
func (board *Board) place(candidates []grid.Point, content TileContent, count int) ([]grid.Point, error) {
	if count > len(candidates) {
		return nil, errors.Wrapf(ErrBoardTooSmall, "cannot place %d %s tiles on %d free cells",
			count, content, len(candidates))
	}

	k := len(candidates)
	for i := 0; i < count; i++ {
		j := board.rand.Intn(k)
		board.cellAt(candidates[j]).content = content
		k--
		candidates[j] = candidates[k]
	}
	return candidates[:k], nil
}

// fillHints counts mines and radars around every cell, mine cells included.
func (board *Board) fillHints() {
	for _, cell := range board.Cells() {
		mines, radars := 0, 0
		for _, neighbor := range cell.Neighbors() {
			switch neighbor.content {
			case Mine:
				mines++
			case Radar:
				radars++
			}
		}
		board.mineHints[cell.x][cell.y] = mines
		board.radarHints[cell.x][cell.y] = radars
	}
}
