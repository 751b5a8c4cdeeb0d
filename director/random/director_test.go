package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/cavesweep/game"
)

func newBoard(t *testing.T, seed int64) *game.Board {
	t.Helper()
	board, err := game.NewBoard(game.BoardConfig{Width: 10, Height: 8, NumMines: 12, NumRadars: 2, NumRockets: 2, Seed: seed})
	require.NoError(t, err)
	return board
}

func play(t *testing.T, director *Director, board *game.Board) []game.CellAction {
	t.Helper()
	director.Init(board)
	defer director.End()

	var actions []game.CellAction
	for len(actions) <= board.NumCells() {
		action, ok := director.Act()
		if !ok {
			break
		}

		require.Equal(t, game.RevealCell, action.Action)
		require.False(t, board.IsDiscovered(action.X, action.Y), "%v targets a discovered cell", action)
		require.NotEqual(t, game.Flagged, board.FlagOf(action.X, action.Y), "%v targets a flagged cell", action)

		board.Apply(action)
		actions = append(actions, action)
	}
	return actions
}

func TestDirectorPlaysUntilGameOver(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		board := newBoard(t, seed)
		actions := play(t, New(seed), board)

		assert.NotEmpty(t, actions)
		assert.LessOrEqual(t, len(actions), board.NumCells())
		// Nothing but flags wins, so the walk always ends on a mine
		assert.True(t, board.IsGameOver())
		assert.Equal(t, game.Lost, board.State())
	}
}

func TestDirectorIsSeeded(t *testing.T) {
	first := play(t, New(5), newBoard(t, 1))
	second := play(t, New(5), newBoard(t, 1))
	assert.Equal(t, first, second)

	zeroFirst := play(t, &Director{}, newBoard(t, 3))
	zeroSecond := play(t, &Director{}, newBoard(t, 3))
	assert.Equal(t, zeroFirst, zeroSecond)
}

func TestDirectorSkipsFlaggedCells(t *testing.T) {
	board := newBoard(t, 2)
	board.Reveal(4, 4)

	covered := 0
	for _, cell := range board.Cells() {
		if !cell.IsDiscovered() {
			covered++
			if covered <= 6 && covered%2 == 0 {
				board.ToggleFlag(cell.X(), cell.Y())
			}
		}
	}
	require.False(t, board.IsGameOver())

	actions := play(t, New(9), board)
	require.NotEmpty(t, actions)
	for _, action := range actions {
		assert.False(t, board.CellAt(action.X, action.Y).IsFlagged(), "%v", action)
	}
}

func TestDirectorIdle(t *testing.T) {
	director := New(1)

	_, ok := director.Act()
	assert.False(t, ok, "acted before Init")

	board := newBoard(t, 1)
	director.Init(board)
	_, ok = director.Act()
	assert.True(t, ok)

	director.End()
	_, ok = director.Act()
	assert.False(t, ok, "acted after End")
}
