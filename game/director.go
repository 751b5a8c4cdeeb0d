package game

import "fmt"

type CellAction struct {
	X, Y   int
	Action Action
}

func (action CellAction) String() string {
	return fmt.Sprintf("%s (%d, %d)", action.Action, action.X, action.Y)
}

type Director interface {
	/**
	 * Initialize the director for a fresh board
	 */
	Init(*Board)

	/**
	 * Pick the next action, or report false if there is nothing left to do
	 */
	Act() (CellAction, bool)

	/**
	 * Stop acting
	 */
	End()
}
