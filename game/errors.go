package game

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is returned for boards that cannot be built at all
	ErrInvalidConfig = errors.New("invalid board configuration")
	// ErrBoardTooSmall is returned when the requested tiles do not fit
	ErrBoardTooSmall = errors.New("too many special tiles for the board")
	// ErrInvalidSnapshot is returned for snapshots that do not describe a board
	ErrInvalidSnapshot = errors.New("invalid board snapshot")
)

// InvalidArgumentError is panicked when the host breaks the board's contract,
// e.g. by passing coordinates outside the board.
type InvalidArgumentError struct {
	message string
}

// [InvalidArgumentError] implements [error]
func (e InvalidArgumentError) Error() string {
	return e.message
}
