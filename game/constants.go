package game

type TileContent int
type FlagState int
type BoardState int
type Action int

const (
	Empty TileContent = iota
	Mine
	Radar
	Rocket
)

func (content TileContent) String() string {
	switch content {
	case Empty:
		return "empty"
	case Mine:
		return "mine"
	case Radar:
		return "radar"
	case Rocket:
		return "rocket"
	default:
		return "invalid"
	}
}

const (
	NoFlag FlagState = iota
	Flagged
	// Unknown is the question mark. ToggleFlag never produces it, but
	// snapshots may carry it.
	Unknown
)

func (flag FlagState) String() string {
	switch flag {
	case NoFlag:
		return "none"
	case Flagged:
		return "flagged"
	case Unknown:
		return "unknown"
	default:
		return "invalid"
	}
}

const (
	Lost BoardState = iota
	Won
	Ongoing
)

func (state BoardState) String() string {
	switch state {
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "ongoing"
	}
}

const (
	RevealCell Action = iota
	FlagCell
)

func (action Action) String() string {
	if action == FlagCell {
		return "flag"
	}
	return "reveal"
}

const (
	// squared radius of the mine-free zone around the first click
	safeRadiusSquared = 4
)
