package game

import "fmt"

type TileDescription struct {
	Content   string
	Adjacency string
	Status    string
}

func (d TileDescription) Lines() []string {
	return []string{d.Content, d.Adjacency, d.Status}
}

// DescribeTile summarises what the player may know about a cell. Covered
// cells never give their content away.
func (board *Board) DescribeTile(x, y int) TileDescription {
	cell := board.mustCellAt(x, y)

	var status string
	switch {
	case cell.flag == Flagged:
		status = "flagged"
	case cell.isDiscovered:
		status = "discovered"
	case cell.flag == Unknown:
		status = "marked unknown"
	default:
		status = "covered"
	}

	if !cell.isDiscovered {
		return TileDescription{Content: "unknown tile", Adjacency: "? mines nearby", Status: status}
	}

	var adjacency string
	switch n := board.mineHints[x][y]; n {
	case 0:
		adjacency = "no mines nearby"
	case 1:
		adjacency = "1 mine nearby"
	default:
		adjacency = fmt.Sprintf("%d mines nearby", n)
	}

	return TileDescription{
		Content:   fmt.Sprintf("%s tile", cell.content),
		Adjacency: adjacency,
		Status:    status,
	}
}
