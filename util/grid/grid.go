// Package grid holds the traversal helpers shared by the board and the
// directors. Grids are indexed grid[x][y], x being the row.
package grid

import (
	"fmt"

	"github.com/gammazero/deque"
	"github.com/they4kman/cavesweep/util/collections"
)

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// DistanceSquared returns the squared euclidean distance between two points
func (p Point) DistanceSquared(other Point) int {
	dx, dy := p.X-other.X, p.Y-other.Y
	return dx*dx + dy*dy
}

func InBounds(p Point, rows, cols int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < rows && p.Y < cols
}

// NeighborsOf returns the in-bounds cells surrounding p, diagonals included,
// in row-major order. p itself is never part of the result.
func NeighborsOf(p Point, rows, cols int) []Point {
	neighbors := make([]Point, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			neighbor := Point{p.X + dx, p.Y + dy}
			if InBounds(neighbor, rows, cols) {
				neighbors = append(neighbors, neighbor)
			}
		}
	}
	return neighbors
}

// ConnectedRegion returns every cell holding target that can be reached from
// start through 8-connected steps over cells holding target. The grid is only
// read. A start outside the grid, or not holding target, yields nil.
func ConnectedRegion[V comparable](grid [][]V, start Point, target V) []Point {
	rows := len(grid)
	if rows == 0 {
		return nil
	}
	cols := len(grid[0])

	if !InBounds(start, rows, cols) || grid[start.X][start.Y] != target {
		return nil
	}

	visited := collections.NewSet(start)
	var stack deque.Deque
	stack.PushBack(start)

	var region []Point
	for stack.Len() > 0 {
		p := stack.PopBack().(Point)
		region = append(region, p)

		for _, neighbor := range NeighborsOf(p, rows, cols) {
			if grid[neighbor.X][neighbor.Y] != target {
				continue
			}
			if visited.AddNew(neighbor) {
				stack.PushBack(neighbor)
			}
		}
	}

	return region
}
