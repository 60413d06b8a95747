// pkg/grid/coord.go
package grid

import "fmt"

// CellSize is the side of one grid cell in world units.
const CellSize = 32.0

// HalfCellSize is used when mapping screen pixels back to cells.
const HalfCellSize = CellSize / 2

// Coord is an integer grid cell.
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// C is shorthand for Coord{X: x, Y: y}; handy in static level tables.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// World returns the world position of the cell center.
func (c Coord) World() Vec2 {
	return Vec2{X: float64(c.X) * CellSize, Y: float64(c.Y) * CellSize}
}

// Sub returns c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Manhattan returns |dx| + |dy| between two cells.
func (c Coord) Manhattan(o Coord) int {
	d := c.Sub(o)
	return abs(d.X) + abs(d.Y)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
