package component

import "go-grid-defense/pkg/grid"

// Base is the defended structure at the end of the path.
type Base struct {
	Cell      grid.Coord
	Destroyed bool
}

// BuildSpot is a cell a tower may be placed on.
type BuildSpot struct {
	Cell grid.Coord
}
