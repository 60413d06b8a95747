package interfaces

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

// Game is what the viewer states need from a running level.
type Game interface {
	Update(deltaTime float64)
	PlaceTower(cell grid.Coord) (types.EntityID, error)
	Phase() component.Phase
}
