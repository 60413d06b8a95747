// component/movement.go
package component

import "go-grid-defense/pkg/grid"

// Position is a world position.
type Position = grid.Vec2

// Velocity is a world-space velocity in units per second.
type Velocity = grid.Vec2

// PathFollow is the fraction of the level path already traversed.
type PathFollow struct {
	Progress float64
	Rate     float64 // fraction per second
}
