// component/tower.go
package component

import (
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

// TargetState is the aiming state of a tower.
type TargetState int

const (
	Idle     TargetState = iota // no target
	Tracking                    // target held, turret still slewing
	Locked                      // aim within tolerance, may fire
)

func (s TargetState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Tracking:
		return "tracking"
	case Locked:
		return "locked"
	default:
		return "unknown"
	}
}

type Tower struct {
	Cell grid.Coord
	// Target is a lookup key into the enemy store. It is re-validated every
	// tick and may point at an enemy that no longer exists.
	Target    types.EntityID
	Facing    float64 // radians, [0, 2π)
	LastFired float64 // simulation seconds
	State     TargetState
	Shots     int
}
