// internal/event/types.go
package event

import (
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

const (
	SpawnRequested   EventType = "SpawnRequested"   // SpawnRequest
	DespawnRequested EventType = "DespawnRequested" // types.EntityID
	EnemySpawned     EventType = "EnemySpawned"     // types.EntityID
	EnemyDestroyed   EventType = "EnemyDestroyed"   // EnemyDestroyedData
	BaseDamaged      EventType = "BaseDamaged"      // BaseDamagedData
	BaseDestroyed    EventType = "BaseDestroyed"    // types.EntityID
	CurrencyChanged  EventType = "CurrencyChanged"  // CurrencyChangedData
	TowerPlaced      EventType = "TowerPlaced"      // types.EntityID
	TowerFired       EventType = "TowerFired"       // TowerFiredData
)

// Kind is the type of entity a collaborator should materialize.
type Kind int

const (
	KindEnemy Kind = iota
	KindTower
	KindProjectile
	KindBuildSpot
	KindBase
	KindSpawner
)

func (k Kind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindTower:
		return "tower"
	case KindProjectile:
		return "projectile"
	case KindBuildSpot:
		return "build_spot"
	case KindBase:
		return "base"
	case KindSpawner:
		return "spawner"
	default:
		return "unknown"
	}
}

// SpawnRequest tells the scene layer that an entity now exists.
// Cell is set for grid-anchored kinds; Position is always set.
type SpawnRequest struct {
	Kind     Kind
	ID       types.EntityID
	Cell     grid.Coord
	Position grid.Vec2
}

// Cause says why an enemy left the game.
type Cause int

const (
	Killed Cause = iota
	ReachedBase
)

func (c Cause) String() string {
	if c == ReachedBase {
		return "reached_base"
	}
	return "killed"
}

type EnemyDestroyedData struct {
	ID    types.EntityID
	Cause Cause
}

type BaseDamagedData struct {
	Base    types.EntityID
	Current int
	Max     int
}

type CurrencyChangedData struct {
	Old, New int
}

type TowerFiredData struct {
	Tower     types.EntityID
	Position  grid.Vec2
	Direction grid.Vec2 // unit vector
}
