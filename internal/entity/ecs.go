// internal/entity/ecs.go
package entity

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/types"
)

type ECS struct {
	NextID      types.EntityID
	Positions   *Store[component.Position]
	Velocities  *Store[component.Velocity]
	PathFollows *Store[component.PathFollow]
	Healths     *Store[component.Health]
	Enemies     *Store[component.Enemy]
	Towers      *Store[component.Tower]
	Projectiles *Store[component.Projectile]
	Spawners    *Store[component.Spawner]
	Bases       *Store[component.Base]
	BuildSpots  *Store[component.BuildSpot]

	pending      map[types.EntityID]struct{}
	pendingOrder []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   NewStore[component.Position](),
		Velocities:  NewStore[component.Velocity](),
		PathFollows: NewStore[component.PathFollow](),
		Healths:     NewStore[component.Health](),
		Enemies:     NewStore[component.Enemy](),
		Towers:      NewStore[component.Tower](),
		Projectiles: NewStore[component.Projectile](),
		Spawners:    NewStore[component.Spawner](),
		Bases:       NewStore[component.Base](),
		BuildSpots:  NewStore[component.BuildSpot](),
		pending:     make(map[types.EntityID]struct{}),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// MarkForRemoval queues id for the next Flush. It returns false if id was
// already queued, which lets callers fire removal side effects exactly once.
func (ecs *ECS) MarkForRemoval(id types.EntityID) bool {
	if _, ok := ecs.pending[id]; ok {
		return false
	}
	ecs.pending[id] = struct{}{}
	ecs.pendingOrder = append(ecs.pendingOrder, id)
	return true
}

func (ecs *ECS) PendingRemoval(id types.EntityID) bool {
	_, ok := ecs.pending[id]
	return ok
}

// Flush removes every queued entity from all stores and returns them in the
// order they were marked.
func (ecs *ECS) Flush() []types.EntityID {
	if len(ecs.pendingOrder) == 0 {
		return nil
	}
	removed := ecs.pendingOrder
	for _, id := range removed {
		ecs.removeNow(id)
	}
	ecs.pending = make(map[types.EntityID]struct{})
	ecs.pendingOrder = nil
	return removed
}

func (ecs *ECS) removeNow(id types.EntityID) {
	ecs.Positions.Remove(id)
	ecs.Velocities.Remove(id)
	ecs.PathFollows.Remove(id)
	ecs.Healths.Remove(id)
	ecs.Enemies.Remove(id)
	ecs.Towers.Remove(id)
	ecs.Projectiles.Remove(id)
	ecs.Spawners.Remove(id)
	ecs.Bases.Remove(id)
	ecs.BuildSpots.Remove(id)
}

// LiveEnemy returns the position of id if it is an enemy that exists, still has
// health and is not queued for removal.
func (ecs *ECS) LiveEnemy(id types.EntityID) (*component.Position, bool) {
	if id == 0 || !ecs.Enemies.Has(id) || ecs.PendingRemoval(id) {
		return nil, false
	}
	if h, ok := ecs.Healths.Get(id); ok && !h.Alive() {
		return nil, false
	}
	return ecs.Positions.Get(id)
}
