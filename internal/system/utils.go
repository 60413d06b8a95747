// internal/system/utils.go
package system

import (
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
)

// ApplyDamage damages the health of entityID. It reports false when the entity
// has no health component. Non-positive damage is a no-op.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) bool {
	health, ok := ecs.Healths.Get(entityID)
	if !ok {
		return false
	}
	health.Damage(damage)
	return true
}

// despawn queues id for removal and tells the scene layer. It reports false if
// the entity was already on its way out.
func despawn(ecs *entity.ECS, d *event.Dispatcher, id types.EntityID) bool {
	if !ecs.MarkForRemoval(id) {
		return false
	}
	d.Dispatch(event.Event{Type: event.DespawnRequested, Data: id})
	return true
}
