// internal/system/movement.go
package system

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

// MovementSystem advances enemies along the level path and turns path
// completion into base damage.
type MovementSystem struct {
	ecs             *entity.ECS
	path            *grid.Path
	baseDamage      int
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, path *grid.Path, baseDamage int, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{
		ecs:             ecs,
		path:            path,
		baseDamage:      baseDamage,
		eventDispatcher: eventDispatcher,
	}
}

func (s *MovementSystem) Update(ctx *Context, deltaTime float64) {
	s.ecs.PathFollows.Each(func(id types.EntityID, pf *component.PathFollow) bool {
		if s.ecs.PendingRemoval(id) {
			return true
		}
		pf.Progress += pf.Rate * deltaTime
		if pf.Progress >= 1.0 {
			s.reachBase(id)
			return true
		}
		if pos, ok := s.ecs.Positions.Get(id); ok {
			*pos = s.path.Lerp(pf.Progress)
		}
		return true
	})
}

func (s *MovementSystem) reachBase(id types.EntityID) {
	if !despawn(s.ecs, s.eventDispatcher, id) {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyDestroyed,
		Data: event.EnemyDestroyedData{ID: id, Cause: event.ReachedBase},
	})

	s.ecs.Bases.Each(func(baseID types.EntityID, base *component.Base) bool {
		health, ok := s.ecs.Healths.Get(baseID)
		if !ok || base.Destroyed {
			return true
		}
		health.Damage(s.baseDamage)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.BaseDamaged,
			Data: event.BaseDamagedData{Base: baseID, Current: health.Current, Max: health.Max},
		})
		return false
	})
}
