// internal/system/projectile.go
package system

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

// ProjectileSystem moves shots, resolves hits and expires old shots.
type ProjectileSystem struct {
	ecs             *entity.ECS
	speed           float64
	hitRadius       float64
	lifetime        float64
	damage          int
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, tuning config.Tuning, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		speed:           tuning.ProjectileSpeed,
		hitRadius:       tuning.HitRadius,
		lifetime:        tuning.ProjectileLife,
		damage:          tuning.ProjectileDamage,
		eventDispatcher: eventDispatcher,
	}
}

// Spawn creates a projectile at position flying along direction.
func (s *ProjectileSystem) Spawn(ctx *Context, position, direction grid.Vec2, owner types.EntityID) types.EntityID {
	id := s.ecs.NewEntity()
	pos := position
	vel := direction.Normalize().Scale(s.speed)
	s.ecs.Positions.Set(id, &pos)
	s.ecs.Velocities.Set(id, &vel)
	s.ecs.Projectiles.Set(id, &component.Projectile{
		CreatedAt: ctx.Now,
		Damage:    s.damage,
		Owner:     owner,
	})
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.SpawnRequested,
		Data: event.SpawnRequest{Kind: event.KindProjectile, ID: id, Position: pos},
	})
	return id
}

// Update runs motion, then collision, then expiry. Removals are only queued.
func (s *ProjectileSystem) Update(ctx *Context, deltaTime float64) {
	s.ecs.Projectiles.Each(func(id types.EntityID, _ *component.Projectile) bool {
		pos, hasPos := s.ecs.Positions.Get(id)
		vel, hasVel := s.ecs.Velocities.Get(id)
		if !hasPos || !hasVel {
			despawn(s.ecs, s.eventDispatcher, id)
			return true
		}
		*pos = pos.Add(vel.Scale(deltaTime))
		return true
	})

	s.ecs.Projectiles.Each(func(id types.EntityID, proj *component.Projectile) bool {
		if s.ecs.PendingRemoval(id) {
			return true
		}
		pos, _ := s.ecs.Positions.Get(id)
		s.hit(id, proj, *pos)
		return true
	})

	s.ecs.Projectiles.Each(func(id types.EntityID, proj *component.Projectile) bool {
		if ctx.Now-proj.CreatedAt > s.lifetime {
			despawn(s.ecs, s.eventDispatcher, id)
		}
		return true
	})
}

// hit damages the first live enemy within the hit radius. A projectile hits at
// most one enemy.
func (s *ProjectileSystem) hit(id types.EntityID, proj *component.Projectile, pos grid.Vec2) {
	radiusSq := s.hitRadius * s.hitRadius
	s.ecs.Enemies.Each(func(enemyID types.EntityID, _ *component.Enemy) bool {
		enemyPos, ok := s.ecs.LiveEnemy(enemyID)
		if !ok || pos.DistanceSq(*enemyPos) >= radiusSq {
			return true
		}
		ApplyDamage(s.ecs, enemyID, proj.Damage)
		despawn(s.ecs, s.eventDispatcher, id)
		return false
	})
}
