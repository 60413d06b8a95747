package system

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"

	"go.uber.org/zap"
)

// LifecycleSystem turns health changes into outcomes: dead enemies pay a
// reward and leave, a depleted base ends the level.
type LifecycleSystem struct {
	ecs             *entity.ECS
	reward          int
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
}

func NewLifecycleSystem(ecs *entity.ECS, reward int, eventDispatcher *event.Dispatcher, log *zap.Logger) *LifecycleSystem {
	return &LifecycleSystem{
		ecs:             ecs,
		reward:          reward,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

func (s *LifecycleSystem) Update(ctx *Context) {
	s.ecs.Enemies.Each(func(id types.EntityID, _ *component.Enemy) bool {
		health, ok := s.ecs.Healths.Get(id)
		if !ok || health.Alive() {
			return true
		}
		// An enemy already leaving through the base never pays out.
		if !despawn(s.ecs, s.eventDispatcher, id) {
			return true
		}
		ctx.AddCoins(s.reward, s.eventDispatcher)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyDestroyed,
			Data: event.EnemyDestroyedData{ID: id, Cause: event.Killed},
		})
		return true
	})

	s.ecs.Bases.Each(func(id types.EntityID, base *component.Base) bool {
		health, ok := s.ecs.Healths.Get(id)
		if !ok || base.Destroyed || health.Alive() {
			return true
		}
		base.Destroyed = true
		s.log.Info("base destroyed", zap.Float64("at", ctx.Now), zap.Uint64("tick", ctx.Tick))
		s.eventDispatcher.Dispatch(event.Event{Type: event.BaseDestroyed, Data: id})
		return true
	})
}
