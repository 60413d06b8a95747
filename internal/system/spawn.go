// internal/system/spawn.go
package system

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"

	"go.uber.org/zap"
)

// TierLookup resolves an enemy tier id.
type TierLookup func(id string) (defs.EnemyTier, bool)

// SpawnSystem runs every spawner's schedule.
type SpawnSystem struct {
	ecs             *entity.ECS
	tiers           TierLookup
	eventDispatcher *event.Dispatcher
	log             *zap.Logger
}

func NewSpawnSystem(ecs *entity.ECS, tiers TierLookup, eventDispatcher *event.Dispatcher, log *zap.Logger) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		tiers:           tiers,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

// AddSpawner places a spawner at cell. With no waves it emits defaultTier
// every interval forever.
func (s *SpawnSystem) AddSpawner(cell grid.Coord, defaultTier string, interval float64, waves []component.WaveSpec) types.EntityID {
	id := s.ecs.NewEntity()
	pos := cell.World()
	sp := &component.Spawner{Interval: interval, Tier: defaultTier, Waves: waves}
	if len(waves) > 0 {
		sp.BeginWave(0)
	}
	s.ecs.Spawners.Set(id, sp)
	s.ecs.Positions.Set(id, &pos)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.SpawnRequested,
		Data: event.SpawnRequest{Kind: event.KindSpawner, ID: id, Cell: cell, Position: pos},
	})
	return id
}

func (s *SpawnSystem) Update(ctx *Context, deltaTime float64) {
	s.ecs.Spawners.Each(func(id types.EntityID, sp *component.Spawner) bool {
		if sp.Done || ctx.Now-sp.LastSpawn < sp.Interval {
			return true
		}
		pos, ok := s.ecs.Positions.Get(id)
		if !ok {
			return true
		}

		s.spawnEnemy(sp.Tier, *pos)
		sp.LastSpawn = ctx.Now

		if len(sp.Waves) > 0 {
			sp.Spawned++
			if count := sp.Waves[sp.WaveIndex].Count; count > 0 && sp.Spawned >= count {
				sp.BeginWave(sp.WaveIndex + 1)
				if sp.Done {
					s.log.Info("spawner finished its schedule", zap.Uint64("spawner", uint64(id)))
				}
			}
		}
		return true
	})
}

func (s *SpawnSystem) spawnEnemy(tierID string, at grid.Vec2) types.EntityID {
	tier, ok := s.tiers(tierID)
	if !ok {
		s.log.Warn("enemy tier not found", zap.String("tier", tierID))
		return 0
	}

	id := s.ecs.NewEntity()
	pos := at
	s.ecs.Positions.Set(id, &pos)
	s.ecs.Healths.Set(id, component.NewHealth(tier.Health))
	s.ecs.PathFollows.Set(id, &component.PathFollow{Rate: tier.ProgressRate})
	s.ecs.Enemies.Set(id, &component.Enemy{Tier: tier.ID})

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.SpawnRequested,
		Data: event.SpawnRequest{Kind: event.KindEnemy, ID: id, Position: pos},
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
	s.log.Debug("enemy spawned", zap.Uint64("id", uint64(id)), zap.String("tier", tier.ID))
	return id
}
