// internal/app/game.go
package app

import (
	"fmt"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/interfaces"
	"go-grid-defense/internal/logger"
	"go-grid-defense/internal/system"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Game holds one running level: the entity arena, the systems and the
// simulation context they share.
type Game struct {
	Level  *defs.Level
	Path   *grid.Path
	Tuning config.Tuning
	ECS    *entity.ECS
	RunID  uuid.UUID

	SpawnSystem      *system.SpawnSystem
	MovementSystem   *system.MovementSystem
	TargetingSystem  *system.TargetingSystem
	ProjectileSystem *system.ProjectileSystem
	LifecycleSystem  *system.LifecycleSystem
	StateSystem      *system.StateSystem
	EventDispatcher  *event.Dispatcher

	ctx        system.Context
	log        *zap.Logger
	baseID     types.EntityID
	buildSpots map[grid.Coord]types.EntityID
	towerCells map[grid.Coord]types.EntityID
}

// Option configures NewGame.
type Option func(*options)

type options struct {
	log       *zap.Logger
	listeners []event.Listener
}

// WithLogger sets the logger; the default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithListener subscribes l to every event before the level is set up, so it
// also sees the spawn requests for the static map.
func WithListener(l event.Listener) Option {
	return func(o *options) { o.listeners = append(o.listeners, l) }
}

// NewGame validates level and builds the initial world: build spots, the base
// on the last path node and a spawner on the first. An invalid level is a
// configuration error and nothing is built.
func NewGame(level *defs.Level, opts ...Option) (*Game, error) {
	if level == nil {
		return nil, fmt.Errorf("nil level")
	}
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level %q: %w", level.Name, err)
	}
	path, err := grid.NewPath(level.Path)
	if err != nil {
		return nil, err
	}

	o := options{log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	tuning := config.DefaultTuning().Merge(level.Tuning)
	runID := uuid.New()
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	for _, l := range o.listeners {
		eventDispatcher.SubscribeAll(l)
	}

	g := &Game{
		Level:           level,
		Path:            path,
		Tuning:          tuning,
		ECS:             ecs,
		RunID:           runID,
		EventDispatcher: eventDispatcher,
		ctx:             system.Context{Currency: tuning.StartingCoins},
		log:             o.log.With(zap.String("run", runID.String()), zap.String("level", level.Name)),
		buildSpots:      make(map[grid.Coord]types.EntityID),
		towerCells:      make(map[grid.Coord]types.EntityID),
	}
	g.SpawnSystem = system.NewSpawnSystem(ecs, level.Tier, eventDispatcher, g.log)
	g.MovementSystem = system.NewMovementSystem(ecs, path, tuning.BaseDamage, eventDispatcher)
	g.TargetingSystem = system.NewTargetingSystem(ecs, tuning, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, tuning, eventDispatcher)
	g.LifecycleSystem = system.NewLifecycleSystem(ecs, tuning.EnemyReward, eventDispatcher, g.log)
	g.StateSystem = system.NewStateSystem(&g.ctx, g, eventDispatcher)

	g.placeBuildSpots()
	g.createBase(path.End())
	g.SpawnSystem.AddSpawner(path.Start(), defaultTierOf(level), config.SpawnInterval, level.WaveSpecs())

	g.log.Info("level loaded",
		zap.Int("path_nodes", len(level.Path)),
		zap.Int("path_length", path.Length()),
		zap.Int("build_spots", len(level.BuildSpots)),
		zap.Int("waves", len(level.Waves)),
	)
	return g, nil
}

func defaultTierOf(level *defs.Level) string {
	if _, ok := level.Tier(defs.DefaultTier); ok {
		return defs.DefaultTier
	}
	return level.Tiers[0].ID
}

// Update advances the simulation by one tick of deltaTime seconds.
//
// Order: spawn, movement (base damage), flush, targeting, projectile spawn,
// projectile motion/collision/expiry, health outcomes, flush. Movement removals
// are flushed before targeting so towers never aim at an enemy that already
// reached the base. After the base falls the call is a no-op.
func (g *Game) Update(deltaTime float64) {
	if g.ctx.Phase == component.GameOver || deltaTime <= 0 {
		return
	}
	g.ctx.Tick++
	g.ctx.Now += deltaTime

	g.SpawnSystem.Update(&g.ctx, deltaTime)
	g.MovementSystem.Update(&g.ctx, deltaTime)
	g.ECS.Flush()

	for _, shot := range g.TargetingSystem.Update(&g.ctx, deltaTime) {
		g.ProjectileSystem.Spawn(&g.ctx, shot.Position, shot.Direction, shot.Tower)
	}
	g.ProjectileSystem.Update(&g.ctx, deltaTime)

	g.LifecycleSystem.Update(&g.ctx)
	g.ECS.Flush()
}

// ClearProjectiles queues every projectile for removal.
func (g *Game) ClearProjectiles() {
	for _, id := range g.ECS.Projectiles.IDs() {
		if g.ECS.MarkForRemoval(id) {
			g.EventDispatcher.Dispatch(event.Event{Type: event.DespawnRequested, Data: id})
		}
	}
}

func (g *Game) createBase(cell grid.Coord) {
	id := g.ECS.NewEntity()
	pos := cell.World()
	g.ECS.Positions.Set(id, &pos)
	g.ECS.Bases.Set(id, &component.Base{Cell: cell})
	g.ECS.Healths.Set(id, component.NewHealth(g.Tuning.BaseHealth))
	g.baseID = id
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.SpawnRequested,
		Data: event.SpawnRequest{Kind: event.KindBase, ID: id, Cell: cell, Position: pos},
	})
}

// --- Public accessors ---

func (g *Game) Now() float64             { return g.ctx.Now }
func (g *Game) Tick() uint64             { return g.ctx.Tick }
func (g *Game) Currency() int            { return g.ctx.Currency }
func (g *Game) Phase() component.Phase   { return g.ctx.Phase }
func (g *Game) IsOver() bool             { return g.ctx.Phase == component.GameOver }
func (g *Game) BaseID() types.EntityID   { return g.baseID }
func (g *Game) Logger() *zap.Logger      { return g.log }
func (g *Game) Context() *system.Context { return &g.ctx }

// BaseHealth returns the base health accumulator.
func (g *Game) BaseHealth() component.Health {
	if h, ok := g.ECS.Healths.Get(g.baseID); ok {
		return *h
	}
	return component.Health{}
}

var _ interfaces.Game = (*Game)(nil)
