package app

import (
	"testing"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/event"
	"go-grid-defense/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / config.TickRate

type counter map[event.EventType]int

func (c counter) OnEvent(e event.Event) { c[e.Type]++ }

func run(g *Game, seconds float64) {
	for n := int(seconds * config.TickRate); n > 0; n-- {
		g.Update(tick)
	}
}

// shortLevel is a three-cell corridor with a fragile base.
func shortLevel() *defs.Level {
	return &defs.Level{
		Name:       "corridor",
		Path:       []grid.Coord{grid.C(0, 0), grid.C(3, 0)},
		BuildSpots: []grid.Coord{grid.C(1, 1), grid.C(2, 1)},
		Tiers:      []defs.EnemyTier{{ID: "basic", Health: 6, ProgressRate: 0.5}},
		Tuning:     config.Tuning{BaseHealth: 2},
	}
}

func TestNewGame_DefaultLevel(t *testing.T) {
	events := counter{}
	g, err := NewGame(defs.DefaultLevel(), WithListener(events))
	require.NoError(t, err)

	assert.Equal(t, config.StartingCoins, g.Currency())
	assert.Equal(t, component.Health{Max: 20, Current: 20}, g.BaseHealth())
	assert.Equal(t, component.Playing, g.Phase())
	assert.Equal(t, 15, g.ECS.BuildSpots.Len())
	assert.Equal(t, 1, g.ECS.Spawners.Len())
	// 15 build spots, the base and the spawner.
	assert.Equal(t, 17, events[event.SpawnRequested])

	base, _ := g.ECS.Positions.Get(g.BaseID())
	assert.Equal(t, grid.C(-2, -4).World(), *base)
}

func TestNewGame_InvalidLevel(t *testing.T) {
	level := defs.DefaultLevel()
	level.Path = level.Path[:1]

	g, err := NewGame(level)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, grid.ErrPathTooShort)

	_, err = NewGame(nil)
	assert.Error(t, err)
}

func TestPlaceTower_Validation(t *testing.T) {
	g, err := NewGame(defs.DefaultLevel())
	require.NoError(t, err)

	_, err = g.PlaceTower(grid.C(0, 0))
	assert.ErrorIs(t, err, ErrNotBuildSpot)
	assert.Equal(t, 10, g.Currency())

	id, err := g.PlaceTower(grid.C(0, -1))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Currency())
	assert.Equal(t, id, g.TowerAt(grid.C(0, -1)))
	pos, _ := g.ECS.Positions.Get(id)
	assert.Equal(t, grid.C(0, -1).World(), *pos)

	_, err = g.PlaceTower(grid.C(0, -1))
	assert.ErrorIs(t, err, ErrCellOccupied)

	_, err = g.PlaceTower(grid.C(-1, -1))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Currency())

	_, err = g.PlaceTower(grid.C(0, 1))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.False(t, g.CanPlaceTower(grid.C(0, 1)))
	assert.Equal(t, 0, g.Currency())
	assert.Equal(t, 2, g.ECS.Towers.Len())
	assert.Len(t, g.FreeBuildSpots(), 13)
}

func TestGame_TowerKillsPayCoins(t *testing.T) {
	events := counter{}
	g, err := NewGame(defs.DefaultLevel(), WithListener(events))
	require.NoError(t, err)
	_, err = g.PlaceTower(grid.C(0, -1))
	require.NoError(t, err)

	kills := 0
	g.EventDispatcher.Subscribe(event.EnemyDestroyed, event.ListenerFunc(func(e event.Event) {
		if e.Data.(event.EnemyDestroyedData).Cause == event.Killed {
			kills++
		}
	}))

	run(g, 60)

	assert.Positive(t, kills)
	assert.Equal(t, 5+kills, g.Currency())
	assert.Positive(t, events[event.TowerFired])
}

func TestGame_BaseFallsAndFreezes(t *testing.T) {
	events := counter{}
	g, err := NewGame(shortLevel(), WithListener(events))
	require.NoError(t, err)

	// Spawns every 2s, each enemy needs 2s to walk the corridor.
	run(g, 10)

	require.True(t, g.IsOver())
	assert.Equal(t, 0, g.BaseHealth().Current)
	assert.Equal(t, 2, events[event.BaseDamaged])
	assert.Equal(t, 1, events[event.BaseDestroyed])
	assert.Equal(t, 10, g.Currency())

	ticks, now := g.Tick(), g.Now()
	g.Update(tick)
	assert.Equal(t, ticks, g.Tick())
	assert.Equal(t, now, g.Now())

	_, err = g.PlaceTower(grid.C(1, 1))
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestGame_NonPositiveDeltaIgnored(t *testing.T) {
	g, err := NewGame(defs.DefaultLevel())
	require.NoError(t, err)
	g.Update(0)
	g.Update(-1)
	assert.Zero(t, g.Tick())
	assert.Zero(t, g.Now())
}

func TestGame_ClearProjectilesOnGameOver(t *testing.T) {
	g, err := NewGame(shortLevel())
	require.NoError(t, err)
	g.ProjectileSystem.Spawn(g.Context(), grid.Vec2{}, grid.Vec2{X: 1}, 0)

	g.StateSystem.SwitchToGameOver()
	g.ECS.Flush()
	assert.Zero(t, g.ECS.Projectiles.Len())
	assert.Equal(t, component.GameOver, g.StateSystem.Current())
}
