package system

import (
	"testing"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/logger"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSpawner(ss *SpawnSystem, ctx *Context, until, dt float64) {
	for ctx.Now < until {
		ctx.Now += dt
		ss.Update(ctx, dt)
	}
}

func TestSpawn_EndlessDefault(t *testing.T) {
	ecs, d, rec := newWorld()
	ss := NewSpawnSystem(ecs, defs.DefaultLevel().Tier, d, logger.Nop())
	ss.AddSpawner(grid.C(2, 3), defs.DefaultTier, 2.0, nil)

	runSpawner(ss, &Context{}, 6, 0.5)

	assert.Equal(t, 3, ecs.Enemies.Len())
	assert.Len(t, rec.ofType(event.EnemySpawned), 3)
	for _, id := range ecs.Enemies.IDs() {
		pos, _ := ecs.Positions.Get(id)
		assert.Equal(t, grid.C(2, 3).World(), *pos)
		h, _ := ecs.Healths.Get(id)
		assert.Equal(t, 6, h.Current)
		pf, _ := ecs.PathFollows.Get(id)
		assert.Zero(t, pf.Progress)
	}
}

func TestSpawn_WavesAdvanceAndFinish(t *testing.T) {
	level := defs.DefaultLevel()
	level.Tiers = append(level.Tiers, defs.EnemyTier{ID: "runner", Health: 3, ProgressRate: 0.05})

	ecs, d, _ := newWorld()
	ss := NewSpawnSystem(ecs, level.Tier, d, logger.Nop())
	id := ss.AddSpawner(grid.C(0, 0), defs.DefaultTier, 2.0, []component.WaveSpec{
		{Tier: "runner", Count: 2, Interval: 1.0},
		{Tier: defs.DefaultTier, Count: 1, Interval: 0.5},
	})

	runSpawner(ss, &Context{}, 10, 0.5)

	sp, _ := ecs.Spawners.Get(id)
	assert.True(t, sp.Done)
	require.Equal(t, 3, ecs.Enemies.Len())
	var tiers []string
	ecs.Enemies.Each(func(_ types.EntityID, e *component.Enemy) bool {
		tiers = append(tiers, e.Tier)
		return true
	})
	assert.Equal(t, []string{"runner", "runner", "basic"}, tiers)
}

func TestSpawn_UnknownTierSkipped(t *testing.T) {
	ecs, d, _ := newWorld()
	ss := NewSpawnSystem(ecs, defs.DefaultLevel().Tier, d, logger.Nop())
	ss.AddSpawner(grid.C(0, 0), "ghost", 1.0, nil)

	runSpawner(ss, &Context{}, 3, 1)
	assert.Zero(t, ecs.Enemies.Len())
}
