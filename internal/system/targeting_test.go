package system

import (
	"math"
	"testing"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/event"
	"go-grid-defense/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

func TestTargeting_NoEnemiesIsIdempotent(t *testing.T) {
	ecs, d, rec := newWorld()
	ts := NewTargetingSystem(ecs, config.DefaultTuning(), d)
	id := addTower(ecs, grid.Vec2{}, math.Inf(-1))
	tower, _ := ecs.Towers.Get(id)
	tower.Facing = 1.25

	ctx := &Context{}
	for i := 0; i < 10; i++ {
		ctx.Now += tick
		assert.Empty(t, ts.Update(ctx, tick))
	}
	assert.Equal(t, 1.25, tower.Facing)
	assert.Equal(t, component.Idle, tower.State)
	assert.Zero(t, tower.Target)
	assert.Empty(t, rec.ofType(event.TowerFired))
}

func TestTargeting_QuarterTurnLocksOnTick50(t *testing.T) {
	ecs, d, rec := newWorld()
	ts := NewTargetingSystem(ecs, config.DefaultTuning(), d)
	id := addTower(ecs, grid.Vec2{}, math.Inf(-1))
	addEnemy(ecs, grid.Vec2{Y: 100}, 6)
	tower, _ := ecs.Towers.Get(id)

	ctx := &Context{}
	for i := 1; i <= 49; i++ {
		ctx.Now += tick
		shots := ts.Update(ctx, tick)
		require.Empty(t, shots, "tick %d", i)
		require.Equal(t, component.Tracking, tower.State, "tick %d", i)
	}

	ctx.Now += tick
	shots := ts.Update(ctx, tick)
	require.Len(t, shots, 1)
	assert.Equal(t, component.Locked, tower.State)
	assert.InDelta(t, math.Pi/2, tower.Facing, 1e-12)
	assert.Equal(t, ctx.Now, tower.LastFired)
	assert.InDelta(t, 0, shots[0].Direction.X, 1e-12)
	assert.InDelta(t, 1, shots[0].Direction.Y, 1e-12)
	assert.Len(t, rec.ofType(event.TowerFired), 1)
}

func TestTargeting_SlewTakesShorterArc(t *testing.T) {
	ecs, d, _ := newWorld()
	ts := NewTargetingSystem(ecs, config.DefaultTuning(), d)
	id := addTower(ecs, grid.Vec2{}, math.Inf(-1))
	addEnemy(ecs, grid.Vec2{Y: -100}, 6) // 3π/2
	tower, _ := ecs.Towers.Get(id)

	ts.Update(&Context{Now: tick}, tick)
	assert.InDelta(t, 2*math.Pi-config.AngularSpeed, tower.Facing, 1e-12)
}

func TestTargeting_EquidistantPicksFirstSpawned(t *testing.T) {
	ecs, d, _ := newWorld()
	ts := NewTargetingSystem(ecs, config.DefaultTuning(), d)
	id := addTower(ecs, grid.Vec2{}, math.Inf(-1))
	first := addEnemy(ecs, grid.Vec2{X: 100}, 6)
	addEnemy(ecs, grid.Vec2{X: -100}, 6)
	addEnemy(ecs, grid.Vec2{Y: 100}, 6)

	ts.Update(&Context{Now: tick}, tick)
	tower, _ := ecs.Towers.Get(id)
	assert.Equal(t, first, tower.Target)
}

func TestTargeting_ClosestWins(t *testing.T) {
	ecs, d, _ := newWorld()
	ts := NewTargetingSystem(ecs, config.DefaultTuning(), d)
	id := addTower(ecs, grid.Vec2{}, math.Inf(-1))
	addEnemy(ecs, grid.Vec2{X: 200}, 6)
	near := addEnemy(ecs, grid.Vec2{X: 50}, 6)

	ts.Update(&Context{Now: tick}, tick)
	tower, _ := ecs.Towers.Get(id)
	assert.Equal(t, near, tower.Target)
}

func TestTargeting_KeepsTargetWhileInRange(t *testing.T) {
	ecs, d, _ := newWorld()
	ts := NewTargetingSystem(ecs, config.DefaultTuning(), d)
	id := addTower(ecs, grid.Vec2{}, math.Inf(-1))
	far := addEnemy(ecs, grid.Vec2{X: 200}, 6)

	ctx := &Context{Now: tick}
	ts.Update(ctx, tick)
	addEnemy(ecs, grid.Vec2{X: 20}, 6)
	ctx.Now += tick
	ts.Update(ctx, tick)

	tower, _ := ecs.Towers.Get(id)
	assert.Equal(t, far, tower.Target)
}

func TestTargeting_StaleTargetIsReplaced(t *testing.T) {
	ecs, d, _ := newWorld()
	ts := NewTargetingSystem(ecs, config.DefaultTuning(), d)
	id := addTower(ecs, grid.Vec2{}, math.Inf(-1))
	gone := addEnemy(ecs, grid.Vec2{X: 50}, 6)
	next := addEnemy(ecs, grid.Vec2{X: 150}, 6)

	ctx := &Context{Now: tick}
	ts.Update(ctx, tick)
	tower, _ := ecs.Towers.Get(id)
	require.Equal(t, gone, tower.Target)

	ecs.MarkForRemoval(gone)
	ecs.Flush()
	ctx.Now += tick
	ts.Update(ctx, tick)
	assert.Equal(t, next, tower.Target)
}

func TestTargeting_DropsTargetOutOfRange(t *testing.T) {
	ecs, d, _ := newWorld()
	ts := NewTargetingSystem(ecs, config.DefaultTuning(), d)
	id := addTower(ecs, grid.Vec2{}, math.Inf(-1))
	enemy := addEnemy(ecs, grid.Vec2{X: 100}, 6)

	ctx := &Context{Now: tick}
	ts.Update(ctx, tick)
	tower, _ := ecs.Towers.Get(id)
	require.Equal(t, enemy, tower.Target)

	pos, _ := ecs.Positions.Get(enemy)
	pos.X = config.TowerMaxDistance + 1
	ctx.Now += tick
	assert.Empty(t, ts.Update(ctx, tick))
	assert.Zero(t, tower.Target)
	assert.Equal(t, component.Idle, tower.State)
}

func TestTargeting_RangeBoundaryIsInclusive(t *testing.T) {
	ecs, d, _ := newWorld()
	ts := NewTargetingSystem(ecs, config.DefaultTuning(), d)
	id := addTower(ecs, grid.Vec2{}, math.Inf(-1))
	enemy := addEnemy(ecs, grid.Vec2{X: config.TowerMaxDistance}, 6)

	ts.Update(&Context{Now: tick}, tick)
	tower, _ := ecs.Towers.Get(id)
	assert.Equal(t, enemy, tower.Target)
}

func TestTargeting_CooldownGatesFire(t *testing.T) {
	ecs, d, _ := newWorld()
	ts := NewTargetingSystem(ecs, config.DefaultTuning(), d)
	id := addTower(ecs, grid.Vec2{}, math.Inf(-1))
	addEnemy(ecs, grid.Vec2{X: 100}, 6)
	tower, _ := ecs.Towers.Get(id)

	ctx := &Context{Now: 0.5}
	require.Len(t, ts.Update(ctx, tick), 1)

	// Exactly one cooldown later is still too early.
	ctx.Now = 1.5
	assert.Empty(t, ts.Update(ctx, tick))
	ctx.Now = 1.51
	assert.Len(t, ts.Update(ctx, tick), 1)
	assert.Equal(t, 2, tower.Shots)
}

func TestSpin(t *testing.T) {
	assert.Equal(t, counterClockwise, spin(1, 0))
	assert.Equal(t, clockwise, spin(0, 1))
	assert.Equal(t, clockwise, spin(6, 0.1))
	assert.Equal(t, counterClockwise, spin(0.1, 6))
}
