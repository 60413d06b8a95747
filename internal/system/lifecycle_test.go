package system

import (
	"testing"

	"go-grid-defense/internal/event"
	"go-grid-defense/internal/logger"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle_KillPaysOnce(t *testing.T) {
	ecs, d, rec := newWorld()
	ls := NewLifecycleSystem(ecs, 1, d, logger.Nop())
	id := addEnemy(ecs, grid.Vec2{}, 6)

	ctx := &Context{Currency: 10}
	for i := 0; i < 6; i++ {
		ApplyDamage(ecs, id, 1)
		ls.Update(ctx)
	}
	assert.Equal(t, 11, ctx.Currency)

	// Pending until flushed; extra hits and passes change nothing.
	ApplyDamage(ecs, id, 1)
	ls.Update(ctx)
	assert.Equal(t, 11, ctx.Currency)

	destroyed := rec.ofType(event.EnemyDestroyed)
	require.Len(t, destroyed, 1)
	assert.Equal(t, event.Killed, destroyed[0].Data.(event.EnemyDestroyedData).Cause)
	changed := rec.ofType(event.CurrencyChanged)
	require.Len(t, changed, 1)
	assert.Equal(t, event.CurrencyChangedData{Old: 10, New: 11}, changed[0].Data)

	assert.Equal(t, []types.EntityID{id}, ecs.Flush())
	assert.False(t, ecs.Enemies.Has(id))
}

func TestLifecycle_ReachedBaseNeverPays(t *testing.T) {
	ecs, d, _ := newWorld()
	ls := NewLifecycleSystem(ecs, 1, d, logger.Nop())
	id := addEnemy(ecs, grid.Vec2{}, 1)
	require.True(t, ecs.MarkForRemoval(id))
	ApplyDamage(ecs, id, 1)

	ctx := &Context{Currency: 3}
	ls.Update(ctx)
	assert.Equal(t, 3, ctx.Currency)
}

func TestLifecycle_BaseDestroyedOnce(t *testing.T) {
	ecs, d, rec := newWorld()
	ls := NewLifecycleSystem(ecs, 1, d, logger.Nop())
	base := addBase(ecs, 1)

	ctx := &Context{}
	ls.Update(ctx)
	assert.Empty(t, rec.ofType(event.BaseDestroyed))

	ApplyDamage(ecs, base, 1)
	ls.Update(ctx)
	ls.Update(ctx)
	assert.Len(t, rec.ofType(event.BaseDestroyed), 1)
}

func TestApplyDamage(t *testing.T) {
	ecs, _, _ := newWorld()
	id := addEnemy(ecs, grid.Vec2{}, 6)

	assert.True(t, ApplyDamage(ecs, id, 0))
	assert.True(t, ApplyDamage(ecs, id, -3))
	h, _ := ecs.Healths.Get(id)
	assert.Equal(t, 6, h.Current)

	assert.False(t, ApplyDamage(ecs, ecs.NewEntity(), 1))
}
