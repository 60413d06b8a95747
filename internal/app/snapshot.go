package app

import (
	"encoding/binary"
	"math"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"

	"github.com/cespare/xxhash/v2"
)

// EnemyView is a read-only copy of one enemy.
type EnemyView struct {
	ID       types.EntityID
	Tier     string
	Position grid.Vec2
	Health   component.Health
	Progress float64
}

// TowerView is a read-only copy of one tower.
type TowerView struct {
	ID     types.EntityID
	Cell   grid.Coord
	Facing float64
	State  component.TargetState
	Target types.EntityID
	Shots  int
}

// ProjectileView is a read-only copy of one projectile.
type ProjectileView struct {
	ID       types.EntityID
	Position grid.Vec2
}

// Snapshot is a plain-data copy of the world between ticks. Renderers and
// tools read snapshots instead of the live stores.
type Snapshot struct {
	Tick        uint64
	Now         float64
	Currency    int
	Base        component.Health
	Phase       component.Phase
	Wave        int  // 1-based; 0 when the spawner has no schedule
	EndlessWave bool // the current wave never ends
	Enemies     []EnemyView
	Towers      []TowerView
	Projectiles []ProjectileView
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.ctx.Tick,
		Now:      g.ctx.Now,
		Currency: g.ctx.Currency,
		Base:     g.BaseHealth(),
		Phase:    g.ctx.Phase,
	}

	g.ECS.Spawners.Each(func(_ types.EntityID, sp *component.Spawner) bool {
		if len(sp.Waves) == 0 {
			return false
		}
		s.Wave = min(sp.WaveIndex, len(sp.Waves)-1) + 1
		s.EndlessWave = !sp.Done && sp.Waves[sp.WaveIndex].Count == 0
		return false
	})
	g.ECS.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		v := EnemyView{ID: id, Tier: e.Tier}
		if pos, ok := g.ECS.Positions.Get(id); ok {
			v.Position = *pos
		}
		if h, ok := g.ECS.Healths.Get(id); ok {
			v.Health = *h
		}
		if pf, ok := g.ECS.PathFollows.Get(id); ok {
			v.Progress = pf.Progress
		}
		s.Enemies = append(s.Enemies, v)
		return true
	})
	g.ECS.Towers.Each(func(id types.EntityID, t *component.Tower) bool {
		s.Towers = append(s.Towers, TowerView{
			ID: id, Cell: t.Cell, Facing: t.Facing, State: t.State, Target: t.Target, Shots: t.Shots,
		})
		return true
	})
	g.ECS.Projectiles.Each(func(id types.EntityID, _ *component.Projectile) bool {
		v := ProjectileView{ID: id}
		if pos, ok := g.ECS.Positions.Get(id); ok {
			v.Position = *pos
		}
		s.Projectiles = append(s.Projectiles, v)
		return true
	})
	return s
}

// Checksum hashes the snapshot. Two runs of the same level with the same
// inputs and tick sizes produce the same checksum at the same tick.
func (s Snapshot) Checksum() uint64 {
	h := xxhash.New()
	var buf [8]byte
	u := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	f := func(v float64) { u(math.Float64bits(v)) }
	i := func(v int) { u(uint64(int64(v))) }

	u(s.Tick)
	f(s.Now)
	i(s.Currency)
	i(s.Base.Current)
	i(int(s.Phase))
	i(s.Wave)
	for _, e := range s.Enemies {
		u(uint64(e.ID))
		_, _ = h.WriteString(e.Tier)
		f(e.Position.X)
		f(e.Position.Y)
		i(e.Health.Current)
		f(e.Progress)
	}
	for _, t := range s.Towers {
		u(uint64(t.ID))
		i(t.Cell.X)
		i(t.Cell.Y)
		f(t.Facing)
		i(int(t.State))
		u(uint64(t.Target))
		i(t.Shots)
	}
	for _, p := range s.Projectiles {
		u(uint64(p.ID))
		f(p.Position.X)
		f(p.Position.Y)
	}
	return h.Sum64()
}
