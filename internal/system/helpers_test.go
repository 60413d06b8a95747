package system

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

// recorder keeps every dispatched event in order.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newWorld() (*entity.ECS, *event.Dispatcher, *recorder) {
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec)
	return entity.NewECS(), d, rec
}

func addEnemy(ecs *entity.ECS, at grid.Vec2, hp int) types.EntityID {
	id := ecs.NewEntity()
	pos := at
	ecs.Positions.Set(id, &pos)
	ecs.Healths.Set(id, component.NewHealth(hp))
	ecs.PathFollows.Set(id, &component.PathFollow{Rate: 0.025})
	ecs.Enemies.Set(id, &component.Enemy{Tier: "basic"})
	return id
}

func addTower(ecs *entity.ECS, at grid.Vec2, lastFired float64) types.EntityID {
	id := ecs.NewEntity()
	pos := at
	ecs.Positions.Set(id, &pos)
	ecs.Towers.Set(id, &component.Tower{LastFired: lastFired})
	return id
}

func addBase(ecs *entity.ECS, hp int) types.EntityID {
	id := ecs.NewEntity()
	pos := grid.Vec2{}
	ecs.Positions.Set(id, &pos)
	ecs.Bases.Set(id, &component.Base{})
	ecs.Healths.Set(id, component.NewHealth(hp))
	return id
}
