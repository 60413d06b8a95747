// internal/app/tower_management.go
package app

import (
	"errors"
	"math"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"

	"go.uber.org/zap"
)

var (
	ErrNotBuildSpot      = errors.New("cell is not a build spot")
	ErrCellOccupied      = errors.New("cell already has a tower")
	ErrInsufficientFunds = errors.New("not enough coins")
	ErrGameOver          = errors.New("game is over")
)

// PlaceTower buys a tower on cell. All checks run before anything changes, so
// a rejected placement leaves the game untouched.
func (g *Game) PlaceTower(cell grid.Coord) (types.EntityID, error) {
	if err := g.canPlaceTower(cell); err != nil {
		return 0, err
	}

	g.ctx.AddCoins(-g.Tuning.TowerCost, g.EventDispatcher)

	id := g.ECS.NewEntity()
	pos := cell.World()
	g.ECS.Positions.Set(id, &pos)
	g.ECS.Towers.Set(id, &component.Tower{
		Cell:      cell,
		LastFired: math.Inf(-1),
	})
	g.towerCells[cell] = id

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.SpawnRequested,
		Data: event.SpawnRequest{Kind: event.KindTower, ID: id, Cell: cell, Position: pos},
	})
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	g.log.Info("tower placed", zap.Stringer("cell", cell), zap.Int("coins", g.ctx.Currency))
	return id, nil
}

// CanPlaceTower reports whether PlaceTower(cell) would succeed.
func (g *Game) CanPlaceTower(cell grid.Coord) bool {
	return g.canPlaceTower(cell) == nil
}

func (g *Game) canPlaceTower(cell grid.Coord) error {
	switch {
	case g.ctx.Phase == component.GameOver:
		return ErrGameOver
	case !g.IsBuildSpot(cell):
		return ErrNotBuildSpot
	case g.towerCells[cell] != 0:
		return ErrCellOccupied
	case g.ctx.Currency < g.Tuning.TowerCost:
		return ErrInsufficientFunds
	}
	return nil
}

func (g *Game) IsBuildSpot(cell grid.Coord) bool {
	_, ok := g.buildSpots[cell]
	return ok
}

// TowerAt returns the tower standing on cell, or 0.
func (g *Game) TowerAt(cell grid.Coord) types.EntityID {
	return g.towerCells[cell]
}

// FreeBuildSpots lists unoccupied build spots in level order.
func (g *Game) FreeBuildSpots() []grid.Coord {
	var free []grid.Coord
	for _, c := range g.Level.BuildSpots {
		if g.towerCells[c] == 0 {
			free = append(free, c)
		}
	}
	return free
}

func (g *Game) placeBuildSpots() {
	for _, cell := range g.Level.BuildSpots {
		id := g.ECS.NewEntity()
		pos := cell.World()
		g.ECS.Positions.Set(id, &pos)
		g.ECS.BuildSpots.Set(id, &component.BuildSpot{Cell: cell})
		g.buildSpots[cell] = id
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.SpawnRequested,
			Data: event.SpawnRequest{Kind: event.KindBuildSpot, ID: id, Cell: cell, Position: pos},
		})
	}
}
