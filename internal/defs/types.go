// internal/defs/types.go
package defs

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/pkg/grid"
)

// Level is the static map data supplied at level start.
type Level struct {
	Name       string           `json:"name" yaml:"name"`
	Path       []grid.Coord     `json:"path" yaml:"path"`
	BuildSpots []grid.Coord     `json:"build_spots" yaml:"build_spots"`
	Tiers      []EnemyTier      `json:"tiers" yaml:"tiers"`
	Waves      []WaveDefinition `json:"waves" yaml:"waves"`
	// Tuning overrides; zero fields keep the defaults.
	Tuning config.Tuning `json:"tuning" yaml:"tuning"`
}

// Tier looks up an enemy tier by id.
func (l *Level) Tier(id string) (EnemyTier, bool) {
	for _, t := range l.Tiers {
		if t.ID == id {
			return t, true
		}
	}
	return EnemyTier{}, false
}

// DefaultTier is the tier used when a level declares none.
const DefaultTier = "basic"

// DefaultLevel is the stock map: a spiral of eight nodes with fifteen build spots
// inside it. Enemies spawn endlessly every two seconds.
func DefaultLevel() *Level {
	return &Level{
		Name: "classic",
		Path: []grid.Coord{
			grid.C(0, 0), grid.C(1, 0), grid.C(1, -2), grid.C(-2, -2),
			grid.C(-2, 2), grid.C(3, 2), grid.C(3, -4), grid.C(-2, -4),
		},
		BuildSpots: []grid.Coord{
			grid.C(0, -1), grid.C(-1, -1), grid.C(-1, 0), grid.C(-1, 1), grid.C(0, 1),
			grid.C(1, 1), grid.C(2, 1), grid.C(2, 0), grid.C(2, -1), grid.C(2, -2),
			grid.C(2, -3), grid.C(1, -3), grid.C(0, -3), grid.C(-1, -3), grid.C(-2, -3),
		},
		Tiers: []EnemyTier{
			{ID: DefaultTier, Name: "Basic", Health: config.EnemyHealth, ProgressRate: config.EnemyProgressRate},
		},
	}
}
