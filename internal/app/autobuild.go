package app

import (
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// coverageSamples is how finely the path is sampled when scoring spots.
const coverageSamples = 64

// AutoBuilder spends coins on towers for unattended runs. Each free build
// spot is weighted by how much of the path lies in tower range, and the
// seeded generator picks among them.
type AutoBuilder struct {
	rng     *utils.PRNGService
	weights map[grid.Coord]int
}

func NewAutoBuilder(g *Game, seed int64) *AutoBuilder {
	b := &AutoBuilder{
		rng:     utils.NewPRNGService(seed),
		weights: make(map[grid.Coord]int, len(g.Level.BuildSpots)),
	}
	maxSq := g.Tuning.TowerMaxDistance * g.Tuning.TowerMaxDistance
	for _, cell := range g.Level.BuildSpots {
		pos := cell.World()
		w := 0
		for i := 0; i <= coverageSamples; i++ {
			if pos.DistanceSq(g.Path.Lerp(float64(i)/coverageSamples)) <= maxSq {
				w++
			}
		}
		b.weights[cell] = w
	}
	return b
}

// Weight is the coverage score of cell.
func (b *AutoBuilder) Weight(cell grid.Coord) int {
	return b.weights[cell]
}

// Step places at most one tower if the game can afford it.
func (b *AutoBuilder) Step(g *Game) (types.EntityID, bool) {
	if g.IsOver() || g.Currency() < g.Tuning.TowerCost {
		return 0, false
	}
	free := g.FreeBuildSpots()
	entries := make([]utils.WeightedEntry[grid.Coord], 0, len(free))
	for _, c := range free {
		entries = append(entries, utils.WeightedEntry[grid.Coord]{Value: c, Weight: b.weights[c]})
	}
	cell, ok := utils.ChooseWeighted(b.rng, entries)
	if !ok {
		return 0, false
	}
	id, err := g.PlaceTower(cell)
	if err != nil {
		return 0, false
	}
	return id, true
}
