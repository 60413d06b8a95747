// internal/defs/waves.go
package defs

import "go-grid-defense/internal/component"

// WaveDefinition describes one wave of the spawner schedule.
type WaveDefinition struct {
	Tier     string  `json:"tier" yaml:"tier"`
	Count    int     `json:"count" yaml:"count"`       // 0 = endless
	Interval float64 `json:"interval" yaml:"interval"` // seconds between spawns
}

// WaveSpecs converts the level schedule into spawner entries.
func (l *Level) WaveSpecs() []component.WaveSpec {
	specs := make([]component.WaveSpec, 0, len(l.Waves))
	for _, w := range l.Waves {
		specs = append(specs, component.WaveSpec{Tier: w.Tier, Count: w.Count, Interval: w.Interval})
	}
	return specs
}
