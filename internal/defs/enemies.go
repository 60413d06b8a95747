// internal/defs/enemies.go
package defs

// EnemyTier holds the static data for one kind of enemy.
type EnemyTier struct {
	ID           string  `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	Health       int     `json:"health" yaml:"health"`
	ProgressRate float64 `json:"progress_rate" yaml:"progress_rate"` // fraction of the path per second
}
