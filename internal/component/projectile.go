// internal/component/projectile.go
package component

import "go-grid-defense/internal/types"

// Projectile is a straight-flying shot.
type Projectile struct {
	CreatedAt float64
	Damage    int
	Owner     types.EntityID
}
