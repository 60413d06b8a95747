package component

// Enemy marks a path walker.
type Enemy struct {
	Tier string // tier id from the level definition
}
