// internal/types/types.go
package types

// EntityID identifies an entity for its whole lifetime. IDs come from a monotonic
// counter and are never reused, so a stale ID held by a tower can only miss, never
// alias a newer entity. Zero means "no entity".
type EntityID uint64
