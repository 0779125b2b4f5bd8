// internal/types/types.go
package types

// EntityID identifies an entity within the registry. IDs are assigned from a
// monotonically increasing counter and are unique for the lifetime of a game
// session.
type EntityID uint64
