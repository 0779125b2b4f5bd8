// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"missile-defense/internal/component"
	"missile-defense/internal/types"
)

// ECS is the entity registry: the single source of truth for simulation
// state. Only the update engine mutates it; the renderer reads a snapshot.
type ECS struct {
	GameTime     float64
	NextID       types.EntityID
	Positions    map[types.EntityID]*component.Position
	Rockets      map[types.EntityID]*component.Rocket
	Interceptors map[types.EntityID]*component.Interceptor
	Explosions   map[types.EntityID]*component.Explosion
	Cities       map[types.EntityID]*component.City
	Towers       map[types.EntityID]*component.Tower
	GameState    *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:       1,
		Positions:    make(map[types.EntityID]*component.Position),
		Rockets:      make(map[types.EntityID]*component.Rocket),
		Interceptors: make(map[types.EntityID]*component.Interceptor),
		Explosions:   make(map[types.EntityID]*component.Explosion),
		Cities:       make(map[types.EntityID]*component.City),
		Towers:       make(map[types.EntityID]*component.Tower),
		GameState: &component.GameState{
			Phase: component.StartPhase,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// SortedIDs returns the keys of a component map in ascending ID order.
// IDs are assigned sequentially, so this is registration order; systems
// iterate this way to keep the simulation deterministic under a fixed seed.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := slices.Collect(maps.Keys(m))
	slices.Sort(ids)
	return ids
}
