// internal/system/util.go
package system

import (
	"missile-defense/internal/component"
	"missile-defense/internal/entity"
	"missile-defense/internal/types"
)

// spawnExplosion creates a blast entity at the given point. Every explosion
// starts at radius zero in the expanding phase.
func spawnExplosion(ecs *entity.ECS, x, y, maxRadius, growthRate float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Explosions[id] = &component.Explosion{
		Radius:     0,
		MaxRadius:  maxRadius,
		GrowthRate: growthRate,
		Phase:      component.Expanding,
	}
	return id
}

func removeRocket(ecs *entity.ECS, id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Rockets, id)
}

func removeInterceptor(ecs *entity.ECS, id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Interceptors, id)
}
