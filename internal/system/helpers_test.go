package system

import (
	"missile-defense/internal/component"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
	"missile-defense/internal/types"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func addCity(ecs *entity.ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Cities[id] = &component.City{}
	return id
}

func addTower(ecs *entity.ECS, x, y float64, ammo int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Towers[id] = &component.Tower{Ammo: ammo, MaxAmmo: ammo}
	return id
}

func addRocket(ecs *entity.ECS, x, y, targetX, targetY, speed float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Rockets[id] = &component.Rocket{TargetX: targetX, TargetY: targetY, Speed: speed}
	return id
}

func addInterceptor(ecs *entity.ECS, startX, startY, targetX, targetY, speed float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: startX, Y: startY}
	ecs.Interceptors[id] = &component.Interceptor{
		StartX: startX, StartY: startY,
		TargetX: targetX, TargetY: targetY,
		Speed: speed,
	}
	return id
}

func addExplosion(ecs *entity.ECS, x, y, radius, maxRadius, growthRate float64, phase component.ExplosionPhase) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Explosions[id] = &component.Explosion{
		Radius:     radius,
		MaxRadius:  maxRadius,
		GrowthRate: growthRate,
		Phase:      phase,
	}
	return id
}
