// internal/system/rocket.go
package system

import (
	"math"

	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
	"missile-defense/internal/types"
)

// RocketSystem advances rockets and resolves ground impacts. A rocket closes
// on its target with remaining-progress compensation, so it accelerates as it
// falls; on arrival it detonates and levels any structure next to the impact
// point.
type RocketSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewRocketSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *RocketSystem {
	return &RocketSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *RocketSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Rockets) {
		rocket := s.ecs.Rockets[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			delete(s.ecs.Rockets, id)
			continue
		}

		rocket.Progress += rocket.Speed / 100

		// Step fraction of the remaining distance covered this tick. The
		// epsilon keeps the divisor positive near arrival; past that point
		// the step saturates and the rocket snaps onto its target.
		step := (rocket.Speed / 100) / (1 - rocket.Progress + config.ProgressEpsilon)
		if step >= 1 || step < 0 || math.IsInf(step, 0) || math.IsNaN(step) {
			pos.X = rocket.TargetX
			pos.Y = rocket.TargetY
		} else {
			pos.X += (rocket.TargetX - pos.X) * step
			pos.Y += (rocket.TargetY - pos.Y) * step
		}

		if pos.Y >= rocket.TargetY {
			s.impact(rocket)
			removeRocket(s.ecs, id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.RocketImpacted, Data: id})
		}
	}
}

// impact detonates a rocket on the ground: a blast appears at the target
// point and every structure within the impact box, per axis, is destroyed.
func (s *RocketSystem) impact(rocket *component.Rocket) {
	spawnExplosion(s.ecs, rocket.TargetX, rocket.TargetY,
		config.RocketBlastMaxRadius, config.RocketBlastGrowthRate)

	for _, id := range entity.SortedIDs(s.ecs.Cities) {
		city := s.ecs.Cities[id]
		if city.Destroyed || !s.withinImpact(id, rocket.TargetX, rocket.TargetY) {
			continue
		}
		city.Destroyed = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.CityDestroyed, Data: id})
	}
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		tower := s.ecs.Towers[id]
		if tower.Destroyed || !s.withinImpact(id, rocket.TargetX, rocket.TargetY) {
			continue
		}
		tower.Destroyed = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.TowerDestroyed, Data: id})
	}
}

func (s *RocketSystem) withinImpact(id types.EntityID, x, y float64) bool {
	pos := s.ecs.Positions[id]
	if pos == nil {
		return false
	}
	return math.Abs(pos.X-x) <= config.ImpactRadius &&
		math.Abs(pos.Y-y) <= config.ImpactRadius
}
