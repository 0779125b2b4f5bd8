// internal/system/explosion.go
package system

import (
	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
	"missile-defense/pkg/geom"
)

// ExplosionSystem runs the blast lifecycle and the kill sweep. A blast grows
// to its maximum radius, flips to contracting exactly once, shrinks at half
// its growth rate and disappears at zero. Any rocket strictly inside a live
// blast is destroyed and scores points.
type ExplosionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewExplosionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ExplosionSystem {
	return &ExplosionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ExplosionSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Explosions) {
		ex := s.ecs.Explosions[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			delete(s.ecs.Explosions, id)
			continue
		}

		switch ex.Phase {
		case component.Expanding:
			ex.Radius += ex.GrowthRate
			if ex.Radius >= ex.MaxRadius {
				ex.Radius = ex.MaxRadius
				ex.Phase = component.Contracting
			}
		case component.Contracting:
			ex.Radius -= ex.GrowthRate * config.BlastContractionFactor
			if ex.Radius <= 0 {
				delete(s.ecs.Positions, id)
				delete(s.ecs.Explosions, id)
				continue
			}
		}

		s.sweep(geom.Point{X: pos.X, Y: pos.Y}, ex.Radius)
	}
}

// sweep removes every rocket strictly inside the blast radius and awards the
// kill reward for each, within the same pass so the terminal check that
// follows sees the current tick's kills.
func (s *ExplosionSystem) sweep(center geom.Point, radius float64) {
	for _, id := range entity.SortedIDs(s.ecs.Rockets) {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		if geom.Dist(geom.Point{X: pos.X, Y: pos.Y}, center) >= radius {
			continue
		}
		removeRocket(s.ecs, id)
		s.ecs.GameState.Score += config.PointsPerKill
		s.eventDispatcher.Dispatch(event.Event{Type: event.RocketIntercepted, Data: id})
	}
}
