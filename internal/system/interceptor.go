// internal/system/interceptor.go
package system

import (
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
	"missile-defense/pkg/geom"
)

// InterceptorSystem advances interceptors along a straight line from their
// launching tower to the chosen point and detonates them on arrival.
type InterceptorSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewInterceptorSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *InterceptorSystem {
	return &InterceptorSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *InterceptorSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Interceptors) {
		in := s.ecs.Interceptors[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			delete(s.ecs.Interceptors, id)
			continue
		}

		start := geom.Point{X: in.StartX, Y: in.StartY}
		target := geom.Point{X: in.TargetX, Y: in.TargetY}

		// A zero-length path is immediate arrival, not a division by zero.
		dist := geom.Dist(start, target)
		if dist == 0 {
			in.Progress = 1
		} else {
			in.Progress += in.Speed / dist
		}
		if in.Progress > 1 {
			in.Progress = 1
		}

		p := geom.Lerp(start, target, in.Progress)
		pos.X = p.X
		pos.Y = p.Y

		if in.Progress >= 1 {
			spawnExplosion(s.ecs, in.TargetX, in.TargetY,
				config.InterceptorBlastMaxRadius, config.InterceptorBlastGrowthRate)
			removeInterceptor(s.ecs, id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.InterceptorDetonated, Data: id})
		}
	}
}
