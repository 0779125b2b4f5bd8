// internal/system/state.go
package system

import (
	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
)

// StateSystem evaluates the terminal conditions once per pass, after the kill
// sweep. The win check runs first: a tick that reaches the winning score and
// loses the last tower at the same time resolves to a win.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Update(deltaTime float64) {
	state := s.ecs.GameState
	if state.Phase != component.PlayingPhase {
		return
	}

	if state.Score >= config.WinScore {
		state.Phase = component.WonPhase
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameWon})
		return
	}

	if s.allTowersDestroyed() {
		state.Phase = component.LostPhase
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameLost})
	}
}

func (s *StateSystem) allTowersDestroyed() bool {
	if len(s.ecs.Towers) == 0 {
		return false
	}
	for _, tower := range s.ecs.Towers {
		if !tower.Destroyed {
			return false
		}
	}
	return true
}
