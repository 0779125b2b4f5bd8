// internal/system/spawn.go
package system

import (
	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
	"missile-defense/internal/utils"
)

// SpawnSystem drips rockets into the arena. The interval between spawns
// shrinks as the score grows and the rockets themselves get faster, so a
// winning game is also a hardening one.
type SpawnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	accumulator     float64
}

func NewSpawnSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

// Update accumulates elapsed milliseconds and spawns at most one rocket when
// the interval elapses. With every surviving structure gone there is nothing
// to aim at; the spawn is skipped and the loss check ends the game shortly.
func (s *SpawnSystem) Update(deltaTime float64) {
	s.accumulator += deltaTime
	if s.accumulator < SpawnInterval(s.ecs.GameState.Score) {
		return
	}
	s.accumulator = 0

	targets := s.survivingTargets()
	if len(targets) == 0 {
		return
	}
	target := targets[s.rng.Intn(len(targets))]

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{
		X: s.rng.Float64() * config.ArenaWidth,
		Y: 0,
	}
	s.ecs.Rockets[id] = &component.Rocket{
		TargetX: target.X,
		TargetY: target.Y,
		Speed: config.RocketBaseSpeed +
			s.rng.Float64()*config.RocketSpeedJitter +
			float64(s.ecs.GameState.Score)/config.RocketSpeedScoreDivisor,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.RocketLaunched, Data: id})
}

// Reset clears the accumulated time, used when a new game starts.
func (s *SpawnSystem) Reset() {
	s.accumulator = 0
}

// survivingTargets collects the positions of all non-destroyed cities and
// towers, in registration order, as the candidate set for target selection.
func (s *SpawnSystem) survivingTargets() []component.Position {
	var targets []component.Position
	for _, id := range entity.SortedIDs(s.ecs.Cities) {
		if s.ecs.Cities[id].Destroyed {
			continue
		}
		if pos := s.ecs.Positions[id]; pos != nil {
			targets = append(targets, *pos)
		}
	}
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		if s.ecs.Towers[id].Destroyed {
			continue
		}
		if pos := s.ecs.Positions[id]; pos != nil {
			targets = append(targets, *pos)
		}
	}
	return targets
}

// SpawnInterval returns the milliseconds between spawns at the given score.
func SpawnInterval(score int) float64 {
	interval := config.SpawnIntervalBase -
		(score/config.ScorePerIntervalStep)*config.SpawnIntervalStep
	if interval < config.SpawnIntervalMin {
		interval = config.SpawnIntervalMin
	}
	return float64(interval)
}
