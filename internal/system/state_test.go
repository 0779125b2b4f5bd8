package system

import (
	"testing"

	"missile-defense/internal/component"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"

	"github.com/stretchr/testify/assert"
)

func TestWinAtScoreThreshold(t *testing.T) {
	ecs := entity.NewECS()
	addTower(ecs, 400, 560, 40)
	ecs.GameState.Phase = component.PlayingPhase
	ecs.GameState.Score = 1000

	dispatcher := event.NewDispatcher()
	r := &recorder{}
	dispatcher.Subscribe(event.GameWon, r)
	s := NewStateSystem(ecs, dispatcher)

	s.Update(16)

	assert.Equal(t, component.WonPhase, ecs.GameState.Phase)
	assert.Equal(t, 1, r.count(event.GameWon))
}

func TestLossWhenAllTowersDown(t *testing.T) {
	ecs := entity.NewECS()
	a := addTower(ecs, 50, 560, 40)
	b := addTower(ecs, 400, 560, 80)
	ecs.Towers[a].Destroyed = true
	ecs.Towers[b].Destroyed = true
	ecs.GameState.Phase = component.PlayingPhase

	dispatcher := event.NewDispatcher()
	r := &recorder{}
	dispatcher.Subscribe(event.GameLost, r)
	s := NewStateSystem(ecs, dispatcher)

	s.Update(16)

	assert.Equal(t, component.LostPhase, ecs.GameState.Phase)
	assert.Equal(t, 1, r.count(event.GameLost))
}

func TestWinBeatsSimultaneousLoss(t *testing.T) {
	ecs := entity.NewECS()
	id := addTower(ecs, 400, 560, 40)
	ecs.Towers[id].Destroyed = true
	ecs.GameState.Phase = component.PlayingPhase
	ecs.GameState.Score = 1000
	s := NewStateSystem(ecs, event.NewDispatcher())

	s.Update(16)

	assert.Equal(t, component.WonPhase, ecs.GameState.Phase)
}

func TestNoTerminalCheckOutsidePlaying(t *testing.T) {
	ecs := entity.NewECS()
	ecs.GameState.Score = 1000
	s := NewStateSystem(ecs, event.NewDispatcher())

	s.Update(16)

	assert.Equal(t, component.StartPhase, ecs.GameState.Phase)
}

func TestSurvivingTowerKeepsGameAlive(t *testing.T) {
	ecs := entity.NewECS()
	a := addTower(ecs, 50, 560, 40)
	addTower(ecs, 400, 560, 80)
	ecs.Towers[a].Destroyed = true
	ecs.GameState.Phase = component.PlayingPhase
	s := NewStateSystem(ecs, event.NewDispatcher())

	s.Update(16)

	assert.Equal(t, component.PlayingPhase, ecs.GameState.Phase)
}
