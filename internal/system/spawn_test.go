package system

import (
	"testing"

	"missile-defense/internal/entity"
	"missile-defense/internal/event"
	"missile-defense/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnInterval(t *testing.T) {
	cases := []struct {
		score    int
		interval float64
	}{
		{0, 2000},
		{99, 2000},
		{100, 1900},
		{450, 1600},
		{1000, 1000},
		{1500, 500},
		{5000, 500},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.interval, SpawnInterval(tc.score), "score %d", tc.score)
	}
}

func TestSpawnTriggersAfterInterval(t *testing.T) {
	ecs := entity.NewECS()
	addCity(ecs, 300, 560)
	s := NewSpawnSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(42))

	s.Update(1999)
	assert.Empty(t, ecs.Rockets, "no spawn before the interval elapses")

	s.Update(2)
	require.Len(t, ecs.Rockets, 1)

	for id, rocket := range ecs.Rockets {
		pos := ecs.Positions[id]
		require.NotNil(t, pos)
		assert.Equal(t, 0.0, pos.Y, "rockets enter at the top edge")
		assert.GreaterOrEqual(t, pos.X, 0.0)
		assert.Less(t, pos.X, 800.0)
		assert.Equal(t, 300.0, rocket.TargetX)
		assert.Equal(t, 560.0, rocket.TargetY)
		assert.GreaterOrEqual(t, rocket.Speed, 0.5)
		assert.Less(t, rocket.Speed, 1.0, "no score, so no score scaling")
	}
}

func TestSpawnTargetsOnlySurvivors(t *testing.T) {
	ecs := entity.NewECS()
	cityID := addCity(ecs, 300, 560)
	addTower(ecs, 700, 560, 10)
	ecs.Cities[cityID].Destroyed = true
	s := NewSpawnSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(42))

	for i := 0; i < 5; i++ {
		s.Update(2000)
	}

	require.NotEmpty(t, ecs.Rockets)
	for _, rocket := range ecs.Rockets {
		assert.Equal(t, 700.0, rocket.TargetX, "destroyed city must not be targeted")
	}
}

func TestSpawnSkipsWithNoTargets(t *testing.T) {
	ecs := entity.NewECS()
	cityID := addCity(ecs, 300, 560)
	towerID := addTower(ecs, 700, 560, 10)
	ecs.Cities[cityID].Destroyed = true
	ecs.Towers[towerID].Destroyed = true
	s := NewSpawnSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(42))

	s.Update(5000)

	assert.Empty(t, ecs.Rockets)
}

func TestSpawnSpeedScalesWithScore(t *testing.T) {
	ecs := entity.NewECS()
	addCity(ecs, 300, 560)
	ecs.GameState.Score = 1000
	s := NewSpawnSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(42))

	s.Update(2000)

	require.Len(t, ecs.Rockets, 1)
	for _, rocket := range ecs.Rockets {
		assert.GreaterOrEqual(t, rocket.Speed, 1.0, "score 1000 adds 0.5 speed")
		assert.Less(t, rocket.Speed, 1.5)
	}
}

func TestSpawnDeterministicUnderSeed(t *testing.T) {
	run := func() (x, speed, targetX float64) {
		ecs := entity.NewECS()
		addCity(ecs, 200, 560)
		addCity(ecs, 600, 560)
		s := NewSpawnSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(99))
		s.Update(2000)
		for id, rocket := range ecs.Rockets {
			return ecs.Positions[id].X, rocket.Speed, rocket.TargetX
		}
		return 0, 0, 0
	}

	x1, speed1, t1 := run()
	x2, speed2, t2 := run()
	assert.Equal(t, x1, x2)
	assert.Equal(t, speed1, speed2)
	assert.Equal(t, t1, t2)
}

func TestSpawnDispatchesLaunchEvent(t *testing.T) {
	ecs := entity.NewECS()
	addCity(ecs, 300, 560)
	dispatcher := event.NewDispatcher()
	r := &recorder{}
	dispatcher.Subscribe(event.RocketLaunched, r)
	s := NewSpawnSystem(ecs, dispatcher, utils.NewPRNGService(42))

	s.Update(2000)

	assert.Equal(t, 1, r.count(event.RocketLaunched))
}
