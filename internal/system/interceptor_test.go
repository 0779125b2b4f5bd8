package system

import (
	"testing"

	"missile-defense/internal/component"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterceptorMovesLinearly(t *testing.T) {
	ecs := entity.NewECS()
	id := addInterceptor(ecs, 0, 0, 100, 0, 8)
	s := NewInterceptorSystem(ecs, event.NewDispatcher())

	s.Update(16)

	in := ecs.Interceptors[id]
	require.NotNil(t, in)
	assert.InDelta(t, 0.08, in.Progress, 1e-9)
	pos := ecs.Positions[id]
	assert.InDelta(t, 8.0, pos.X, 1e-9)
	assert.InDelta(t, 0.0, pos.Y, 1e-9)
}

func TestInterceptorProgressMonotonicAndBounded(t *testing.T) {
	ecs := entity.NewECS()
	id := addInterceptor(ecs, 400, 560, 400, 100, 8)
	s := NewInterceptorSystem(ecs, event.NewDispatcher())

	last := 0.0
	for i := 0; i < 100; i++ {
		s.Update(16)
		in, alive := ecs.Interceptors[id]
		if !alive {
			return
		}
		assert.GreaterOrEqual(t, in.Progress, last)
		assert.LessOrEqual(t, in.Progress, 1.0)
		last = in.Progress
	}
	t.Fatal("interceptor never detonated")
}

func TestInterceptorDetonatesAtTarget(t *testing.T) {
	ecs := entity.NewECS()
	id := addInterceptor(ecs, 400, 560, 400, 300, 8)
	ecs.Interceptors[id].Progress = 0.99

	dispatcher := event.NewDispatcher()
	r := &recorder{}
	dispatcher.Subscribe(event.InterceptorDetonated, r)
	s := NewInterceptorSystem(ecs, dispatcher)

	s.Update(16)

	assert.NotContains(t, ecs.Interceptors, id)
	assert.Equal(t, 1, r.count(event.InterceptorDetonated))
	require.Len(t, ecs.Explosions, 1)
	for exID, ex := range ecs.Explosions {
		assert.Equal(t, 50.0, ex.MaxRadius)
		assert.Equal(t, 1.5, ex.GrowthRate)
		assert.Equal(t, component.Expanding, ex.Phase)
		pos := ecs.Positions[exID]
		assert.Equal(t, 400.0, pos.X)
		assert.Equal(t, 300.0, pos.Y)
	}
}

func TestInterceptorZeroDistanceIsImmediateArrival(t *testing.T) {
	ecs := entity.NewECS()
	id := addInterceptor(ecs, 400, 560, 400, 560, 8)
	s := NewInterceptorSystem(ecs, event.NewDispatcher())

	s.Update(16)

	assert.NotContains(t, ecs.Interceptors, id)
	assert.Len(t, ecs.Explosions, 1)
}
