// internal/app/game.go
package app

import (
	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/defs"
	"missile-defense/internal/entity"
	"missile-defense/internal/event"
	"missile-defense/internal/system"
	"missile-defense/internal/types"
	"missile-defense/internal/utils"
	"missile-defense/pkg/geom"
)

// Game owns the entity registry and the simulation systems for one session.
// The host clock drives it through Update once per frame; the input layer
// calls FireInterceptor with arena coordinates; the renderer reads Snapshot.
// All mutation happens synchronously inside a single pass.
type Game struct {
	ECS               *entity.ECS
	Layout            defs.Layout
	SpawnSystem       *system.SpawnSystem
	RocketSystem      *system.RocketSystem
	InterceptorSystem *system.InterceptorSystem
	ExplosionSystem   *system.ExplosionSystem
	StateSystem       *system.StateSystem
	EventDispatcher   *event.Dispatcher
	Rng               *utils.PRNGService

	gameTime float64
}

// NewGame builds a session in the start phase. The defense grid is laid out
// immediately so the menu can show the arena; the simulation does not run
// until Reset switches the phase to playing.
func NewGame(layout defs.Layout, seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	g := &Game{
		ECS:               ecs,
		Layout:            layout,
		SpawnSystem:       system.NewSpawnSystem(ecs, eventDispatcher, rng),
		RocketSystem:      system.NewRocketSystem(ecs, eventDispatcher),
		InterceptorSystem: system.NewInterceptorSystem(ecs, eventDispatcher),
		ExplosionSystem:   system.NewExplosionSystem(ecs, eventDispatcher),
		StateSystem:       system.NewStateSystem(ecs, eventDispatcher),
		EventDispatcher:   eventDispatcher,
		Rng:               rng,
	}
	g.buildStructures()
	return g
}

// Update advances the simulation by one frame. deltaTime is wall-clock
// milliseconds since the previous call; negative deltas count as zero and
// oversized ones are clamped. The pass order is fixed: spawn, rockets,
// interceptors, explosions, then the terminal check, so the check always
// sees the current tick's kills.
func (g *Game) Update(deltaTime float64) {
	if g.ECS.GameState.Phase != component.PlayingPhase {
		return
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.SpawnSystem.Update(deltaTime)
	g.RocketSystem.Update(deltaTime)
	g.InterceptorSystem.Update(deltaTime)
	g.ExplosionSystem.Update(deltaTime)
	g.StateSystem.Update(deltaTime)
}

// FireInterceptor launches an interceptor from the closest surviving tower
// with ammo toward the given arena point. Outside the playing phase, or with
// no eligible tower, the request is dropped with no state change. Ties on
// distance go to the first tower in registration order.
func (g *Game) FireInterceptor(targetX, targetY float64) {
	if g.ECS.GameState.Phase != component.PlayingPhase {
		return
	}

	var bestID types.EntityID
	bestDist := -1.0
	target := geom.Point{X: targetX, Y: targetY}
	for _, id := range entity.SortedIDs(g.ECS.Towers) {
		tower := g.ECS.Towers[id]
		if tower.Destroyed || tower.Ammo <= 0 {
			continue
		}
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		d := geom.Dist(geom.Point{X: pos.X, Y: pos.Y}, target)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			bestID = id
		}
	}
	if bestID == 0 {
		return
	}

	tower := g.ECS.Towers[bestID]
	towerPos := g.ECS.Positions[bestID]
	tower.Ammo--

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	g.ECS.Interceptors[id] = &component.Interceptor{
		StartX:  towerPos.X,
		StartY:  towerPos.Y,
		TargetX: targetX,
		TargetY: targetY,
		Speed:   config.InterceptorSpeed,
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.InterceptorFired, Data: id})
}

// Reset starts a new game: fresh towers and cities from the layout, all
// projectiles and blasts cleared, score zeroed, phase set to playing. Legal
// from the start phase and from either terminal phase.
func (g *Game) Reset() {
	clear(g.ECS.Positions)
	clear(g.ECS.Rockets)
	clear(g.ECS.Interceptors)
	clear(g.ECS.Explosions)
	clear(g.ECS.Cities)
	clear(g.ECS.Towers)
	g.ECS.NextID = 1
	g.ECS.GameState.Score = 0
	g.ECS.GameState.Phase = component.PlayingPhase
	g.ECS.GameTime = 0
	g.gameTime = 0
	g.SpawnSystem.Reset()
	g.buildStructures()
}

// buildStructures creates the towers and cities from the layout. Towers are
// registered before cities so the nearest-tower tie-break follows layout
// order.
func (g *Game) buildStructures() {
	for _, def := range g.Layout.Towers {
		id := g.ECS.NewEntity()
		g.ECS.Positions[id] = &component.Position{X: def.X, Y: def.Y}
		g.ECS.Towers[id] = &component.Tower{Ammo: def.Ammo, MaxAmmo: def.Ammo}
	}
	for _, def := range g.Layout.Cities {
		id := g.ECS.NewEntity()
		g.ECS.Positions[id] = &component.Position{X: def.X, Y: def.Y}
		g.ECS.Cities[id] = &component.City{}
	}
}

// Score is monotonically non-decreasing within a game.
func (g *Game) Score() int {
	return g.ECS.GameState.Score
}

func (g *Game) Phase() component.GamePhase {
	return g.ECS.GameState.Phase
}

func (g *Game) GameTime() float64 {
	return g.gameTime
}
