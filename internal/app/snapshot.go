// internal/app/snapshot.go
package app

import (
	"missile-defense/internal/component"
	"missile-defense/internal/entity"
	"missile-defense/internal/types"
)

// Snapshot is the read-only view the renderer and HUD consume each frame.
// Everything is copied out of the registry; mutating a snapshot has no effect
// on the simulation.
type Snapshot struct {
	Score        int
	Phase        component.GamePhase
	Rockets      []RocketView
	Interceptors []InterceptorView
	Explosions   []ExplosionView
	Towers       []TowerView
	Cities       []CityView
}

type RocketView struct {
	ID      types.EntityID
	X, Y    float64
	TargetX float64
	TargetY float64
}

type InterceptorView struct {
	ID     types.EntityID
	X, Y   float64
	StartX float64
	StartY float64
}

type ExplosionView struct {
	X, Y   float64
	Radius float64
	Phase  component.ExplosionPhase
}

type TowerView struct {
	X, Y      float64
	Ammo      int
	MaxAmmo   int
	Destroyed bool
}

type CityView struct {
	X, Y      float64
	Destroyed bool
}

// Snapshot copies the current registry contents in registration order.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Score: g.ECS.GameState.Score,
		Phase: g.ECS.GameState.Phase,
	}
	for _, id := range entity.SortedIDs(g.ECS.Rockets) {
		r := g.ECS.Rockets[id]
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		snap.Rockets = append(snap.Rockets, RocketView{
			ID: id, X: pos.X, Y: pos.Y, TargetX: r.TargetX, TargetY: r.TargetY,
		})
	}
	for _, id := range entity.SortedIDs(g.ECS.Interceptors) {
		in := g.ECS.Interceptors[id]
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		snap.Interceptors = append(snap.Interceptors, InterceptorView{
			ID: id, X: pos.X, Y: pos.Y, StartX: in.StartX, StartY: in.StartY,
		})
	}
	for _, id := range entity.SortedIDs(g.ECS.Explosions) {
		ex := g.ECS.Explosions[id]
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		snap.Explosions = append(snap.Explosions, ExplosionView{
			X: pos.X, Y: pos.Y, Radius: ex.Radius, Phase: ex.Phase,
		})
	}
	for _, id := range entity.SortedIDs(g.ECS.Towers) {
		t := g.ECS.Towers[id]
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		snap.Towers = append(snap.Towers, TowerView{
			X: pos.X, Y: pos.Y, Ammo: t.Ammo, MaxAmmo: t.MaxAmmo, Destroyed: t.Destroyed,
		})
	}
	for _, id := range entity.SortedIDs(g.ECS.Cities) {
		c := g.ECS.Cities[id]
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		snap.Cities = append(snap.Cities, CityView{
			X: pos.X, Y: pos.Y, Destroyed: c.Destroyed,
		})
	}
	return snap
}
