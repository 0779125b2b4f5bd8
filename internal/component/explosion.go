// component/explosion.go
package component

// ExplosionPhase is the lifecycle stage of a blast.
type ExplosionPhase int

const (
	Expanding ExplosionPhase = iota
	Contracting
)

// Explosion is a transient area-of-effect blast. It grows to MaxRadius, flips
// to Contracting exactly once, shrinks at half its growth rate, and is removed
// when the radius collapses to zero.
type Explosion struct {
	Radius     float64
	MaxRadius  float64
	GrowthRate float64
	Phase      ExplosionPhase
}
