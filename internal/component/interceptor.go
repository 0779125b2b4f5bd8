// component/interceptor.go
package component

// Interceptor is a player-fired projectile travelling in a straight line from
// its launching tower to the chosen detonation point. Progress is normalized
// to [0, 1] over the full path.
type Interceptor struct {
	StartX   float64
	StartY   float64
	TargetX  float64
	TargetY  float64
	Speed    float64
	Progress float64
}
