// component/rocket.go
package component

// Rocket is an enemy projectile falling from the top edge toward a ground
// structure. Progress is unbounded; arrival is decided by the Y coordinate.
type Rocket struct {
	TargetX  float64
	TargetY  float64
	Speed    float64
	Progress float64
}
