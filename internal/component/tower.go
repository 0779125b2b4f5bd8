// component/tower.go
package component

// Tower is a player-controlled interceptor battery with finite ammo.
type Tower struct {
	Ammo      int
	MaxAmmo   int
	Destroyed bool
}
