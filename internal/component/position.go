// component/position.go
package component

// Position is the current location of an entity in arena coordinates.
type Position struct {
	X, Y float64
}
