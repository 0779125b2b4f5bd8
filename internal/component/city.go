// component/city.go
package component

// City is a passive defended structure. Once destroyed it stays destroyed and
// no longer attracts rocket spawns.
type City struct {
	Destroyed bool
}
