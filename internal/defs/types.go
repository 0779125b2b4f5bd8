// internal/defs/types.go
package defs

// TowerDefinition places one interceptor battery.
type TowerDefinition struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Ammo int     `json:"ammo"`
}

// CityDefinition places one defended city.
type CityDefinition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout is the defense grid created at game start and on every reset.
type Layout struct {
	Towers []TowerDefinition `json:"towers"`
	Cities []CityDefinition  `json:"cities"`
}
