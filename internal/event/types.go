// internal/event/types.go
package event

const (
	RocketLaunched       EventType = "RocketLaunched"       // spawner created a rocket
	RocketImpacted       EventType = "RocketImpacted"       // rocket reached the ground
	RocketIntercepted    EventType = "RocketIntercepted"    // rocket caught in a blast
	InterceptorFired     EventType = "InterceptorFired"     // tower launched an interceptor
	InterceptorDetonated EventType = "InterceptorDetonated" // interceptor reached its mark
	CityDestroyed        EventType = "CityDestroyed"
	TowerDestroyed       EventType = "TowerDestroyed"
	GameWon              EventType = "GameWon"
	GameLost             EventType = "GameLost"
)
