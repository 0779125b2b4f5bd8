// component/game_state.go
package component

// GamePhase sequences the session: Start -> Playing -> {Won, Lost}, with the
// reset action returning any terminal phase (or Start) to Playing.
type GamePhase int

const (
	StartPhase GamePhase = iota
	PlayingPhase
	WonPhase
	LostPhase
)

// GameState holds session-wide mutable state shared by the systems. Score is
// monotonically non-decreasing within a game and only moves in kill-sized
// increments.
type GameState struct {
	Phase GamePhase
	Score int
}
