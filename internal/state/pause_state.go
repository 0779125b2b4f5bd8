// internal/state/pause_state.go
package state

import (
	"missile-defense/internal/config"
	"missile-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the simulation by not forwarding deltas and dims the
// last frame of the previous state underneath.
type PauseState struct {
	sm            *StateMachine
	previousState State
	overlay       *ui.Overlay
}

func NewPauseState(sm *StateMachine, previousState State) *PauseState {
	return &PauseState{
		sm:            sm,
		previousState: previousState,
		overlay:       ui.NewOverlay(basicfont.Face7x13),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	s.overlay.Draw(screen, "PAUSED", config.TextLightColor, "P OR ESC TO RESUME")
}

func (s *PauseState) Exit() {}
