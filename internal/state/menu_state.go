// internal/state/menu_state.go
package state

import (
	"missile-defense/internal/app"
	"missile-defense/internal/config"
	"missile-defense/internal/ui"
	"missile-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// MenuState is the start screen. The arena is drawn idle behind the title;
// space or a click starts the game.
type MenuState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.ArenaRenderer
	overlay  *ui.Overlay
}

func NewMenuState(sm *StateMachine, game *app.Game) *MenuState {
	return &MenuState{
		sm:       sm,
		game:     game,
		renderer: render.NewArenaRenderer(),
		overlay:  ui.NewOverlay(basicfont.Face7x13),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.game.Reset()
		m.sm.SetState(NewGameState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.renderer.Draw(screen, m.game.Snapshot())
	m.overlay.Draw(screen, "MISSILE DEFENSE", config.TextLightColor,
		"SPACE OR CLICK TO START")
}

func (m *MenuState) Exit() {}
