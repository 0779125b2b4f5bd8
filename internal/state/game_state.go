// internal/state/game_state.go
package state

import (
	"missile-defense/internal/app"
	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/event"
	"missile-defense/internal/ui"
	"missile-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// GameState is the playing screen. It feeds frame deltas into the
// simulation, translates clicks into fire requests, and draws the arena from
// the per-frame snapshot. Layout keeps the logical resolution at the arena
// size, so cursor coordinates are already arena coordinates.
type GameState struct {
	sm             *StateMachine
	game           *app.Game
	renderer       *render.ArenaRenderer
	scoreIndicator *ui.ScoreIndicator
	ammoPanel      *ui.AmmoPanel
	overlay        *ui.Overlay
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	face := basicfont.Face7x13
	gs := &GameState{
		sm:             sm,
		game:           game,
		renderer:       render.NewArenaRenderer(),
		scoreIndicator: ui.NewScoreIndicator(face),
		ammoPanel:      ui.NewAmmoPanel(face),
		overlay:        ui.NewOverlay(face),
	}
	game.EventDispatcher.Subscribe(event.RocketIntercepted, gs.scoreIndicator)
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if g.game.Phase() == component.PlayingPhase &&
		(inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch g.game.Phase() {
		case component.PlayingPhase:
			g.game.FireInterceptor(float64(x), float64(y))
		case component.WonPhase, component.LostPhase:
			g.game.Reset()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		switch g.game.Phase() {
		case component.WonPhase, component.LostPhase:
			g.game.Reset()
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.renderer.Draw(screen, snap)
	g.scoreIndicator.Draw(screen, snap.Score)
	g.ammoPanel.Draw(screen, snap)

	switch snap.Phase {
	case component.WonPhase:
		g.overlay.Draw(screen, "GRID DEFENDED", config.WonTextColor,
			"SPACE OR CLICK TO PLAY AGAIN")
	case component.LostPhase:
		g.overlay.Draw(screen, "GRID ELIMINATED", config.LostTextColor,
			"SPACE OR CLICK TO PLAY AGAIN")
	}
}

func (g *GameState) Exit() {}
