// cmd/game/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"missile-defense/internal/app"
	"missile-defense/internal/config"
	"missile-defense/internal/defs"
	"missile-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagSeed       int64
	flagLayout     string
	flagFullscreen bool
)

var rootCmd = &cobra.Command{
	Use:   "missile-defense",
	Short: "Arcade rocket defense",
	Long: `Missile Defense is a real-time arcade defense game: rockets fall toward
your cities and towers, and you fire interceptors to blast them out of the sky
before the grid is eliminated.`,
	RunE:          runGame,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed, 0 uses the current time")
	rootCmd.Flags().StringVar(&flagLayout, "layout", "", "path to a battery layout JSON file")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "start in fullscreen")
}

// AppGame adapts the state machine to the ebiten game loop and converts the
// wall clock into per-frame millisecond deltas.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds() * 1000
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ArenaWidth, config.ArenaHeight
}

func runGame(cmd *cobra.Command, args []string) error {
	layout, err := loadLayout()
	if err != nil {
		return err
	}

	game := app.NewGame(layout, flagSeed)
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, game))

	ebiten.SetWindowSize(config.ArenaWidth, config.ArenaHeight)
	ebiten.SetWindowTitle("Missile Defense")
	ebiten.SetFullscreen(flagFullscreen)
	return ebiten.RunGame(&AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	})
}

func loadLayout() (defs.Layout, error) {
	if flagLayout != "" {
		return defs.LoadLayout(flagLayout)
	}
	return defs.DefaultLayout()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
