// internal/ui/score_indicator.go
package ui

import (
	"fmt"
	"math"
	"time"

	"missile-defense/internal/config"
	"missile-defense/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScoreIndicator shows the current score in the top-left corner and pulses
// briefly after every kill. It subscribes to RocketIntercepted.
type ScoreIndicator struct {
	fontFace     font.Face
	lastKillTime time.Time
}

func NewScoreIndicator(fontFace font.Face) *ScoreIndicator {
	return &ScoreIndicator{fontFace: fontFace}
}

// OnEvent implements event.Listener.
func (i *ScoreIndicator) OnEvent(e event.Event) {
	if e.Type == event.RocketIntercepted {
		i.lastKillTime = time.Now()
	}
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image, score int) {
	label := fmt.Sprintf("SCORE %04d", score)
	text.Draw(screen, label, i.fontFace, config.ScoreOffsetX, config.ScoreOffsetY,
		config.TextLightColor)

	if i.lastKillTime.IsZero() {
		return
	}
	elapsed := time.Since(i.lastKillTime).Seconds()
	scale := 0.3 * math.Exp(-elapsed*8)
	if scale < 0.01 {
		return
	}
	bound := text.BoundString(i.fontFace, label)
	cx := float32(config.ScoreOffsetX + bound.Dx() + 14)
	cy := float32(config.ScoreOffsetY - 4)
	drawPulse(screen, cx, cy, float32(4*(1+scale)))
}
