// internal/ui/overlay.go
package ui

import (
	"image/color"

	"missile-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	titleScale    = 3.0
	subtitleScale = 1.5
)

// Overlay dims the arena and centers a title and a hint line on top of it.
// Used for the start screen and the win/loss screens.
type Overlay struct {
	fontFace font.Face
}

func NewOverlay(fontFace font.Face) *Overlay {
	return &Overlay{fontFace: fontFace}
}

func (o *Overlay) Draw(screen *ebiten.Image, title string, titleColor color.Color, subtitle string) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.ArenaWidth),
		float32(config.ArenaHeight), config.OverlayColor, false)

	o.drawScaled(screen, title, titleScale, titleColor,
		float64(config.ArenaHeight)/2-30)
	if subtitle != "" {
		o.drawScaled(screen, subtitle, subtitleScale, config.TextLightColor,
			float64(config.ArenaHeight)/2+20)
	}
}

func (o *Overlay) drawScaled(screen *ebiten.Image, s string, scale float64, clr color.Color, y float64) {
	bound := text.BoundString(o.fontFace, s)
	x := (float64(config.ArenaWidth) - float64(bound.Dx())*scale) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, o.fontFace, op)
}

// drawPulse renders a small expanding ring, shared by the HUD indicators.
func drawPulse(screen *ebiten.Image, cx, cy, radius float32) {
	vector.StrokeCircle(screen, cx, cy, radius, 1.5, config.TextLightColor, false)
}
