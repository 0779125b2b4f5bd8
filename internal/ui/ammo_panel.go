// internal/ui/ammo_panel.go
package ui

import (
	"fmt"

	"missile-defense/internal/app"
	"missile-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// AmmoPanel writes each tower's remaining ammo under its base. A destroyed
// tower reads X.
type AmmoPanel struct {
	fontFace font.Face
}

func NewAmmoPanel(fontFace font.Face) *AmmoPanel {
	return &AmmoPanel{fontFace: fontFace}
}

func (p *AmmoPanel) Draw(screen *ebiten.Image, snap app.Snapshot) {
	for _, tower := range snap.Towers {
		label := fmt.Sprintf("%d", tower.Ammo)
		if tower.Destroyed {
			label = "X"
		}
		bound := text.BoundString(p.fontFace, label)
		x := int(tower.X) - bound.Dx()/2
		y := int(tower.Y) + config.AmmoOffsetY
		text.Draw(screen, label, p.fontFace, x, y, config.TextLightColor)
	}
}
