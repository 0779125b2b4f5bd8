// pkg/render/arena_renderer.go
package render

import (
	"math"

	"missile-defense/internal/app"
	"missile-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ArenaRenderer draws one frame of the arena from a registry snapshot. It
// never touches the registry itself.
type ArenaRenderer struct {
	width  int
	height int
}

func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{
		width:  config.ArenaWidth,
		height: config.ArenaHeight,
	}
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(config.BackgroundColor)

	groundTop := float32(config.StructureY + 6)
	vector.DrawFilledRect(screen, 0, groundTop, float32(r.width),
		float32(r.height)-groundTop, config.GroundColor, false)

	for _, city := range snap.Cities {
		r.drawCity(screen, city)
	}
	for _, tower := range snap.Towers {
		r.drawTower(screen, tower)
	}
	for _, rocket := range snap.Rockets {
		r.drawRocket(screen, rocket)
	}
	for _, in := range snap.Interceptors {
		r.drawInterceptor(screen, in)
	}
	for _, ex := range snap.Explosions {
		r.drawExplosion(screen, ex)
	}
}

func (r *ArenaRenderer) drawCity(screen *ebiten.Image, city app.CityView) {
	x := float32(city.X - config.CityHalfWidth)
	w := float32(config.CityHalfWidth * 2)
	if city.Destroyed {
		vector.DrawFilledRect(screen, x, float32(city.Y-4), w, 4,
			config.CityRubbleColor, false)
		return
	}
	vector.DrawFilledRect(screen, x, float32(city.Y-config.CityHeight), w,
		float32(config.CityHeight), config.CityColor, false)
}

func (r *ArenaRenderer) drawTower(screen *ebiten.Image, tower app.TowerView) {
	x := float32(tower.X - config.TowerHalfWidth)
	w := float32(config.TowerHalfWidth * 2)
	if tower.Destroyed {
		vector.DrawFilledRect(screen, x, float32(tower.Y-6), w, 6,
			config.TowerRubbleColor, false)
		return
	}
	vector.DrawFilledRect(screen, x, float32(tower.Y-config.TowerHeight), w,
		float32(config.TowerHeight), config.TowerColor, false)
	vector.StrokeLine(screen, float32(tower.X), float32(tower.Y-config.TowerHeight),
		float32(tower.X), float32(tower.Y-config.TowerHeight-8), 2,
		config.TowerColor, false)
}

func (r *ArenaRenderer) drawRocket(screen *ebiten.Image, rocket app.RocketView) {
	dx := rocket.TargetX - rocket.X
	dy := rocket.TargetY - rocket.Y
	length := math.Hypot(dx, dy)
	if length > 0 {
		tx := rocket.X - dx/length*config.RocketTrailLen
		ty := rocket.Y - dy/length*config.RocketTrailLen
		vector.StrokeLine(screen, float32(tx), float32(ty),
			float32(rocket.X), float32(rocket.Y), 2, config.RocketTrailColor, false)
	}
	vector.DrawFilledCircle(screen, float32(rocket.X), float32(rocket.Y), 2.5,
		config.RocketColor, false)
}

func (r *ArenaRenderer) drawInterceptor(screen *ebiten.Image, in app.InterceptorView) {
	vector.StrokeLine(screen, float32(in.StartX), float32(in.StartY),
		float32(in.X), float32(in.Y), 1, config.InterceptorTrailColor, false)
	vector.DrawFilledCircle(screen, float32(in.X), float32(in.Y), 2,
		config.InterceptorColor, false)
}

func (r *ArenaRenderer) drawExplosion(screen *ebiten.Image, ex app.ExplosionView) {
	if ex.Radius <= 0 {
		return
	}
	vector.DrawFilledCircle(screen, float32(ex.X), float32(ex.Y),
		float32(ex.Radius), config.ExplosionColor, false)
	vector.StrokeCircle(screen, float32(ex.X), float32(ex.Y),
		float32(ex.Radius), 1.5, config.ExplosionRimColor, false)
}
