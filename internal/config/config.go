// internal/config/config.go
package config

import "image/color"

const (
	ArenaWidth  = 800
	ArenaHeight = 600

	WinScore      = 1000
	PointsPerKill = 20

	// Spawn interval shrinks by SpawnIntervalStep ms for every
	// ScorePerIntervalStep points of score, floored at SpawnIntervalMin.
	SpawnIntervalBase    = 2000
	SpawnIntervalMin     = 500
	SpawnIntervalStep    = 100
	ScorePerIntervalStep = 100

	RocketBaseSpeed         = 0.5
	RocketSpeedJitter       = 0.5
	RocketSpeedScoreDivisor = 2000.0

	// Rocket position converges on the target with remaining-progress
	// compensation; epsilon keeps the divisor away from zero near arrival.
	ProgressEpsilon = 0.01

	InterceptorSpeed = 8.0

	// Structures within this many units of an impact point, per axis, are
	// destroyed.
	ImpactRadius = 10.0

	RocketBlastMaxRadius       = 40.0
	RocketBlastGrowthRate      = 2.0
	InterceptorBlastMaxRadius  = 50.0
	InterceptorBlastGrowthRate = 1.5
	BlastContractionFactor     = 0.5

	// Ground line where towers and cities sit.
	StructureY = 560.0

	// Update deltas are wall-clock milliseconds; a stalled frame must not
	// flood the spawn accumulator.
	MaxDeltaTime = 100.0

	CityHalfWidth  = 16.0
	CityHeight     = 14.0
	TowerHalfWidth = 12.0
	TowerHeight    = 22.0
	RocketTrailLen = 14.0

	ScoreOffsetX = 12
	ScoreOffsetY = 20
	AmmoOffsetY  = 14
)

var (
	BackgroundColor       = color.RGBA{12, 12, 24, 255}
	GroundColor           = color.RGBA{60, 50, 40, 255}
	CityColor             = color.RGBA{70, 130, 180, 255}
	CityRubbleColor       = color.RGBA{55, 50, 48, 255}
	TowerColor            = color.RGBA{50, 205, 50, 255}
	TowerRubbleColor      = color.RGBA{80, 60, 55, 255}
	RocketColor           = color.RGBA{255, 80, 80, 255}
	RocketTrailColor      = color.RGBA{200, 60, 60, 140}
	InterceptorColor      = color.RGBA{120, 200, 255, 255}
	InterceptorTrailColor = color.RGBA{90, 150, 200, 120}
	ExplosionColor        = color.RGBA{255, 200, 60, 110}
	ExplosionRimColor     = color.RGBA{255, 240, 200, 220}
	TextLightColor        = color.RGBA{240, 240, 240, 255}
	OverlayColor          = color.RGBA{0, 0, 0, 160}
	WonTextColor          = color.RGBA{120, 255, 120, 255}
	LostTextColor         = color.RGBA{255, 100, 100, 255}
)
