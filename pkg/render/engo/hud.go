// pkg/render/engo/hud.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/entity"
)

// HUD layout, in window pixels
const (
	hudMargin    = 10
	hudBarWidth  = 150
	hudBarHeight = 8
	hudBarGap    = 6
	hudZIndex    = 100
)

// ShipSource gives the HUD access to the player's ship
type ShipSource interface {
	Spaceship() *entity.Spaceship
}

// bar is a gauge drawn as a filled rectangle over a dim background
type bar struct {
	back sprite
	fill sprite
}

func newBar(system SpriteSystem, y float32, fill color.Color) *bar {
	b := &bar{}
	for _, s := range []*sprite{&b.back, &b.fill} {
		s.basic = ecs.NewBasic()
		s.render.Drawable = common.Rectangle{}
		s.render.SetShader(common.HUDShader)
		s.space = common.SpaceComponent{
			Position: engo.Point{X: hudMargin, Y: y},
			Width:    hudBarWidth,
			Height:   hudBarHeight,
		}
	}
	b.back.render.Color = barBackgroundColor
	b.back.render.SetZIndex(hudZIndex)
	b.fill.render.Color = fill
	b.fill.render.SetZIndex(hudZIndex + 1)
	system.Add(&b.back.basic, &b.back.render, &b.back.space)
	system.Add(&b.fill.basic, &b.fill.render, &b.fill.space)
	return b
}

func (b *bar) set(fraction float64) {
	b.fill.space.Width = barLength(fraction, hudBarWidth)
}

func (b *bar) remove(system SpriteSystem) {
	system.Remove(b.back.basic)
	system.Remove(b.fill.basic)
}

// barLength returns the filled part of a gauge of length full
func barLength(fraction float64, full float32) float32 {
	switch {
	case fraction <= 0:
		return 0
	case fraction >= 1:
		return full
	default:
		return float32(fraction) * full
	}
}

// HUDSystem draws the fuel and lives gauges
type HUDSystem struct {
	source ShipSource
	system SpriteSystem
	fuel   *bar
	lives  *bar
}

// NewHUDSystem creates the gauges and adds them to system
func NewHUDSystem(source ShipSource, system SpriteSystem) *HUDSystem {
	return &HUDSystem{
		source: source,
		system: system,
		fuel:   newBar(system, hudMargin, fuelBarColor),
		lives:  newBar(system, hudMargin+hudBarHeight+hudBarGap, livesBarColor),
	}
}

// Add satisfies the ecs.System interface
func (hud *HUDSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for HUD system
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {
	// Not used for HUD system
}

// Update resizes the gauges to the ship's state
func (hud *HUDSystem) Update(dt float32) {
	fuel, lives := gaugeFractions(hud.source.Spaceship())
	hud.fuel.set(fuel)
	hud.lives.set(lives)
}

// Close removes the gauges from the render system
func (hud *HUDSystem) Close() {
	hud.fuel.remove(hud.system)
	hud.lives.remove(hud.system)
}

// gaugeFractions returns the fuel and lives left as fractions of their maximum
func gaugeFractions(ship *entity.Spaceship) (fuel, lives float64) {
	if ship == nil {
		return 0, 0
	}
	return ship.FuelPercentage() / 100, float64(ship.Lives()) / entity.InitialLives
}
