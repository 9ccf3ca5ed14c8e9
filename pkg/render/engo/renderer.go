// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// SpriteSystem is the part of common.RenderSystem the renderer drives
type SpriteSystem interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

// sprite is one engo entity mirroring a simulation entity
type sprite struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
	seen   bool
}

// EngoRenderer implements entity.Renderer on top of an engo RenderSystem.
// Every frame is bracketed by Clear and Present: entities rendered in
// between are created or updated, and sprites whose entity was not
// rendered are removed from the system on Present.
type EngoRenderer struct {
	system   SpriteSystem
	viewport Viewport
	sprites  map[entity.ID]*sprite
}

// NewEngoRenderer creates a renderer feeding system
func NewEngoRenderer(system SpriteSystem, viewport Viewport) *EngoRenderer {
	return &EngoRenderer{
		system:   system,
		viewport: viewport,
		sprites:  make(map[entity.ID]*sprite),
	}
}

// SpriteCount returns the number of sprites currently in the system
func (r *EngoRenderer) SpriteCount() int {
	return len(r.sprites)
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	for _, s := range r.sprites {
		s.seen = false
	}
}

// Present implements entity.Renderer
func (r *EngoRenderer) Present() {
	for id, s := range r.sprites {
		if !s.seen {
			r.system.Remove(s.basic)
			delete(r.sprites, id)
		}
	}
}

// RenderAsteroid implements entity.Renderer
func (r *EngoRenderer) RenderAsteroid(asteroid *entity.Asteroid) {
	outline := r.viewport.ToScreenAll(asteroid.ShapeInWorld().Vertices())
	drawable, space := polygonDrawable(r.viewport.ToScreen(asteroid.Position), outline, asteroidBorder)
	r.sync(asteroid.GetID(), drawable, space, asteroidFill)
}

// RenderProjectile implements entity.Renderer
func (r *EngoRenderer) RenderProjectile(projectile *entity.Projectile) {
	sx, sy := r.viewport.Scale()
	w, h := ProjectileDiameter*sx, ProjectileDiameter*sy
	center := r.viewport.ToScreen(projectile.Position)
	space := common.SpaceComponent{
		Position: engo.Point{X: float32(center.X - w/2), Y: float32(center.Y - h/2)},
		Width:    float32(w),
		Height:   float32(h),
	}
	r.sync(projectile.GetID(), common.Circle{}, space, projectileColor)
}

// RenderShip implements entity.Renderer
func (r *EngoRenderer) RenderShip(ship *entity.Spaceship) {
	angle := ship.DirectionAngle()
	hull := entity.ContactPoints()
	// the first contact point is the centre, the rest run around the hull
	outline := make([]physics.Vector2D, 0, len(hull)-1)
	for _, p := range hull[1:] {
		outline = append(outline, r.viewport.ToScreen(p.RotateDegrees(angle).Translate(ship.Position)))
	}
	drawable, space := polygonDrawable(r.viewport.ToScreen(ship.Position), outline, shipColor)
	r.sync(ship.GetID(), drawable, space, shipColorFor(ship.IsInvulnerable()))
}

// sync creates or updates the sprite of id
func (r *EngoRenderer) sync(id entity.ID, drawable common.Drawable, space common.SpaceComponent, fill color.Color) {
	s, exists := r.sprites[id]
	if !exists {
		s = &sprite{basic: ecs.NewBasic()}
		r.sprites[id] = s
	}
	s.render.Drawable = drawable
	s.render.Color = fill
	s.space = space
	s.seen = true
	if !exists {
		r.system.Add(&s.basic, &s.render, &s.space)
	}
}
