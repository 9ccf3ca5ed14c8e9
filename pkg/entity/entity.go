// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is the base interface for all game objects
type Entity interface {
	GetID() ID
	GetPosition() physics.Vector2D
	Update(deltaTime float64)
	Render(r Renderer)
}

// BaseEntity contains the state shared by all moving bodies
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
	Velocity physics.Vector2D
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// move advances the position by velocity over deltaTime, without wrapping
func (e *BaseEntity) move(deltaTime float64) {
	e.Position = e.Position.Add(e.Velocity.Scale(deltaTime))
}

// Render dispatch for each entity type.

func (a *Asteroid) Render(r Renderer) {
	r.RenderAsteroid(a)
}

func (p *Projectile) Render(r Renderer) {
	r.RenderProjectile(p)
}

func (s *Spaceship) Render(r Renderer) {
	r.RenderShip(s)
}

var nextID atomic.Uint64

// GenerateID returns a process-wide unique entity ID
func GenerateID() ID {
	return ID(nextID.Add(1))
}
