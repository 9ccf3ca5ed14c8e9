// pkg/entity/projectile.go
package entity

import (
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// ProjectileLifetime is how long a projectile flies, in seconds
const ProjectileLifetime = 1.25

// Projectile is a point-like shot fired by the spaceship
type Projectile struct {
	BaseEntity
	RemainingLife float64
}

// NewProjectile creates a projectile with a full lifetime
func NewProjectile(position, velocity physics.Vector2D) *Projectile {
	return &Projectile{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: position,
			Velocity: velocity,
		},
		RemainingLife: ProjectileLifetime,
	}
}

// Update moves the projectile and ages it. Projectiles are not wrapped
// around the toric space; they simply fly off and expire.
func (p *Projectile) Update(deltaTime float64) {
	p.move(deltaTime)
	p.RemainingLife -= deltaTime
}

// IsExpired reports whether the projectile has lived its full lifetime
func (p *Projectile) IsExpired() bool {
	return p.RemainingLife <= 0
}

// Collides reports whether the projectile is inside the asteroid
func (p *Projectile) Collides(asteroid *Asteroid) bool {
	if !asteroid.BoundingCircle().ContainsPoint(p.Position) {
		return false
	}
	return asteroid.Contains(p.Position)
}
