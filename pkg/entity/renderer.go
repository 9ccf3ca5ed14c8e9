package entity

// Renderer handles rendering game entities
type Renderer interface {
	RenderShip(ship *Spaceship)
	RenderAsteroid(asteroid *Asteroid)
	RenderProjectile(projectile *Projectile)
	Clear()
	Present()
}
