// pkg/physics/collision.go
package physics

// Circle represents a circular collision shape. Asteroids use it as a
// bounding circle to skip exact polygon tests for distant points.
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles are colliding
func (c Circle) Collides(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// ContainsPoint reports whether point lies inside the circle or on its edge
func (c Circle) ContainsPoint(point Vector2D) bool {
	return c.Center.Sub(point).LengthSquared() <= c.Radius*c.Radius
}
