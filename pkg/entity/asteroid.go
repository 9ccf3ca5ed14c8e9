// pkg/entity/asteroid.go
package entity

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Asteroid sizes are relative factors; an initial asteroid has size 1.
const (
	InitialAsteroidSize     = 1.0
	MinimalAsteroidSize     = 0.5
	NumberAsteroidFragments = 2
	FragmentRatio           = 0.5
)

// boundingMargin pads bounding circles against rounding in rotated vertices.
const boundingMargin = 1e-6

// ErrInvalidSize is returned when an asteroid is created with a non-positive size.
var ErrInvalidSize = errors.New("asteroid size must be strictly positive")

// Spawner creates asteroids at a given position. Asteroids ask a Spawner
// for their fragments so that the random source stays injectable.
type Spawner interface {
	AsteroidAt(center physics.Vector2D, size float64) *Asteroid
}

// Asteroid is a polygonal body drifting in a straight line while spinning.
// Its shape is stored centred at the origin and never changes; the shape in
// world space is derived from the current angle and position.
type Asteroid struct {
	BaseEntity
	angle           float64
	angularVelocity float64
	shape           physics.Polygon
	size            float64
}

// NewAsteroid creates an asteroid centred on center. velocity is in pixels
// per second, angularVelocity in degrees per second.
func NewAsteroid(center physics.Vector2D, shape physics.Polygon, velocity physics.Vector2D, angularVelocity, size float64) (*Asteroid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("new asteroid with size %v: %w", size, ErrInvalidSize)
	}
	if shape.Len() == 0 {
		return nil, fmt.Errorf("new asteroid: %w", physics.ErrEmptyPolygon)
	}
	return &Asteroid{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: center,
			Velocity: velocity,
		},
		angularVelocity: angularVelocity,
		shape:           shape,
		size:            size,
	}, nil
}

// MustNewAsteroid is like NewAsteroid but panics on invalid arguments.
// It is meant for generators whose output is valid by construction.
func MustNewAsteroid(center physics.Vector2D, shape physics.Polygon, velocity physics.Vector2D, angularVelocity, size float64) *Asteroid {
	a, err := NewAsteroid(center, shape, velocity, angularVelocity, size)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the relative size of the asteroid
func (a *Asteroid) Size() float64 {
	return a.size
}

// Angle returns the accumulated rotation in degrees
func (a *Asteroid) Angle() float64 {
	return a.angle
}

// AngularVelocity returns the spin in degrees per second
func (a *Asteroid) AngularVelocity() float64 {
	return a.angularVelocity
}

// Shape returns the shape at rest, centred at the origin
func (a *Asteroid) Shape() physics.Polygon {
	return a.shape
}

// Update drifts and spins the asteroid over deltaTime seconds
func (a *Asteroid) Update(deltaTime float64) {
	a.move(deltaTime)
	a.Position = physics.ToricRemap(a.Position)
	a.angle += a.angularVelocity * deltaTime
}

// ShapeInWorld returns the asteroid's outline in world coordinates
func (a *Asteroid) ShapeInWorld() physics.Polygon {
	return a.shape.Rotate(a.angle).Translate(a.Position)
}

// BoundingCircle returns a circle enclosing the asteroid at any rotation
func (a *Asteroid) BoundingCircle() physics.Circle {
	return physics.Circle{
		Center: a.Position,
		Radius: a.shape.Radius() + boundingMargin,
	}
}

// Contains reports whether point lies inside the asteroid or on its outline
func (a *Asteroid) Contains(point physics.Vector2D) bool {
	return a.ShapeInWorld().Contains(point)
}

// Fragments returns the asteroids this one breaks into when destroyed.
// Asteroids at or below MinimalAsteroidSize break into nothing. The receiver
// is left untouched; replacing it is up to the caller.
func (a *Asteroid) Fragments(spawner Spawner) []*Asteroid {
	if a.size <= MinimalAsteroidSize {
		return nil
	}
	fragments := make([]*Asteroid, 0, NumberAsteroidFragments)
	for i := 0; i < NumberAsteroidFragments; i++ {
		fragments = append(fragments, spawner.AsteroidAt(a.Position, a.size*FragmentRatio))
	}
	return fragments
}
