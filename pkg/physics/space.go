// pkg/physics/space.go
package physics

import "math"

// Dimensions of the toric playfield, in pixels.
const (
	SpaceWidth  = 800.0
	SpaceHeight = 800.0
)

// ToricRemap maps an arbitrary position to canonical toric coordinates in
// [0, SpaceWidth) x [0, SpaceHeight). Things leaving one side of space come
// back on the opposite side.
func ToricRemap(position Vector2D) Vector2D {
	return Vector2D{
		X: wrap(position.X, SpaceWidth),
		Y: wrap(position.Y, SpaceHeight),
	}
}

// wrap computes value modulo bound using floored division, so the result is
// never negative.
func wrap(value, bound float64) float64 {
	r := value - math.Floor(value/bound)*bound
	// value slightly below zero can round up to exactly bound
	if r >= bound {
		r -= bound
	}
	return r
}
