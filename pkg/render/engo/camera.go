// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Viewport scales the toric world onto the window. The whole world is
// always visible, so there is nothing to follow or zoom.
type Viewport struct {
	scaleX float64
	scaleY float64
}

// NewViewport fits the world into a window of the given size. Non-positive
// sizes fall back to the world size.
func NewViewport(width, height int) Viewport {
	v := Viewport{scaleX: 1, scaleY: 1}
	if width > 0 {
		v.scaleX = float64(width) / physics.SpaceWidth
	}
	if height > 0 {
		v.scaleY = float64(height) / physics.SpaceHeight
	}
	return v
}

// Scale returns the horizontal and vertical scale factors
func (v Viewport) Scale() (float64, float64) {
	return v.scaleX, v.scaleY
}

// ToScreen converts a world position to window coordinates
func (v Viewport) ToScreen(pos physics.Vector2D) physics.Vector2D {
	return physics.Vector2D{X: pos.X * v.scaleX, Y: pos.Y * v.scaleY}
}

// ToScreenAll converts a list of world positions
func (v Viewport) ToScreenAll(points []physics.Vector2D) []physics.Vector2D {
	out := make([]physics.Vector2D, len(points))
	for i, p := range points {
		out[i] = v.ToScreen(p)
	}
	return out
}

// Point converts a world position to an engo point
func (v Viewport) Point(pos physics.Vector2D) engo.Point {
	s := v.ToScreen(pos)
	return engo.Point{X: float32(s.X), Y: float32(s.Y)}
}
