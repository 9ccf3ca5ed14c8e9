// pkg/render/engo/assets.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Palette
var (
	backgroundColor    = color.Black
	asteroidFill       = color.RGBA{90, 90, 90, 255}
	asteroidBorder     = color.RGBA{200, 200, 200, 255}
	shipColor          = color.RGBA{255, 255, 255, 255}
	shipShieldedColor  = color.RGBA{120, 170, 255, 255}
	projectileColor    = color.RGBA{255, 255, 0, 255}
	fuelBarColor       = color.RGBA{0, 200, 80, 255}
	livesBarColor      = color.RGBA{220, 40, 40, 255}
	barBackgroundColor = color.RGBA{60, 60, 60, 200}
)

// ProjectileDiameter is the on-screen size of a shot, in world pixels
const ProjectileDiameter = 4.0

// fanTriangles splits a star-shaped outline into triangles sharing center.
// The result is a flat list, three points per triangle, closing the last
// vertex back onto the first.
func fanTriangles(center physics.Vector2D, outline []physics.Vector2D) []physics.Vector2D {
	if len(outline) < 2 {
		return nil
	}
	points := make([]physics.Vector2D, 0, 3*len(outline))
	for i, v := range outline {
		next := outline[(i+1)%len(outline)]
		points = append(points, center, v, next)
	}
	return points
}

// bounds returns the top-left corner and the extent of points
func bounds(points []physics.Vector2D) (origin physics.Vector2D, width, height float64) {
	if len(points) == 0 {
		return physics.Vector2D{}, 0, 0
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi.X - lo.X, hi.Y - lo.Y
}

// normalize maps screen points into the unit square of their bounding box,
// the form common.ComplexTriangles expects. Degenerate extents count as 1.
func normalize(points []physics.Vector2D) (space common.SpaceComponent, normalized []engo.Point) {
	origin, width, height := bounds(points)
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	normalized = make([]engo.Point, len(points))
	for i, p := range points {
		normalized[i] = engo.Point{
			X: float32((p.X - origin.X) / width),
			Y: float32((p.Y - origin.Y) / height),
		}
	}
	space = common.SpaceComponent{
		Position: engo.Point{X: float32(origin.X), Y: float32(origin.Y)},
		Width:    float32(width),
		Height:   float32(height),
	}
	return space, normalized
}

// polygonDrawable builds the drawable and placement of a filled outline
// given in screen coordinates
func polygonDrawable(center physics.Vector2D, outline []physics.Vector2D, border color.Color) (common.Drawable, common.SpaceComponent) {
	space, points := normalize(fanTriangles(center, outline))
	return common.ComplexTriangles{
		Points:      points,
		BorderWidth: 1,
		BorderColor: border,
	}, space
}

// shipColorFor returns the hull colour, tinted while the ship is invulnerable
func shipColorFor(invulnerable bool) color.Color {
	if invulnerable {
		return shipShieldedColor
	}
	return shipColor
}
