// pkg/physics/polygon.go
package physics

import (
	"errors"
	"math"
)

// ErrEmptyPolygon is returned when a polygon is built without vertices.
var ErrEmptyPolygon = errors.New("polygon has no vertices")

// boundaryEpsilon is the tolerance used when deciding that a point lies on an edge.
const boundaryEpsilon = 1e-9

// Polygon is an ordered, closed sequence of vertices. Polygons are values:
// Rotate and Translate return new polygons and never alter the receiver.
type Polygon struct {
	vertices []Vector2D
}

// NewPolygon creates a polygon from the given vertices
func NewPolygon(vertices []Vector2D) (Polygon, error) {
	if len(vertices) == 0 {
		return Polygon{}, ErrEmptyPolygon
	}
	return Polygon{vertices: append([]Vector2D(nil), vertices...)}, nil
}

// Vertices returns a copy of the polygon's vertices
func (p Polygon) Vertices() []Vector2D {
	return append([]Vector2D(nil), p.vertices...)
}

// Len returns the number of vertices
func (p Polygon) Len() int {
	return len(p.vertices)
}

// Rotate rotates every vertex around the origin by angle degrees
func (p Polygon) Rotate(degrees float64) Polygon {
	rad := math.Mod(degrees, 360) * math.Pi / 180
	rotated := make([]Vector2D, len(p.vertices))
	for i, v := range p.vertices {
		rotated[i] = v.Rotate(rad)
	}
	return Polygon{vertices: rotated}
}

// Translate moves every vertex by offset
func (p Polygon) Translate(offset Vector2D) Polygon {
	moved := make([]Vector2D, len(p.vertices))
	for i, v := range p.vertices {
		moved[i] = v.Add(offset)
	}
	return Polygon{vertices: moved}
}

// Radius returns the largest distance between the origin and a vertex
func (p Polygon) Radius() float64 {
	var r float64
	for _, v := range p.vertices {
		r = math.Max(r, v.Length())
	}
	return r
}

// Contains reports whether point lies inside the polygon or on its boundary.
// Uses even-odd ray casting, with an explicit edge test so that boundary
// points are always contained.
func (p Polygon) Contains(point Vector2D) bool {
	n := len(p.vertices)
	if n == 0 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.vertices[i], p.vertices[j]
		if onSegment(point, a, b) {
			return true
		}
		if (a.Y > point.Y) != (b.Y > point.Y) {
			crossX := (b.X-a.X)*(point.Y-a.Y)/(b.Y-a.Y) + a.X
			if point.X < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

// onSegment reports whether p lies on the segment [a, b]
func onSegment(p, a, b Vector2D) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	scale := math.Max(1, ab.Length())
	if math.Abs(ab.Cross(ap)) > boundaryEpsilon*scale {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-boundaryEpsilon &&
		p.X <= math.Max(a.X, b.X)+boundaryEpsilon &&
		p.Y >= math.Min(a.Y, b.Y)-boundaryEpsilon &&
		p.Y <= math.Max(a.Y, b.Y)+boundaryEpsilon
}
