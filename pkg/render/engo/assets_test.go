package engo

import (
	"testing"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func TestFanTriangles(t *testing.T) {
	center := physics.Vector2D{X: 5, Y: 5}
	outline := []physics.Vector2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	points := fanTriangles(center, outline)

	if len(points) != 3*len(outline) {
		t.Fatalf("fanTriangles() returned %d points, expected %d", len(points), 3*len(outline))
	}
	for i := range outline {
		tri := points[3*i : 3*i+3]
		if tri[0] != center {
			t.Errorf("triangle %d does not start at the centre: %v", i, tri[0])
		}
		if tri[1] != outline[i] || tri[2] != outline[(i+1)%len(outline)] {
			t.Errorf("triangle %d = %v, expected edge %v-%v", i, tri, outline[i], outline[(i+1)%len(outline)])
		}
	}
}

func TestFanTriangles_DegenerateOutline(t *testing.T) {
	if got := fanTriangles(physics.Vector2D{}, []physics.Vector2D{{X: 1, Y: 1}}); got != nil {
		t.Errorf("fanTriangles() with one vertex = %v, expected nil", got)
	}
}

func TestBounds(t *testing.T) {
	origin, width, height := bounds([]physics.Vector2D{{X: 1, Y: 2}, {X: 5, Y: -1}, {X: 3, Y: 4}})

	if origin != (physics.Vector2D{X: 1, Y: -1}) {
		t.Errorf("origin = %v, expected (1, -1)", origin)
	}
	if width != 4 || height != 5 {
		t.Errorf("extent = %vx%v, expected 4x5", width, height)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name           string
		points         []physics.Vector2D
		expectedPos    engo.Point
		expectedWidth  float32
		expectedHeight float32
		expected       []engo.Point
	}{
		{
			name:           "triangle",
			points:         []physics.Vector2D{{X: 10, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 60}},
			expectedPos:    engo.Point{X: 10, Y: 20},
			expectedWidth:  20,
			expectedHeight: 40,
			expected:       []engo.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		},
		{
			name:           "flat",
			points:         []physics.Vector2D{{X: 0, Y: 5}, {X: 10, Y: 5}},
			expectedPos:    engo.Point{X: 0, Y: 5},
			expectedWidth:  10,
			expectedHeight: 1,
			expected:       []engo.Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			space, points := normalize(tt.points)

			if space.Position != tt.expectedPos {
				t.Errorf("Position = %v, expected %v", space.Position, tt.expectedPos)
			}
			if space.Width != tt.expectedWidth || space.Height != tt.expectedHeight {
				t.Errorf("size = %vx%v, expected %vx%v", space.Width, space.Height, tt.expectedWidth, tt.expectedHeight)
			}
			if len(points) != len(tt.expected) {
				t.Fatalf("got %d points, expected %d", len(points), len(tt.expected))
			}
			for i := range points {
				if points[i] != tt.expected[i] {
					t.Errorf("point %d = %v, expected %v", i, points[i], tt.expected[i])
				}
			}
		})
	}
}

func TestShipColorFor(t *testing.T) {
	if shipColorFor(true) != shipShieldedColor {
		t.Error("invulnerable ship should use the shielded colour")
	}
	if shipColorFor(false) != shipColor {
		t.Error("vulnerable ship should use the plain colour")
	}
}
