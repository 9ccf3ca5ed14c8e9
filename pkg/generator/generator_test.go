package generator

import (
	"math"
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func TestRandomGenerator_Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 20; i++ {
		x, y := a.Asteroid(entity.InitialAsteroidSize), b.Asteroid(entity.InitialAsteroidSize)
		if x.Position != y.Position || x.Velocity != y.Velocity || x.AngularVelocity() != y.AngularVelocity() {
			t.Fatalf("asteroid %d differs between generators with the same seed", i)
		}
		xv, yv := x.Shape().Vertices(), y.Shape().Vertices()
		if len(xv) != len(yv) {
			t.Fatalf("asteroid %d: %d vs %d vertices", i, len(xv), len(yv))
		}
		for j := range xv {
			if xv[j] != yv[j] {
				t.Fatalf("asteroid %d vertex %d: %v vs %v", i, j, xv[j], yv[j])
			}
		}
	}
}

func TestRandomGenerator_SeedsDiffer(t *testing.T) {
	if New(1).Position() == New(2).Position() {
		t.Error("different seeds produced the same first position")
	}
}

func TestRandomGenerator_PositionInSpace(t *testing.T) {
	g := New(7)
	for i := 0; i < 1000; i++ {
		p := g.Position()
		if p.X < 0 || p.X >= physics.SpaceWidth || p.Y < 0 || p.Y >= physics.SpaceHeight {
			t.Fatalf("Position() = %v outside space", p)
		}
	}
}

func TestRandomGenerator_AsteroidRanges(t *testing.T) {
	tests := []struct {
		name string
		size float64
	}{
		{"initial", entity.InitialAsteroidSize},
		{"fragment", entity.InitialAsteroidSize * entity.FragmentRatio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(2024)
			for i := 0; i < 200; i++ {
				a := g.Asteroid(tt.size)

				if a.Size() != tt.size {
					t.Fatalf("Size() = %v, expected %v", a.Size(), tt.size)
				}
				if n := a.Shape().Len(); n < MinVertices || n > MaxVertices {
					t.Fatalf("shape has %d vertices", n)
				}
				maxRadius := BaseRadius * tt.size * (1 + RadiusJitter)
				minRadius := BaseRadius * tt.size * (1 - RadiusJitter)
				for _, v := range a.Shape().Vertices() {
					if r := v.Length(); r < minRadius-1e-9 || r > maxRadius+1e-9 {
						t.Fatalf("vertex radius %v outside [%v, %v]", r, minRadius, maxRadius)
					}
				}
				if speed := a.Velocity.Length(); speed < MinSpeed-1e-9 || speed > MaxSpeed+1e-9 {
					t.Fatalf("speed %v outside [%v, %v]", speed, MinSpeed, MaxSpeed)
				}
				if math.Abs(a.AngularVelocity()) > MaxSpin {
					t.Fatalf("spin %v above %v", a.AngularVelocity(), MaxSpin)
				}
				if !a.Contains(a.Position) {
					t.Fatalf("asteroid does not contain its own centre")
				}
			}
		})
	}
}

func TestRandomGenerator_VertexAnglesIncrease(t *testing.T) {
	g := New(99)
	for i := 0; i < 100; i++ {
		vertices := g.shape(1).Vertices()
		prev := math.Inf(-1)
		for j, v := range vertices {
			angle := v.Angle()
			// the first vertex may sit just below zero
			if j > 0 && angle < 0 {
				angle += 2 * math.Pi
			}
			if angle <= prev {
				t.Fatalf("vertex %d angle %v not above %v", j, angle, prev)
			}
			prev = angle
		}
	}
}

func TestRandomGenerator_AsteroidAt(t *testing.T) {
	center := physics.Vector2D{X: 123, Y: 456}
	a := New(3).AsteroidAt(center, 0.5)

	if a.Position != center {
		t.Errorf("Position = %v, expected %v", a.Position, center)
	}
	if a.Size() != 0.5 {
		t.Errorf("Size() = %v, expected 0.5", a.Size())
	}
}

func TestRandomGenerator_IsSpawner(t *testing.T) {
	var _ entity.Spawner = New(0)

	parent := New(5).AsteroidAt(physics.Vector2D{X: 400, Y: 400}, entity.InitialAsteroidSize)
	fragments := parent.Fragments(New(6))
	if len(fragments) != entity.NumberAsteroidFragments {
		t.Fatalf("Fragments() returned %d asteroids", len(fragments))
	}
	for _, f := range fragments {
		if f.Position != parent.Position {
			t.Errorf("fragment at %v, expected %v", f.Position, parent.Position)
		}
	}
}
