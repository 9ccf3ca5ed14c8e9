// pkg/generator/generator.go
package generator

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Shape and motion ranges of generated asteroids
const (
	MinVertices      = 8
	MaxVertices      = 12
	BaseRadius       = 40.0 // radius of a size 1 asteroid, before jitter
	RadiusJitter     = 0.3  // radius varies by up to this fraction either way
	MinSpeed         = 20.0
	MaxSpeed         = 60.0
	MaxSpin          = 90.0 // degrees per second, either way
	angleJitterRatio = 0.25 // fraction of a sector a vertex may drift by
)

// seedMix decorrelates the two PCG words derived from a single seed
const seedMix = 0x9e3779b97f4a7c15

// RandomGenerator produces asteroids with random shapes and motion. Two
// generators built from the same seed produce the same sequence.
type RandomGenerator struct {
	random *rand.Rand
}

// New creates a generator seeded with seed
func New(seed uint64) *RandomGenerator {
	return &RandomGenerator{
		random: rand.New(rand.NewPCG(seed, seed^seedMix)),
	}
}

// Position returns a uniformly distributed point of the toric space
func (g *RandomGenerator) Position() physics.Vector2D {
	return physics.Vector2D{
		X: g.random.Float64() * physics.SpaceWidth,
		Y: g.random.Float64() * physics.SpaceHeight,
	}
}

// Asteroid creates an asteroid of the given size at a random position
func (g *RandomGenerator) Asteroid(size float64) *entity.Asteroid {
	return g.AsteroidAt(g.Position(), size)
}

// AsteroidAt creates an asteroid of the given size centred on center
func (g *RandomGenerator) AsteroidAt(center physics.Vector2D, size float64) *entity.Asteroid {
	shape := g.shape(size)
	heading := g.random.Float64() * 2 * math.Pi
	speed := MinSpeed + g.random.Float64()*(MaxSpeed-MinSpeed)
	spin := (g.random.Float64()*2 - 1) * MaxSpin

	return entity.MustNewAsteroid(center, shape, physics.FromAngle(heading, speed), spin, size)
}

// shape builds a star-shaped polygon around the origin. Vertex angles
// increase monotonically, so the outline never crosses itself and always
// contains the origin.
func (g *RandomGenerator) shape(size float64) physics.Polygon {
	n := MinVertices + g.random.IntN(MaxVertices-MinVertices+1)
	sector := 2 * math.Pi / float64(n)

	vertices := make([]physics.Vector2D, n)
	for i := range vertices {
		angle := float64(i)*sector + (g.random.Float64()*2-1)*angleJitterRatio*sector
		radius := BaseRadius * size * (1 + (g.random.Float64()*2-1)*RadiusJitter)
		vertices[i] = physics.FromAngle(angle, radius)
	}

	shape, err := physics.NewPolygon(vertices)
	if err != nil {
		// n is never zero
		panic(err)
	}
	return shape
}
