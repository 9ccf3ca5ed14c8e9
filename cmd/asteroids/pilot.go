// cmd/asteroids/pilot.go
package main

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
	engorender "github.com/opd-ai/go-asteroids/pkg/render/engo"
)

// Pilot tuning
const (
	aimTolerance     = 10.0 // degrees off target still worth a shot
	fireCooldown     = 5    // ticks between two shots
	cruiseSpeed      = 60.0
	thrustChance     = 0.3
	pilotStreamSalt  = 0x5851f42d4c957f2d
	brakeSpeedFactor = 1.5
)

// Pilot flies the ship in demo mode: it turns toward the nearest asteroid,
// shoots when lined up, and drifts around at cruise speed.
type Pilot struct {
	random   *rand.Rand
	cooldown int
}

// NewPilot creates a pilot whose random choices are drawn from seed
func NewPilot(seed uint64) *Pilot {
	return &Pilot{
		random: rand.New(rand.NewPCG(seed, seed^pilotStreamSalt)),
	}
}

// Steer returns the controls for the next tick
func (p *Pilot) Steer(ship *entity.Spaceship, asteroids []*entity.Asteroid) engorender.Controls {
	var c engorender.Controls

	speed := ship.Velocity.Length()
	switch {
	case speed > cruiseSpeed*brakeSpeedFactor:
		c.Brake = true
	case speed < cruiseSpeed:
		c.Thrust = p.random.Float64() < thrustChance
	}

	if p.cooldown > 0 {
		p.cooldown--
	}

	target := nearestAsteroid(ship.Position, asteroids)
	if target == nil {
		return c
	}

	diff := angleDiff(ship.DirectionAngle(), toricDelta(ship.Position, target.Position).AngleDegrees())
	switch {
	case diff > aimTolerance:
		c.Right = true
	case diff < -aimTolerance:
		c.Left = true
	case p.cooldown == 0:
		c.Fire = true
		p.cooldown = fireCooldown
	}
	return c
}

// nearestAsteroid returns the asteroid closest to pos across the space edges
func nearestAsteroid(pos physics.Vector2D, asteroids []*entity.Asteroid) *entity.Asteroid {
	var nearest *entity.Asteroid
	best := math.Inf(1)
	for _, a := range asteroids {
		if d := toricDelta(pos, a.Position).LengthSquared(); d < best {
			best = d
			nearest = a
		}
	}
	return nearest
}

// toricDelta returns the shortest vector from one point to another in the
// toric space
func toricDelta(from, to physics.Vector2D) physics.Vector2D {
	return physics.Vector2D{
		X: wrapDelta(to.X-from.X, physics.SpaceWidth),
		Y: wrapDelta(to.Y-from.Y, physics.SpaceHeight),
	}
}

func wrapDelta(d, size float64) float64 {
	switch {
	case d > size/2:
		return d - size
	case d < -size/2:
		return d + size
	default:
		return d
	}
}

// angleDiff returns target-current in degrees, normalised to (-180, 180]
func angleDiff(current, target float64) float64 {
	d := math.Mod(target-current, 360)
	switch {
	case d > 180:
		d -= 360
	case d <= -180:
		d += 360
	}
	return d
}
