// pkg/entity/ship.go
package entity

import (
	"math"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Spaceship constants
const (
	InitialLives       = 5
	GunOffset          = 30.0  // spawn distance of a shot from the ship centre
	ProjectileSpeed    = 100.0 // speed of a shot relative to the ship
	HitInvulnerability = 5.0   // seconds of invulnerability granted after a hit
)

// contactPoints approximate the hull for collision tests, in ship-local
// coordinates with the nose along +X. The first point is the centre; the
// rest run around the hull in order.
var contactPoints = [...]physics.Vector2D{
	{X: 0, Y: 0},
	{X: 27, Y: 0},
	{X: 14.5, Y: 1.5},
	{X: 2, Y: 3},
	{X: 0, Y: 18},
	{X: -13, Y: 18},
	{X: -14, Y: 2},
	{X: -14, Y: -2},
	{X: -13, Y: -18},
	{X: 0, Y: -18},
	{X: 2, Y: -3},
	{X: 14.5, Y: -1.5},
}

// hullRadius is the distance from the centre to the farthest contact point
var hullRadius = func() float64 {
	var r float64
	for _, p := range contactPoints {
		r = math.Max(r, p.Length())
	}
	return r
}()

// ContactPoints returns a copy of the hull contact points
func ContactPoints() []physics.Vector2D {
	return append([]physics.Vector2D(nil), contactPoints[:]...)
}

// Spaceship is the player's ship
type Spaceship struct {
	BaseEntity
	Direction       physics.Vector2D
	Propulsion      Propulsion
	fuel            float64
	invulnerability float64
	lives           int
}

// NewSpaceship creates a ship at rest at position, facing right, with a
// full tank. Its invulnerability timer starts at zero, so it is protected
// until the first update.
func NewSpaceship(position physics.Vector2D) *Spaceship {
	return &Spaceship{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: position,
		},
		Direction: physics.Vector2D{X: 1, Y: 0},
		fuel:      TankCapacity,
		lives:     InitialLives,
	}
}

// DirectionAngle returns the heading in degrees, 0 facing right
func (s *Spaceship) DirectionAngle() float64 {
	return s.Direction.AngleDegrees()
}

// Fuel returns the fuel left in the tank
func (s *Spaceship) Fuel() float64 {
	return s.fuel
}

// FuelPercentage returns the fuel left as a percentage of the tank
func (s *Spaceship) FuelPercentage() float64 {
	return s.fuel / TankCapacity * 100
}

// Invulnerability returns the remaining invulnerability time in seconds.
// Negative values mean the ship can be hit.
func (s *Spaceship) Invulnerability() float64 {
	return s.invulnerability
}

// Lives returns the number of lives left
func (s *Spaceship) Lives() int {
	return s.lives
}

// IsInvulnerable reports whether hits are currently ignored
func (s *Spaceship) IsInvulnerable() bool {
	return s.invulnerability >= 0
}

// Acceleration returns the current engine acceleration
func (s *Spaceship) Acceleration() physics.Vector2D {
	return s.Propulsion.Acceleration(s.Direction)
}

// ConsumptionRate returns the current net fuel drain per second
func (s *Spaceship) ConsumptionRate() float64 {
	return s.Propulsion.ConsumptionRate()
}

// Autonomy returns how much of deltaTime the fuel left can sustain
func (s *Spaceship) Autonomy(deltaTime float64) float64 {
	return autonomy(s.fuel, s.ConsumptionRate(), deltaTime)
}

// autonomy treats a non-positive rate as unlimited
func autonomy(fuel, rate, deltaTime float64) float64 {
	if rate <= 0 {
		return deltaTime
	}
	return math.Min(fuel/rate, deltaTime)
}

// Update handles the ship's state update for a single game tick
func (s *Spaceship) Update(deltaTime float64) {
	aut := s.Autonomy(deltaTime)
	rate := s.ConsumptionRate()

	if s.Propulsion.MainOn {
		s.move(deltaTime)
		s.Position = physics.ToricRemap(s.Position)
		s.Velocity = s.Velocity.Add(s.Acceleration().Scale(aut))
	}

	if sign := s.Propulsion.TurnSign(); sign != 0 {
		s.Direction = s.Direction.RotateDegrees(sign * (AngularVelocity + aut))
	}

	// the tank settles below capacity by the current net drain
	if aut < TankCapacity {
		s.fuel = clamp(TankCapacity-rate, 0, TankCapacity)
	}
	s.invulnerability -= deltaTime
}

// BoundingCircle returns a circle enclosing the hull at any heading
func (s *Spaceship) BoundingCircle() physics.Circle {
	return physics.Circle{
		Center: s.Position,
		Radius: hullRadius + boundingMargin,
	}
}

// SetInvulnerability makes the ship invulnerable for at least duration
// seconds. A ship that is already invulnerable keeps its current timer.
func (s *Spaceship) SetInvulnerability(duration float64) {
	if !s.IsInvulnerable() {
		s.invulnerability = math.Max(s.invulnerability, duration)
	}
}

// Collides checks the hull against asteroid and costs a life on contact.
// An invulnerable ship never collides.
func (s *Spaceship) Collides(asteroid *Asteroid) bool {
	if s.IsInvulnerable() {
		return false
	}
	if !s.BoundingCircle().Collides(asteroid.BoundingCircle()) {
		return false
	}
	angle := s.DirectionAngle()
	for _, point := range contactPoints {
		if asteroid.Contains(point.RotateDegrees(angle).Translate(s.Position)) {
			if s.lives > 0 {
				s.lives--
			}
			return true
		}
	}
	return false
}

// Fire creates a projectile ahead of the ship. Shots inherit the ship's
// velocity.
func (s *Spaceship) Fire() *Projectile {
	return NewProjectile(
		s.Position.Add(s.Direction.Scale(GunOffset)),
		s.Direction.Scale(ProjectileSpeed).Add(s.Velocity),
	)
}

// Engine commands

func (s *Spaceship) StartMainEngine()  { s.Propulsion.MainOn = true }
func (s *Spaceship) StopMainEngine()   { s.Propulsion.MainOn = false }
func (s *Spaceship) StartLeftEngine()  { s.Propulsion.LeftOn = true }
func (s *Spaceship) StopLeftEngine()   { s.Propulsion.LeftOn = false }
func (s *Spaceship) StartRightEngine() { s.Propulsion.RightOn = true }
func (s *Spaceship) StopRightEngine()  { s.Propulsion.RightOn = false }
func (s *Spaceship) StartBrake()       { s.Propulsion.RecoilOn = true }
func (s *Spaceship) StopBrake()        { s.Propulsion.RecoilOn = false }

// clamp restricts v to [lo, hi]
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
