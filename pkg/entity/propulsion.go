// pkg/entity/propulsion.go
package entity

import "github.com/opd-ai/go-asteroids/pkg/physics"

// Engine constants. Consumptions are in fuel units per second, powers in
// pixels per second squared.
const (
	MainEnginePower          = 40.0
	EngineDeceleration       = -10.0
	AngularVelocity          = 3.5
	TankCapacity             = 5.0
	FuelRefill               = 0.2
	MainEngineConsumption    = 1.0
	LateralEngineConsumption = 0.3
	RecoilEngineConsumption  = 0.5
)

// ThrustMode is the longitudinal state of the propulsion
type ThrustMode int

const (
	ThrustIdle ThrustMode = iota
	ThrustForward
	ThrustBrake
)

// String returns the name of the thrust mode
func (m ThrustMode) String() string {
	switch m {
	case ThrustIdle:
		return "Idle"
	case ThrustForward:
		return "Forward"
	case ThrustBrake:
		return "Brake"
	default:
		return "Unknown"
	}
}

// Lateral is the state of the two side engines
type Lateral int

const (
	LateralNone Lateral = iota
	LateralLeft
	LateralRight
	LateralBoth
)

// String returns the name of the lateral state
func (l Lateral) String() string {
	switch l {
	case LateralNone:
		return "None"
	case LateralLeft:
		return "Left"
	case LateralRight:
		return "Right"
	case LateralBoth:
		return "Both"
	default:
		return "Unknown"
	}
}

// Propulsion holds the four engine switches. Any combination may be on at
// once; Mode and Lateral fold them into the states the rules are written in.
type Propulsion struct {
	MainOn   bool
	LeftOn   bool
	RightOn  bool
	RecoilOn bool
}

// Mode returns the longitudinal state. The main engine overrides the brake.
func (p Propulsion) Mode() ThrustMode {
	switch {
	case p.MainOn:
		return ThrustForward
	case p.RecoilOn:
		return ThrustBrake
	default:
		return ThrustIdle
	}
}

// Lateral returns the state of the side engines
func (p Propulsion) Lateral() Lateral {
	switch {
	case p.LeftOn && p.RightOn:
		return LateralBoth
	case p.LeftOn:
		return LateralLeft
	case p.RightOn:
		return LateralRight
	default:
		return LateralNone
	}
}

// Acceleration returns the acceleration produced along direction
func (p Propulsion) Acceleration(direction physics.Vector2D) physics.Vector2D {
	switch p.Mode() {
	case ThrustForward:
		return direction.Scale(MainEnginePower)
	case ThrustBrake:
		return direction.Scale(EngineDeceleration)
	default:
		return physics.Vector2D{}
	}
}

// ConsumptionRate returns the net fuel drain per second, passive refill
// included. Rules are checked in order:
//
//	forward + lateral   main + laterals
//	brake + lateral     recoil + laterals
//	lateral alone       main
//	brake engaged       recoil (even under forward thrust)
//	anything else       laterals
func (p Propulsion) ConsumptionRate() float64 {
	lateral := p.Lateral() != LateralNone
	switch {
	case p.Mode() == ThrustForward && lateral:
		return MainEngineConsumption + LateralEngineConsumption - FuelRefill
	case p.RecoilOn && lateral:
		return RecoilEngineConsumption + LateralEngineConsumption - FuelRefill
	case lateral:
		return MainEngineConsumption - FuelRefill
	case p.RecoilOn:
		return RecoilEngineConsumption - FuelRefill
	default:
		return LateralEngineConsumption - FuelRefill
	}
}

// TurnSign returns +1 when turning right (clockwise on screen), -1 when
// turning left, and 0 when both or neither side engine fires.
func (p Propulsion) TurnSign() float64 {
	switch p.Lateral() {
	case LateralRight:
		return 1
	case LateralLeft:
		return -1
	default:
		return 0
	}
}
