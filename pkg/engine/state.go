// pkg/engine/state.go
package engine

import (
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// WorldState represents a snapshot of the world, detached from the live
// entities
type WorldState struct {
	Tick        uint64
	Status      GameStatus
	Ship        ShipState
	Asteroids   []AsteroidState
	Projectiles []ProjectileState
	Score       int
	Multiplier  int
	GameOver    bool
}

// ShipState represents a snapshot of the ship's state
type ShipState struct {
	ID              entity.ID
	Position        physics.Vector2D
	Velocity        physics.Vector2D
	DirectionAngle  float64
	FuelPercentage  float64
	Invulnerability float64
	Lives           int
	Propulsion      entity.Propulsion
}

// AsteroidState represents a snapshot of an asteroid's state
type AsteroidState struct {
	ID       entity.ID
	Position physics.Vector2D
	Size     float64
	Outline  []physics.Vector2D // world-space vertices
}

// ProjectileState represents a snapshot of a projectile's state
type ProjectileState struct {
	ID            entity.ID
	Position      physics.Vector2D
	RemainingLife float64
}

// State returns a snapshot of the current world state
func (w *World) State() *WorldState {
	return &WorldState{
		Tick:        w.currentTick,
		Status:      w.status,
		Ship:        w.shipState(),
		Asteroids:   w.asteroidStates(),
		Projectiles: w.projectileStates(),
		Score:       w.score.Score(),
		Multiplier:  w.score.Multiplier(),
		GameOver:    w.IsGameOver(),
	}
}

func (w *World) shipState() ShipState {
	s := w.spaceship
	return ShipState{
		ID:              s.GetID(),
		Position:        s.Position,
		Velocity:        s.Velocity,
		DirectionAngle:  s.DirectionAngle(),
		FuelPercentage:  s.FuelPercentage(),
		Invulnerability: s.Invulnerability(),
		Lives:           s.Lives(),
		Propulsion:      s.Propulsion,
	}
}

func (w *World) asteroidStates() []AsteroidState {
	states := make([]AsteroidState, 0, len(w.asteroids))
	for _, a := range w.asteroids {
		states = append(states, AsteroidState{
			ID:       a.GetID(),
			Position: a.Position,
			Size:     a.Size(),
			Outline:  a.ShapeInWorld().Vertices(),
		})
	}
	return states
}

func (w *World) projectileStates() []ProjectileState {
	states := make([]ProjectileState, 0, len(w.projectiles))
	for _, p := range w.projectiles {
		states = append(states, ProjectileState{
			ID:            p.GetID(),
			Position:      p.Position,
			RemainingLife: p.RemainingLife,
		})
	}
	return states
}
