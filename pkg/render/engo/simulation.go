// pkg/render/engo/simulation.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
)

// Simulation is the part of the world the frame loop drives
type Simulation interface {
	Update(deltaTime float64)
	Render(r entity.Renderer)
}

// SimulationSystem advances the simulation by the frame time and mirrors
// it into the renderer. Long frames are clamped so a stall never turns
// into a jump through an asteroid.
type SimulationSystem struct {
	simulation Simulation
	renderer   entity.Renderer
	elapsed    float64
	frames     uint64
}

// NewSimulationSystem creates a system stepping simulation every frame
func NewSimulationSystem(simulation Simulation, renderer entity.Renderer) *SimulationSystem {
	return &SimulationSystem{
		simulation: simulation,
		renderer:   renderer,
	}
}

// Add satisfies the ecs.System interface
func (ss *SimulationSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface
func (ss *SimulationSystem) Remove(basic ecs.BasicEntity) {}

// Update steps and renders the simulation
func (ss *SimulationSystem) Update(dt float32) {
	step := engine.ClampDeltaTime(float64(dt))
	ss.simulation.Update(step)
	ss.simulation.Render(ss.renderer)
	ss.elapsed += step
	ss.frames++
}

// Elapsed returns the simulated time in seconds
func (ss *SimulationSystem) Elapsed() float64 {
	return ss.elapsed
}

// Frames returns the number of frames stepped
func (ss *SimulationSystem) Frames() uint64 {
	return ss.frames
}
