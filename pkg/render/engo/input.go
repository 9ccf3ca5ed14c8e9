// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/entity"
)

// Button names
const (
	ButtonThrust = "thrust"
	ButtonLeft   = "turnLeft"
	ButtonRight  = "turnRight"
	ButtonBrake  = "brake"
	ButtonFire   = "fire"
	ButtonQuit   = "quit"
)

// Commands are the ship controls exposed by the simulation
type Commands interface {
	StartMainEngine()
	StopMainEngine()
	StartLeftEngine()
	StopLeftEngine()
	StartRightEngine()
	StopRightEngine()
	StartBrake()
	StopBrake()
	FireGun() *entity.Projectile
}

// Controls is the state of the keyboard for one frame. Engines follow the
// held keys; Fire is edge-triggered.
type Controls struct {
	Thrust bool
	Left   bool
	Right  bool
	Brake  bool
	Fire   bool
}

// Apply forwards the controls to cmd
func (c Controls) Apply(cmd Commands) {
	toggle(c.Thrust, cmd.StartMainEngine, cmd.StopMainEngine)
	toggle(c.Left, cmd.StartLeftEngine, cmd.StopLeftEngine)
	toggle(c.Right, cmd.StartRightEngine, cmd.StopRightEngine)
	toggle(c.Brake, cmd.StartBrake, cmd.StopBrake)
	if c.Fire {
		cmd.FireGun()
	}
}

func toggle(on bool, start, stop func()) {
	if on {
		start()
	} else {
		stop()
	}
}

// InputSystem reads the keyboard every frame and drives the ship
type InputSystem struct {
	commands Commands
	last     Controls
}

// NewInputSystem creates an input system controlling commands
func NewInputSystem(commands Commands) *InputSystem {
	return &InputSystem{commands: commands}
}

// Add satisfies the ecs.System interface
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for input system
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
	// Not used for input system
}

// Update samples the keyboard and applies it
func (is *InputSystem) Update(dt float32) {
	if engo.Input.Button(ButtonQuit).JustPressed() {
		engo.Exit()
		return
	}
	is.last = Controls{
		Thrust: engo.Input.Button(ButtonThrust).Down(),
		Left:   engo.Input.Button(ButtonLeft).Down(),
		Right:  engo.Input.Button(ButtonRight).Down(),
		Brake:  engo.Input.Button(ButtonBrake).Down(),
		Fire:   engo.Input.Button(ButtonFire).JustPressed(),
	}
	is.last.Apply(is.commands)
}

// LastControls returns the controls applied on the latest frame
func (is *InputSystem) LastControls() Controls {
	return is.last
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonThrust, engo.KeyArrowUp, engo.KeyW)
	engo.Input.RegisterButton(ButtonLeft, engo.KeyArrowLeft, engo.KeyA)
	engo.Input.RegisterButton(ButtonRight, engo.KeyArrowRight, engo.KeyD)
	engo.Input.RegisterButton(ButtonBrake, engo.KeyArrowDown, engo.KeyS)
	engo.Input.RegisterButton(ButtonFire, engo.KeySpace)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape)
}
