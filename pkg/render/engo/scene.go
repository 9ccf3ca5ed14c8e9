// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// gameOverBackground replaces the background once the ship is lost
var gameOverBackground = color.RGBA{40, 0, 0, 255}

// GameScene plays one game of asteroids in an engo window
type GameScene struct {
	world    *engine.World
	ctx      context.Context
	logger   *logging.Logger
	viewport Viewport

	// Systems, created in Setup
	renderer   *EngoRenderer
	input      *InputSystem
	simulation *SimulationSystem
	hud        *HUDSystem

	subscriptions []*event.Subscription
}

// NewGameScene creates a scene playing world in a window of the given size
func NewGameScene(ctx context.Context, world *engine.World, window config.WindowConfig, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &GameScene{
		world:    world,
		ctx:      ctx,
		logger:   logger,
		viewport: NewViewport(window.Width, window.Height),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	// Every drawable is built from geometry, there is nothing to load
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	w := u.(*ecs.World)
	common.SetBackground(backgroundColor)
	SetupInputBindings()

	renderSystem := &common.RenderSystem{}
	w.AddSystem(renderSystem)

	scene.renderer = NewEngoRenderer(renderSystem, scene.viewport)
	scene.input = NewInputSystem(scene.world)
	scene.simulation = NewSimulationSystem(scene.world, scene.renderer)
	scene.hud = NewHUDSystem(scene.world, renderSystem)

	// input before simulation so commands apply to the same frame
	w.AddSystem(scene.input)
	w.AddSystem(scene.simulation)
	w.AddSystem(scene.hud)

	scene.subscribeToEvents()
	scene.logger.Info(scene.ctx, "scene started",
		"width", engo.GameWidth(),
		"height", engo.GameHeight(),
	)
}

// subscribeToEvents sets up event handlers
func (scene *GameScene) subscribeToEvents() {
	bus := scene.world.EventBus
	scene.subscriptions = append(scene.subscriptions,
		bus.Subscribe(event.ShipHit, func(e event.Event) {
			if hit, ok := e.(*event.ShipEvent); ok {
				scene.logger.Debug(scene.ctx, "ship hit", "lives", hit.Lives)
			}
		}),
		bus.Subscribe(event.ScoreChanged, func(e event.Event) {
			if s, ok := e.(*event.ScoreEvent); ok {
				scene.logger.Debug(scene.ctx, "score changed",
					"score", s.Score,
					"multiplier", s.Multiplier,
				)
			}
		}),
		bus.Subscribe(event.GameOver, func(e event.Event) {
			common.SetBackground(gameOverBackground)
		}),
	)
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	for _, sub := range scene.subscriptions {
		scene.world.EventBus.Unsubscribe(sub)
	}
	scene.subscriptions = nil
	if scene.hud != nil {
		scene.hud.Close()
	}

	var elapsed float64
	if scene.simulation != nil {
		elapsed = scene.simulation.Elapsed()
	}
	scene.logger.Info(scene.ctx, "scene exited",
		"score", scene.world.Score().Score(),
		"tick", scene.world.Tick(),
		"elapsed", elapsed,
	)
}

// Run opens a window and plays world until it is closed
func Run(ctx context.Context, world *engine.World, window config.WindowConfig, logger *logging.Logger) {
	scene := NewGameScene(ctx, world, window, logger)

	opts := engo.RunOptions{
		Title:      "Go Asteroids",
		Width:      window.Width,
		Height:     window.Height,
		Fullscreen: window.Fullscreen,
		VSync:      true,
	}

	engo.Run(opts, scene)
}
