// cmd/asteroids/loop.go
package main

import (
	"context"
	"time"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// scoreboard is implemented by renderers that show the score
type scoreboard interface {
	SetScore(score, multiplier int)
}

// failable is implemented by renderers that can fail to write a frame
type failable interface {
	Err() error
}

// runHeadless steps world at the configured tick rate under the pilot's
// control until the game ends, MaxTicks is reached or ctx is cancelled.
func runHeadless(ctx context.Context, world *engine.World, renderer entity.Renderer, pilot *Pilot, cfg *config.Config, logger *logging.Logger) error {
	step := cfg.TickSeconds()
	ticker := time.NewTicker(time.Duration(step * float64(time.Second)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "session interrupted", "tick", world.Tick())
			return nil
		case <-ticker.C:
		}

		pilot.Steer(world.Spaceship(), world.Asteroids()).Apply(world)
		world.Update(step)

		if sb, ok := renderer.(scoreboard); ok {
			sb.SetScore(world.Score().Score(), world.Score().Multiplier())
		}
		world.Render(renderer)
		if f, ok := renderer.(failable); ok && f.Err() != nil {
			return logging.WrapError(f.Err(), "render frame at tick %d", world.Tick())
		}

		if world.IsGameOver() {
			return nil
		}
		if cfg.MaxTicks > 0 && world.Tick() >= cfg.MaxTicks {
			logger.Info(ctx, "tick limit reached", "tick", world.Tick())
			return nil
		}
	}
}
