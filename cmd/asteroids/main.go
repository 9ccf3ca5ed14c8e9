// cmd/asteroids/main.go
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/generator"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
	engorender "github.com/opd-ai/go-asteroids/pkg/render/engo"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	rendererName := flag.String("renderer", "", "Renderer: 'terminal', 'engo' or 'null' (overrides config)")
	seed := flag.Uint64("seed", 0, "Random seed (overrides config, 0 keeps it)")
	flag.Parse()

	// Until the configuration is read, log at the environment's level
	logger := logging.NewLoggerWithWriter(os.Stderr, logLevel(""))
	ctx := logging.WithCorrelationID(context.Background(), logging.GenerateCorrelationID())

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	cfg, err := loadConfig(ctx, logger, *configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", *configPath,
		)
		os.Exit(1)
	}
	if *rendererName != "" {
		cfg.Renderer = *rendererName
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		logger.Error(ctx, "Invalid configuration", err)
		os.Exit(1)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	logger = logging.NewLoggerWithWriter(os.Stderr, logLevel(cfg.LogLevel))
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	world, err := engine.NewWorld(generator.New(cfg.Seed),
		engine.WithLogger(logger),
		engine.WithContext(ctx),
	)
	if err != nil {
		logger.Error(ctx, "Failed to create world", err, "seed", cfg.Seed)
		os.Exit(1)
	}
	world.EventBus.Subscribe(event.GameOver, func(e event.Event) {
		if s, ok := e.(*event.ScoreEvent); ok {
			logger.Info(ctx, "Final score", "score", s.Score)
		}
	})

	logger.Info(ctx, "Starting session",
		"renderer", cfg.Renderer,
		"seed", cfg.Seed,
		"tick_rate", cfg.TickRate,
	)

	if cfg.Renderer == config.RendererEngo {
		engorender.Run(ctx, world, cfg.Window, logger)
		return
	}

	var renderer entity.Renderer
	switch cfg.Renderer {
	case config.RendererNull:
		renderer = render.NewNullRenderer(logger)
	default:
		terminal := render.NewTerminalRenderer(os.Stdout, cfg.Terminal.Columns, cfg.Terminal.Rows)
		terminal.ClearScreen = true
		renderer = terminal
	}

	if err := runHeadless(ctx, world, renderer, NewPilot(cfg.Seed), cfg, logger); err != nil {
		logger.Error(ctx, "Session failed", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Session finished",
		"score", world.Score().Score(),
		"tick", world.Tick(),
		"status", world.Status().String(),
	)
}

// loadConfig reads the configuration file, falling back to the defaults
// when it does not exist, and applies the environment overrides
func loadConfig(ctx context.Context, logger *logging.Logger, path string) (*config.Config, error) {
	var cfg *config.Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, logging.WrapError(err, "apply environment configuration")
	}
	return cfg, nil
}

// logLevel resolves a configured level name, deferring to the environment
// when the name is empty or unknown
func logLevel(name string) slog.Level {
	if level, ok := logging.ParseLevel(name); ok {
		return level
	}
	level, _ := logging.ParseLevel(os.Getenv(logging.LevelEnvVar))
	return level
}
