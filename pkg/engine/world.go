// pkg/engine/world.go
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// World constants
const (
	InitialAsteroidCount     = 10
	StartingSecurityDistance = 80.0 // minimal distance between the ship and an initial asteroid
	MaxPlacementAttempts     = 1000
	MaxDeltaTime             = 0.1 // longest step a frame-driven loop should pass to Update
)

// ErrPlacementExhausted is returned when no initial asteroid could be placed
// far enough from the ship.
var ErrPlacementExhausted = errors.New("no asteroid placed far enough from the ship")

// GameStatus is the lifecycle state of a world
type GameStatus int

const (
	GameStatusActive GameStatus = iota
	GameStatusEnded
)

// String returns the name of the status
func (s GameStatus) String() string {
	switch s {
	case GameStatusActive:
		return "active"
	case GameStatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// AsteroidGenerator is the random source the world draws asteroids from
type AsteroidGenerator interface {
	Asteroid(size float64) *entity.Asteroid
	entity.Spawner
}

// Option customises world construction.
type Option func(*World)

// WithLogger sets the logger used by the world.
func WithLogger(logger *logging.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithEventBus makes the world publish on bus, so that handlers can be
// subscribed before the game starts.
func WithEventBus(bus *event.Bus) Option {
	return func(w *World) {
		if bus != nil {
			w.EventBus = bus
		}
	}
}

// WithContext sets the context carried by log entries. A correlation ID is
// generated when ctx has none.
func WithContext(ctx context.Context) Option {
	return func(w *World) {
		if ctx != nil {
			w.ctx = ctx
		}
	}
}

// World owns the ship, the asteroids, the projectiles and the score, and
// advances them one tick at a time. It is not safe for concurrent use: a
// single loop drives Update and the commands.
type World struct {
	EventBus *event.Bus

	generator   AsteroidGenerator
	spaceship   *entity.Spaceship
	asteroids   []*entity.Asteroid
	projectiles []*entity.Projectile
	score       *Score
	status      GameStatus
	currentTick uint64

	ctx    context.Context
	logger *logging.Logger
}

// ShipSpawnPosition is the centre of space, where the ship starts
func ShipSpawnPosition() physics.Vector2D {
	return physics.Vector2D{X: physics.SpaceWidth / 2, Y: physics.SpaceHeight / 2}
}

// NewWorld creates a world with the ship at the centre of space and
// InitialAsteroidCount asteroids drawn from generator.
func NewWorld(generator AsteroidGenerator, opts ...Option) (*World, error) {
	w := NewEmptyWorld(generator, opts...)

	for i := 0; i < InitialAsteroidCount; i++ {
		asteroid, err := w.GenerateInitialAsteroid()
		if err != nil {
			w.logger.Error(w.ctx, "failed to populate world", err, "placed", i)
			return nil, logging.WrapError(err, "populate world")
		}
		w.asteroids = append(w.asteroids, asteroid)
	}

	w.logger.Info(w.ctx, "world created",
		"asteroids", len(w.asteroids),
		"ship_x", w.spaceship.Position.X,
		"ship_y", w.spaceship.Position.Y,
	)
	w.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameStarted,
		Source:    w,
	})
	return w, nil
}

// NewEmptyWorld creates a world with the ship but no asteroid. Asteroids
// are added with AddAsteroid.
func NewEmptyWorld(generator AsteroidGenerator, opts ...Option) *World {
	w := &World{
		EventBus:  event.NewEventBus(),
		generator: generator,
		spaceship: entity.NewSpaceship(ShipSpawnPosition()),
		score:     NewScore(),
		status:    GameStatusActive,
		ctx:       context.Background(),
		logger:    logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if logging.GetCorrelationID(w.ctx) == "" {
		w.ctx = logging.WithCorrelationID(w.ctx, "")
	}
	return w
}

// GenerateInitialAsteroid draws asteroids until one lies at least
// StartingSecurityDistance away from the ship.
func (w *World) GenerateInitialAsteroid() (*entity.Asteroid, error) {
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		asteroid := w.generator.Asteroid(entity.InitialAsteroidSize)
		if asteroid.Position.Distance(w.spaceship.Position) >= StartingSecurityDistance {
			return asteroid, nil
		}
	}
	return nil, fmt.Errorf("after %d attempts: %w", MaxPlacementAttempts, ErrPlacementExhausted)
}

// Update advances the world by deltaTime seconds. Once the game is over,
// Update does nothing.
func (w *World) Update(deltaTime float64) {
	if w.status == GameStatusEnded {
		return
	}

	w.score.Update(deltaTime)
	for _, asteroid := range w.asteroids {
		asteroid.Update(deltaTime)
	}
	w.spaceship.Update(deltaTime)

	w.removeExpiredProjectiles()
	for _, projectile := range w.projectiles {
		projectile.Update(deltaTime)
	}
	w.processProjectileHits()

	w.HasCollision()
	w.checkGameOver()
	w.currentTick++
}

// removeExpiredProjectiles drops projectiles that ran out of life on a
// previous tick, before they can hit anything.
func (w *World) removeExpiredProjectiles() {
	alive := w.projectiles[:0]
	for _, projectile := range w.projectiles {
		if projectile.IsExpired() {
			w.EventBus.Publish(event.NewProjectileEvent(event.ProjectileExpired, w,
				uint64(projectile.GetID()), projectile.Position.X, projectile.Position.Y))
			continue
		}
		alive = append(alive, projectile)
	}
	clear(w.projectiles[len(alive):])
	w.projectiles = alive
}

// processProjectileHits tests every projectile against every asteroid.
// Hits are collected first, then resolved: each hitting projectile is
// removed, and each hit asteroid scores once and breaks into fragments,
// however many projectiles reached it.
func (w *World) processProjectileHits() {
	hittingProjectiles := make(map[entity.ID]bool)
	hitAsteroidIDs := make(map[entity.ID]bool)
	var hitAsteroids []*entity.Asteroid

	for _, projectile := range w.projectiles {
		for _, asteroid := range w.asteroids {
			if !projectile.Collides(asteroid) {
				continue
			}
			hittingProjectiles[projectile.GetID()] = true
			if !hitAsteroidIDs[asteroid.GetID()] {
				hitAsteroidIDs[asteroid.GetID()] = true
				hitAsteroids = append(hitAsteroids, asteroid)
			}
		}
	}
	if len(hitAsteroids) == 0 {
		return
	}

	w.projectiles = removeByID(w.projectiles, hittingProjectiles)

	for _, asteroid := range hitAsteroids {
		fragments := asteroid.Fragments(w.generator)
		w.asteroids = append(w.asteroids, fragments...)
		w.score.NotifyAsteroidHit()

		w.logger.Debug(w.ctx, "asteroid destroyed",
			"asteroid_id", uint64(asteroid.GetID()),
			"size", asteroid.Size(),
			"fragments", len(fragments),
			"tick", w.currentTick,
		)
		w.EventBus.Publish(event.NewAsteroidEvent(event.AsteroidDestroyed, w,
			uint64(asteroid.GetID()), asteroid.Size(), len(fragments)))
	}
	w.asteroids = removeByID(w.asteroids, hitAsteroidIDs)

	w.EventBus.Publish(event.NewScoreEvent(event.ScoreChanged, w,
		w.score.Score(), w.score.Multiplier()))
}

// HasCollision checks the ship against every asteroid. On the first contact
// the ship loses a life and becomes invulnerable for HitInvulnerability
// seconds, so a single crash costs exactly one life.
func (w *World) HasCollision() bool {
	for _, asteroid := range w.asteroids {
		if !w.spaceship.Collides(asteroid) {
			continue
		}
		w.spaceship.SetInvulnerability(entity.HitInvulnerability)

		w.logger.Debug(w.ctx, "ship hit",
			"asteroid_id", uint64(asteroid.GetID()),
			"lives", w.spaceship.Lives(),
			"tick", w.currentTick,
		)
		w.EventBus.Publish(event.NewShipEvent(event.ShipHit, w,
			uint64(w.spaceship.GetID()), uint64(asteroid.GetID()), w.spaceship.Lives()))
		return true
	}
	return false
}

// IsGameOver reports whether the ship has no life left
func (w *World) IsGameOver() bool {
	return w.spaceship.Lives() == 0
}

// checkGameOver ends the game the first time the ship runs out of lives
func (w *World) checkGameOver() {
	if w.status == GameStatusEnded || !w.IsGameOver() {
		return
	}
	w.status = GameStatusEnded

	w.logger.Info(w.ctx, "game over",
		"score", w.score.Score(),
		"tick", w.currentTick,
	)
	w.EventBus.Publish(event.NewScoreEvent(event.GameOver, w,
		w.score.Score(), w.score.Multiplier()))
}

// removeByID returns items without the entities whose ID is in ids,
// preserving order
func removeByID[T interface{ GetID() entity.ID }](items []T, ids map[entity.ID]bool) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if !ids[item.GetID()] {
			kept = append(kept, item)
		}
	}
	return kept
}

// Commands. They only flip engine switches or spawn a projectile; the
// effects show up on the next Update.

func (w *World) StartMainEngine()  { w.spaceship.StartMainEngine() }
func (w *World) StopMainEngine()   { w.spaceship.StopMainEngine() }
func (w *World) StartLeftEngine()  { w.spaceship.StartLeftEngine() }
func (w *World) StopLeftEngine()   { w.spaceship.StopLeftEngine() }
func (w *World) StartRightEngine() { w.spaceship.StartRightEngine() }
func (w *World) StopRightEngine()  { w.spaceship.StopRightEngine() }
func (w *World) StartBrake()       { w.spaceship.StartBrake() }
func (w *World) StopBrake()        { w.spaceship.StopBrake() }

// FireGun fires a projectile from the ship. It returns nil once the game
// is over.
func (w *World) FireGun() *entity.Projectile {
	if w.status == GameStatusEnded {
		return nil
	}
	projectile := w.spaceship.Fire()
	w.AddProjectile(projectile)
	w.EventBus.Publish(event.NewProjectileEvent(event.ProjectileFired, w,
		uint64(projectile.GetID()), projectile.Position.X, projectile.Position.Y))
	return projectile
}

// AddAsteroid adds an asteroid to the world
func (w *World) AddAsteroid(asteroid *entity.Asteroid) {
	w.asteroids = append(w.asteroids, asteroid)
}

// AddProjectile adds a projectile to the world
func (w *World) AddProjectile(projectile *entity.Projectile) {
	w.projectiles = append(w.projectiles, projectile)
}

// Spaceship returns the player's ship
func (w *World) Spaceship() *entity.Spaceship {
	return w.spaceship
}

// Asteroids returns a copy of the asteroid list
func (w *World) Asteroids() []*entity.Asteroid {
	return append([]*entity.Asteroid(nil), w.asteroids...)
}

// Projectiles returns a copy of the projectile list
func (w *World) Projectiles() []*entity.Projectile {
	return append([]*entity.Projectile(nil), w.projectiles...)
}

// Score returns the score keeper
func (w *World) Score() *Score {
	return w.score
}

// Tick returns the number of updates run so far
func (w *World) Tick() uint64 {
	return w.currentTick
}

// Status returns the lifecycle state of the world
func (w *World) Status() GameStatus {
	return w.status
}

// Render draws every entity through r, asteroids first and the ship last
func (w *World) Render(r entity.Renderer) {
	r.Clear()
	for _, e := range w.Entities() {
		e.Render(r)
	}
	r.Present()
}

// Entities returns every body in drawing order: asteroids, then
// projectiles, then the ship on top
func (w *World) Entities() []entity.Entity {
	entities := make([]entity.Entity, 0, len(w.asteroids)+len(w.projectiles)+1)
	for _, asteroid := range w.asteroids {
		entities = append(entities, asteroid)
	}
	for _, projectile := range w.projectiles {
		entities = append(entities, projectile)
	}
	return append(entities, w.spaceship)
}

// ClampDeltaTime caps a measured frame time to MaxDeltaTime so that a
// stalled frame does not tunnel entities through each other.
func ClampDeltaTime(deltaTime float64) float64 {
	if deltaTime > MaxDeltaTime {
		return MaxDeltaTime
	}
	if deltaTime < 0 {
		return 0
	}
	return deltaTime
}
