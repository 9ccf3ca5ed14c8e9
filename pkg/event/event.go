// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Game event types
const (
	GameStarted       Type = "game_started"
	GameOver          Type = "game_over"
	ProjectileFired   Type = "projectile_fired"
	ProjectileExpired Type = "projectile_expired"
	AsteroidDestroyed Type = "asteroid_destroyed"
	ShipHit           Type = "ship_hit"
	ScoreChanged      Type = "score_changed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it from the bus.
type Subscription struct {
	ID        uint64
	EventType Type
	Cancel    func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine, in subscription order.
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:        id,
		EventType: eventType,
		Cancel:    func() { b.unsubscribe(eventType, id) },
	}
}

// Unsubscribe removes the handler registered by sub. Removing a
// subscription twice is a no-op.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	b.unsubscribe(sub.EventType, sub.ID)
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscribers := b.handlers[eventType]
	for i, s := range subscribers {
		if s.id == id {
			// copy so that a Publish iterating the old slice is unaffected
			remaining := make([]subscriber, 0, len(subscribers)-1)
			remaining = append(remaining, subscribers[:i]...)
			remaining = append(remaining, subscribers[i+1:]...)
			if len(remaining) == 0 {
				delete(b.handlers, eventType)
			} else {
				b.handlers[eventType] = remaining
			}
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subscribers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, s := range subscribers {
		s.handler(event)
	}
}

// Specific event implementations

// AsteroidEvent describes an asteroid destroyed by a projectile
type AsteroidEvent struct {
	BaseEvent
	AsteroidID uint64
	Size       float64
	Fragments  int
}

// NewAsteroidEvent creates a new asteroid event
func NewAsteroidEvent(eventType Type, source interface{}, asteroidID uint64, size float64, fragments int) *AsteroidEvent {
	return &AsteroidEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		AsteroidID: asteroidID,
		Size:       size,
		Fragments:  fragments,
	}
}

// ShipEvent contains information about ship-related events
type ShipEvent struct {
	BaseEvent
	ShipID     uint64
	AsteroidID uint64
	Lives      int
}

// NewShipEvent creates a new ship event
func NewShipEvent(eventType Type, source interface{}, shipID, asteroidID uint64, lives int) *ShipEvent {
	return &ShipEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		ShipID:     shipID,
		AsteroidID: asteroidID,
		Lives:      lives,
	}
}

// ScoreEvent carries the score after a change
type ScoreEvent struct {
	BaseEvent
	Score      int
	Multiplier int
}

// NewScoreEvent creates a new score event
func NewScoreEvent(eventType Type, source interface{}, score, multiplier int) *ScoreEvent {
	return &ScoreEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Score:      score,
		Multiplier: multiplier,
	}
}

// ProjectileEvent contains information about a projectile
type ProjectileEvent struct {
	BaseEvent
	ProjectileID uint64
	X, Y         float64
}

// NewProjectileEvent creates a new projectile event
func NewProjectileEvent(eventType Type, source interface{}, projectileID uint64, x, y float64) *ProjectileEvent {
	return &ProjectileEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		ProjectileID: projectileID,
		X:            x,
		Y:            y,
	}
}
