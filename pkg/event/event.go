// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	EntityCollision  Type = "entity_collision"
	EnemyDestroyed   Type = "enemy_destroyed"
	PlayerDamaged    Type = "player_damaged"
	PlayerDied       Type = "player_died"
	PowerupCollected Type = "powerup_collected"
	PowerupExpired   Type = "powerup_expired"
	EnemySpawned     Type = "enemy_spawned"
	ProjectileFired  Type = "projectile_fired"
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

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	// Call each handler
	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// CollisionEvent reports one confirmed collision pair.
type CollisionEvent struct {
	BaseEvent
	EntityA   uint64
	EntityB   uint64
	CategoryA string
	CategoryB string
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, entityA, entityB uint64, categoryA, categoryB string) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: EntityCollision,
			Source:    source,
		},
		EntityA:   entityA,
		EntityB:   entityB,
		CategoryA: categoryA,
		CategoryB: categoryB,
	}
}

// EntityEvent contains information about events concerning one entity
type EntityEvent struct {
	BaseEvent
	EntityID uint64
}

// NewEntityEvent creates a new single-entity event
func NewEntityEvent(eventType Type, source interface{}, entityID uint64) *EntityEvent {
	return &EntityEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		EntityID: entityID,
	}
}

// PowerupEvent contains information about powerup collection or expiry
type PowerupEvent struct {
	BaseEvent
	PowerupID uint64
	Kind      string
}

// NewPowerupEvent creates a new powerup event
func NewPowerupEvent(eventType Type, source interface{}, powerupID uint64, kind string) *PowerupEvent {
	return &PowerupEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		PowerupID: powerupID,
		Kind:      kind,
	}
}
