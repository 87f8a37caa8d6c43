package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeNotificationSent    EventType = "notification_sent"
	EventTypeSubscriptionCreated EventType = "subscription_created"
	EventTypeSubscriptionRemoved EventType = "subscription_removed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// NotificationSentEvent represents a completed notification fan-out for a guild
type NotificationSentEvent struct {
	GuildID   string
	GuildName string
	Sent      int
	Failed    int
}

func (e NotificationSentEvent) Type() EventType {
	return EventTypeNotificationSent
}

// SubscriptionCreatedEvent represents a new email subscription
type SubscriptionCreatedEvent struct {
	UserID  string
	GuildID string
	Email   string
}

func (e SubscriptionCreatedEvent) Type() EventType {
	return EventTypeSubscriptionCreated
}

// SubscriptionRemovedEvent represents a user cancelling their subscriptions in a guild
type SubscriptionRemovedEvent struct {
	UserID  string
	GuildID string
	Removed int64
}

func (e SubscriptionRemovedEvent) Type() EventType {
	return EventTypeSubscriptionRemoved
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	// Call handlers asynchronously to avoid blocking the emitter
	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType": event.Type(),
						"panic":     r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler)
	}
}
