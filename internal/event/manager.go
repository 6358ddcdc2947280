// Package event is a small synchronous publish/subscribe bus.
package event

import (
	"sync"

	"github.com/bethropolis/codepad/internal/logger"
)

// Handler receives an event. Returning true consumes it and stops
// delivery to later handlers.
type Handler func(e Event) bool

// SubscriptionID identifies a handler for Unsubscribe.
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	nextID   SubscriptionID
	handlers map[Type][]subscription
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]subscription),
	}
}

// Subscribe adds a handler for eventType. Handlers run in subscription order.
func (m *Manager) Subscribe(eventType Type, handler Handler) SubscriptionID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.handlers[eventType] = append(m.handlers[eventType], subscription{id: id, handler: handler})
	logger.DebugTagf("event", "Handler %d subscribed to %v", id, eventType)
	return id
}

// Unsubscribe removes the handler registered under id.
func (m *Manager) Unsubscribe(eventType Type, id SubscriptionID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	subs := m.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			m.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch delivers an event synchronously on the caller's goroutine.
// Handlers may subscribe or unsubscribe during dispatch; the change takes
// effect from the next Dispatch.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	m.mu.RLock()
	subs := make([]subscription, len(m.handlers[eventType]))
	copy(subs, m.handlers[eventType])
	m.mu.RUnlock()

	if len(subs) == 0 {
		return
	}
	logger.DebugTagf("event", "Dispatching %v to %d handler(s)", eventType, len(subs))

	e := Event{Type: eventType, Data: data}
	for _, s := range subs {
		if s.handler(e) {
			return
		}
	}
}
