// Package notify is the in-process event bus the feature services
// broadcast on. Delivery is synchronous and best-effort: subscribers
// registered after an event fired never see it, and nothing is queued.
package notify

import (
	"log/slog"
	"sync"
)

// Event names broadcast by the core services.
const (
	EventActivityLogged  = "activity_logged"
	EventStorageRestored = "storage_restored"
	EventUserUpdated     = "user_updated"
	EventExpenseAdded    = "expense_added"
)

// Handler receives the event name and an optional free-form detail.
type Handler func(event string, detail any)

// Bus is a named-event observer registry.
type Bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[string]map[int]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string]map[int]Handler)}
}

// Subscribe registers a handler for event and returns a function that
// removes it again.
func (b *Bus) Subscribe(event string, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.handlers[event] == nil {
		b.handlers[event] = make(map[int]Handler)
	}
	b.handlers[event][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[event], id)
	}
}

// Publish invokes every handler subscribed to event, in the calling
// goroutine. A panicking handler is recovered and logged so one bad
// subscriber cannot take down the publisher.
func (b *Bus) Publish(event string, detail any) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[event]))
	for _, h := range b.handlers[event] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("event handler panicked", "event", event, "panic", r)
				}
			}()
			h(event, detail)
		}()
	}
}
