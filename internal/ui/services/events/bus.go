package events

import (
	"fmt"
	"sync"
)

// Bus is a simple event bus for UI services.
// Handlers run on the publisher's goroutine, in subscription order.
type Bus struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[string][]listener
}

type listener struct {
	id      int
	handler func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]listener),
	}
}

// Subscribe registers a listener for an event type and returns a function
// that removes it again
func (b *Bus) Subscribe(eventType string, handler func(interface{})) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners[eventType] = append(b.listeners[eventType], listener{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		current := b.listeners[eventType]
		for i, l := range current {
			if l.id == id {
				b.listeners[eventType] = append(current[:i:i], current[i+1:]...)
				return
			}
		}
	}
}

// Publish sends an event to all listeners of its type
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := append([]listener(nil), b.listeners[TypeOf(event)]...)
	b.mu.RUnlock()

	for _, l := range handlers {
		l.handler(event)
	}
}

// TypeOf returns the key listeners use to subscribe to an event
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
