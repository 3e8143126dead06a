// internal/event/event.go
package event

import "sync"

// EventType names an event.
type EventType string

// Event is dispatched to every listener subscribed to its Type.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher fans events out to listeners. Dispatch may be called from the
// loader goroutine while the draw loop subscribes.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch calls the listeners of event.Type in subscription order.
func (d *Dispatcher) Dispatch(event Event) {
	d.mu.RLock()
	listeners := append([]Listener(nil), d.listeners[event.Type]...)
	d.mu.RUnlock()
	for _, listener := range listeners {
		listener.OnEvent(event)
	}
}
