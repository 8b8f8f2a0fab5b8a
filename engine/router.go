package engine

import "github.com/lixenwraith/desert-brawler/event"

// Router dispatches control-bus events to registered systems
//
// Dispatch is single-threaded: all pending events are consumed and
// delivered before World.Update runs, so handlers may freely mutate
// component stores
type Router struct {
	handlers map[event.EventType][]System
	queue    *event.Queue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *event.Queue) *Router {
	return &Router{
		handlers: make(map[event.EventType][]System),
		queue:    queue,
	}
}

// Register adds a system for its declared event types
// Multiple systems can register for the same event type
func (r *Router) Register(s System) {
	for _, t := range s.EventTypes() {
		r.handlers[t] = append(r.handlers[t], s)
	}
}

// DispatchAll consumes all pending events and routes them in FIFO order
// All handlers for an event are called before moving to the next event
//
// Must be called once per tick, before World.Update
func (r *Router) DispatchAll() {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

// HandlerCount returns the number of systems registered for t
func (r *Router) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
