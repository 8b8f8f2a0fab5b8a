package engine

import "github.com/lixenwraith/desert-brawler/event"

// System is the interface every simulation phase implements
// Systems run once per tick in ascending Priority order
type System interface {
	// Name returns the system's registration name
	Name() string

	// Priority orders execution, lower values run first
	Priority() int

	// Init resets session state for a new round
	Init()

	// Update runs one tick of the system's logic
	Update()

	// EventTypes returns the control events this system consumes
	EventTypes() []event.EventType

	// HandleEvent processes a single routed control event
	// Called synchronously during the dispatch phase, before Update
	HandleEvent(ev event.GameEvent)
}
