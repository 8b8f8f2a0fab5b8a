package parameter

import "time"

// Tick
const (
	// TickInterval is the fixed simulation step
	TickInterval = 16 * time.Millisecond
)

// Input
const (
	// InputKeyHoldDuration is how long a movement key press counts as
	// held, terminals report repeats but no release
	InputKeyHoldDuration = 150 * time.Millisecond
)

// Event queue sizing
const (
	// EventQueueSize is the ring buffer capacity, must be a power of 2
	EventQueueSize = 256

	// EventBufferMask wraps ring indices without modulo
	EventBufferMask = EventQueueSize - 1
)
