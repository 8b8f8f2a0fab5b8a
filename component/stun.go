package component

import "time"

// StunComponent disables an entity's input and steering while it counts down
type StunComponent struct {
	Remaining time.Duration
}
