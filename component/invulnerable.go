package component

import "time"

// InvulnerableComponent grants temporary damage immunity after a hit
type InvulnerableComponent struct {
	Remaining time.Duration
}
