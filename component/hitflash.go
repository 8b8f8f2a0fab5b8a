package component

import "time"

// HitFlashComponent drives the brief color inversion after taking damage
type HitFlashComponent struct {
	Remaining time.Duration
	Duration  time.Duration
}
