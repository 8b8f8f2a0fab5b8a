package component

import (
	"time"

	"github.com/lixenwraith/desert-brawler/actor"
)

// ComboComponent tracks the combo window and any deferred follow-up attack
type ComboComponent struct {
	// Remaining counts down the window opened by the last attack input
	Remaining time.Duration

	// Queued is the deferred follow-up, consumed when the current
	// attack animation completes while the window is still open
	Queued    actor.StateID
	HasQueued bool
}
