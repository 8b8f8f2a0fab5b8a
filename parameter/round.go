package parameter

import "time"

// Round bookkeeping
const (
	// RoundDuration is the total round time
	RoundDuration = 120 * time.Second

	// RoundScorePerDefeat is score awarded per defeated pursuer
	RoundScorePerDefeat = 10
)
