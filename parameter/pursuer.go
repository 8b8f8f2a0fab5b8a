package parameter

import "time"

// Roster
const (
	// PursuerMaxCount is the active roster cap
	PursuerMaxCount = 6

	// PursuerSpawnInterval is the cadence between spawns while below cap
	PursuerSpawnInterval = 2 * time.Second

	// PursuerSpawnDistance is the off-screen spawn x offset on either side
	PursuerSpawnDistance = 2000.0

	// PursuerCullDistance destroys entries that drift past the world extent
	PursuerCullDistance = 2500.0
)

// Pursuer vitals
const (
	// PursuerInitialHealth is the pursuer starting hit points
	PursuerInitialHealth = 6
)

// Steering
const (
	// PursuerHorizontalSpeed is homing speed along x
	PursuerHorizontalSpeed = 150.0

	// PursuerVerticalSpeed is homing speed along y
	PursuerVerticalSpeed = 50.0

	// PursuerFacingHysteresis is the half-width of the dead zone the actor
	// must cross before the pursuer flips facing
	PursuerFacingHysteresis = 150.0

	// PursuerVerticalDeadZone stops vertical homing near the actor's y
	PursuerVerticalDeadZone = 10.0
)

// Pursuer hurt region
const (
	PursuerHurtWidth  = 80.0
	PursuerHurtHeight = 100.0
)
