package parameter

import "time"

// Actor vitals
const (
	// ActorInitialHealth is the actor starting hit points
	ActorInitialHealth = 20
)

// Actor locomotion (units are pixels and seconds)
const (
	// ActorWalkSpeed is ground speed in the walk states
	ActorWalkSpeed = 200.0

	// ActorRunSpeed is ground speed in the run states
	ActorRunSpeed = 600.0

	// ActorAirControlSpeed is horizontal steering speed while airborne
	ActorAirControlSpeed = 250.0

	// ActorGravity is downward acceleration while a state applies gravity
	ActorGravity = 1800.0

	// ActorJumpForce is the initial upward velocity on entering the jump state
	ActorJumpForce = 800.0
)

// Combo
const (
	// ComboWindowDuration is the grace period for chaining a follow-up attack
	ComboWindowDuration = 500 * time.Millisecond
)

// Actor hurt region
const (
	ActorHurtWidth  = 100.0
	ActorHurtHeight = 150.0
)
