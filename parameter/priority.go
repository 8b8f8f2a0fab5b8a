package parameter

// System Execution Priorities (lower runs first)
// The ordering is load-bearing: state must settle before sprites refresh,
// hitboxes must be placed from the current tick's state before collision,
// damage must fully resolve before defeat bookkeeping, and knockback must
// integrate before the next movement phase observes it
const (
	PriorityActorInput = 10 // Input reaction, combo queueing
	PriorityActorState = 20 // Timed-update transitions, combo consumption
	PriorityMovement   = 30 // Actor physics from the active MotionProfile
	PriorityPursuer    = 40 // Pursuer steering
	PriorityHitbox     = 50 // Activation windows, AABB + proximity tests
	PriorityDamage     = 60 // Damage event draining and application
	PriorityStatus     = 70 // Stun/invulnerability countdown, knockback
	PriorityFlash      = 80 // Hit-flash countdown
	PriorityAnimation  = 85 // Frame progression, wrap detection
	PriorityRound      = 90 // Defeats, score, spawn cadence, round timer
)
