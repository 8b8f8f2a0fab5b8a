package event

// EventType represents the type of game event
type EventType int

const (
	// === Engine Event ===

	// EventGameReset requests a full session re-initialization
	// Trigger: restart key after game over, external restart signal
	// Consumer: all systems via Init | Payload: nil
	EventGameReset EventType = iota + 1

	// === Combat Event ===

	// EventDamage carries one detected contact awaiting resolution
	// Trigger: HitboxSystem on AABB or proximity contact
	// Consumer: DamageSystem, same tick | Payload: *DamagePayload
	EventDamage

	// EventDefeat signals an entity's health reached zero
	// Trigger: DamageSystem, exactly once per entity
	// Consumer: RoundSystem, same tick | Payload: *DefeatPayload
	EventDefeat

	// === Round Event ===

	// EventRoundOver signals the round ended (timer expiry or actor defeat)
	// Trigger: RoundSystem
	// Consumer: presentation layer | Payload: nil
	EventRoundOver
)

// GameEvent is a single queued event with its origin frame
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
