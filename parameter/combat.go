package parameter

import "time"

// Damage
const (
	// CombatDamagePunch is damage for the punch family of attacks
	CombatDamagePunch = 2

	// CombatDamageKick is damage for the kick family of attacks
	CombatDamageKick = 3

	// CombatDamageAerial is damage for jump punch and jump kick
	CombatDamageAerial = 6

	// CombatDamageContact is damage a pursuer deals on proximity contact
	CombatDamageContact = 1
)

// Contact
const (
	// CombatProximityRange is the actor-vs-pursuer contact distance
	CombatProximityRange = 100.0

	// CombatHitboxReach is the hit region offset in front of the attacker
	CombatHitboxReach = 80.0
)

// Timers
const (
	// CombatStunDuration disables movement and targeting after a hit
	CombatStunDuration = 500 * time.Millisecond

	// CombatDamageImmunityDuration is the post-hit damage immunity window
	CombatDamageImmunityDuration = 500 * time.Millisecond

	// CombatHitFlashDuration is the hit visual feedback window
	CombatHitFlashDuration = 150 * time.Millisecond
)

// Knockback
const (
	// CombatKnockbackSpeed is the horizontal impulse applied away from the attacker
	CombatKnockbackSpeed = 300.0

	// CombatKnockbackDecay is the per-second proportional velocity decay rate
	CombatKnockbackDecay = 5.0

	// CombatKnockbackRest is the speed below which knockback is removed
	CombatKnockbackRest = 1.0
)
