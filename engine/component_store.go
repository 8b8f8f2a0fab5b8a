package engine

import (
	"github.com/lixenwraith/desert-brawler/component"
)

// ComponentStore holds typed pointers to every component store
// Systems access stores through World.Components without map lookups
type ComponentStore struct {
	// Identity
	Actor   *Store[component.ActorComponent]
	Pursuer *Store[component.PursuerComponent]

	// Simulation
	Kinetic   *Store[component.KineticComponent]
	Facing    *Store[component.FacingComponent]
	Animation *Store[component.AnimationComponent]

	// Combat
	Health   *Store[component.HealthComponent]
	Hitbox   *Store[component.HitboxComponent]
	Hurtbox  *Store[component.HurtboxComponent]
	HitTrack *Store[component.HitTrackComponent]
	Combo    *Store[component.ComboComponent]

	// Status effects
	Stun         *Store[component.StunComponent]
	Invulnerable *Store[component.InvulnerableComponent]
	Knockback    *Store[component.KnockbackComponent]
	HitFlash     *Store[component.HitFlashComponent]

	// Lifecycle
	Death *Store[component.MarkedForDeathComponent]

	// Lifecycle registry, every store above is listed for uniform cleanup
	all []AnyStore
}

// newComponentStore initializes every store and the lifecycle registry
func newComponentStore() ComponentStore {
	cs := ComponentStore{
		Actor:   NewStore[component.ActorComponent](),
		Pursuer: NewStore[component.PursuerComponent](),

		Kinetic:   NewStore[component.KineticComponent](),
		Facing:    NewStore[component.FacingComponent](),
		Animation: NewStore[component.AnimationComponent](),

		Health:   NewStore[component.HealthComponent](),
		Hitbox:   NewStore[component.HitboxComponent](),
		Hurtbox:  NewStore[component.HurtboxComponent](),
		HitTrack: NewStore[component.HitTrackComponent](),
		Combo:    NewStore[component.ComboComponent](),

		Stun:         NewStore[component.StunComponent](),
		Invulnerable: NewStore[component.InvulnerableComponent](),
		Knockback:    NewStore[component.KnockbackComponent](),
		HitFlash:     NewStore[component.HitFlashComponent](),

		Death: NewStore[component.MarkedForDeathComponent](),
	}

	cs.all = []AnyStore{
		cs.Actor, cs.Pursuer,
		cs.Kinetic, cs.Facing, cs.Animation,
		cs.Health, cs.Hitbox, cs.Hurtbox, cs.HitTrack, cs.Combo,
		cs.Stun, cs.Invulnerable, cs.Knockback, cs.HitFlash,
		cs.Death,
	}

	return cs
}
