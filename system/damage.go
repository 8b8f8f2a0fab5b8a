package system

import (
	"github.com/lixenwraith/desert-brawler/component"
	"github.com/lixenwraith/desert-brawler/engine"
	"github.com/lixenwraith/desert-brawler/event"
	"github.com/lixenwraith/desert-brawler/parameter"
)

// DamageSystem drains the damage pipeline and applies each hit:
// health subtraction, stun, immunity, hit flash, knockback, and an
// exactly-once defeat event when health reaches zero
type DamageSystem struct {
	world *engine.World
}

func NewDamageSystem(world *engine.World) engine.System {
	s := &DamageSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *DamageSystem) Init() {}

// Name returns system's name
func (s *DamageSystem) Name() string {
	return "damage"
}

func (s *DamageSystem) Priority() int {
	return parameter.PriorityDamage
}

func (s *DamageSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *DamageSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *DamageSystem) Update() {
	res := s.world.Resources
	events := res.Damage.Queue.Consume()
	if res.Round.GameOver {
		return
	}

	for _, ev := range events {
		payload, ok := ev.Payload.(*event.DamagePayload)
		if !ok {
			continue
		}
		s.apply(payload)
	}
}

// apply resolves a single damage event against its target
func (s *DamageSystem) apply(p *event.DamagePayload) {
	target := p.Target

	// Already defeated this tick
	if s.world.Components.Death.HasEntity(target) {
		return
	}

	// Immunity window from a previous hit
	if s.world.Components.Invulnerable.HasEntity(target) {
		return
	}

	// One hit per target per attack activation
	track, hasTrack := s.world.Components.HitTrack.GetComponent(p.Attacker)
	if hasTrack && track.Has(target) {
		return
	}

	health, ok := s.world.Components.Health.GetComponent(target)
	if !ok {
		return
	}

	health.Current -= p.Damage
	if health.Current < 0 {
		health.Current = 0
	}
	s.world.Components.Health.SetComponent(target, health)

	if hasTrack {
		track.Mark(target)
		s.world.Components.HitTrack.SetComponent(p.Attacker, track)
	}

	s.applyHitEffects(p)

	if health.Current == 0 {
		s.world.Components.Death.SetComponent(target, component.MarkedForDeathComponent{})
		s.world.Resources.Defeat.Queue.Push(event.GameEvent{
			Type: event.EventDefeat,
			Payload: &event.DefeatPayload{
				Entity: target,
				Actor:  s.world.Components.Actor.HasEntity(target),
			},
			Frame: s.world.Resources.Time.FrameNumber,
		})
	}
}

// applyHitEffects attaches the post-hit status set to the target
func (s *DamageSystem) applyHitEffects(p *event.DamagePayload) {
	target := p.Target

	s.world.Components.Stun.SetComponent(target, component.StunComponent{
		Remaining: parameter.CombatStunDuration,
	})
	s.world.Components.Invulnerable.SetComponent(target, component.InvulnerableComponent{
		Remaining: parameter.CombatDamageImmunityDuration,
	})
	s.world.Components.HitFlash.SetComponent(target, component.HitFlashComponent{
		Remaining: parameter.CombatHitFlashDuration,
		Duration:  parameter.CombatHitFlashDuration,
	})

	// Knockback pushes the target away from the attacker
	dir := 1.0
	if kin, ok := s.world.Components.Kinetic.GetComponent(target); ok {
		if kin.X < p.AttackerX {
			dir = -1.0
		}
	}
	s.world.Components.Knockback.SetComponent(target, component.KnockbackComponent{
		VelX:  dir * parameter.CombatKnockbackSpeed,
		Decay: parameter.CombatKnockbackDecay,
	})
}
