package system

import (
	"github.com/lixenwraith/desert-brawler/actor"
	"github.com/lixenwraith/desert-brawler/component"
	"github.com/lixenwraith/desert-brawler/core"
	"github.com/lixenwraith/desert-brawler/engine"
	"github.com/lixenwraith/desert-brawler/event"
	"github.com/lixenwraith/desert-brawler/parameter"
)

// HitboxSystem places the actor's attack hitbox, activates it during
// the middle third of the attack animation, and emits damage events
// for hitbox overlaps and pursuer contact
//
// Emitted events are drained by DamageSystem later in the same tick
type HitboxSystem struct {
	world *engine.World
}

func NewHitboxSystem(world *engine.World) engine.System {
	s := &HitboxSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *HitboxSystem) Init() {}

// Name returns system's name
func (s *HitboxSystem) Name() string {
	return "hitbox"
}

func (s *HitboxSystem) Priority() int {
	return parameter.PriorityHitbox
}

func (s *HitboxSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *HitboxSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *HitboxSystem) Update() {
	res := s.world.Resources
	if res.Round.GameOver {
		return
	}

	e := res.Game.Actor
	ac, ok := s.world.Components.Actor.GetComponent(e)
	if !ok {
		return
	}
	kin, ok := s.world.Components.Kinetic.GetComponent(e)
	if !ok {
		return
	}

	st := actor.Lookup(ac.State)

	if st.Attacking() {
		s.placeHitbox(e, ac.State)
		if hb, ok := s.world.Components.Hitbox.GetComponent(e); ok && hb.Active {
			s.strikeOverlaps(e, kin, hb, st.Damage())
		}
	} else {
		s.world.Components.Hitbox.RemoveEntity(e)
	}

	s.contactDamage(e, kin)
}

// placeHitbox sizes and activates the hitbox for the current attack
// The active window is the middle third of the animation
func (s *HitboxSystem) placeHitbox(e core.Entity, state actor.StateID) {
	anim, ok := s.world.Components.Animation.GetComponent(e)
	if !ok {
		return
	}
	facing, _ := s.world.Components.Facing.GetComponent(e)

	var w, h float64
	switch state {
	case actor.StatePunch, actor.StatePunchCombo:
		w, h = 60, 40
	case actor.StateKick, actor.StateKickCombo, actor.StatePunchKickCombo:
		w, h = 80, 50
	case actor.StateJumpPunch:
		w, h = 50, 50
	case actor.StateJumpKick:
		w, h = 70, 60
	default:
		s.world.Components.Hitbox.RemoveEntity(e)
		return
	}

	total := anim.TotalFrames()
	progress := anim.Frame - anim.First
	active := progress >= total/3 && progress < 2*total/3

	s.world.Components.Hitbox.SetComponent(e, component.HitboxComponent{
		OffsetX: facing.Direction.Sign() * parameter.CombatHitboxReach,
		Width:   w,
		Height:  h,
		Active:  active,
	})
}

// strikeOverlaps emits one damage event per overlapping pursuer
// Targets already struck by this activation are filtered by DamageSystem
func (s *HitboxSystem) strikeOverlaps(attacker core.Entity, kin component.KineticComponent, hb component.HitboxComponent, damage int) {
	attackRect := core.Rect{
		CX: kin.X + hb.OffsetX,
		CY: kin.Y + hb.OffsetY,
		HW: hb.Width / 2,
		HH: hb.Height / 2,
	}

	for _, target := range s.world.Components.Pursuer.GetAllEntities() {
		// Disabled pursuers cannot be struck again
		if s.world.Components.Stun.HasEntity(target) {
			continue
		}
		if s.world.Components.Death.HasEntity(target) {
			continue
		}

		tkin, ok := s.world.Components.Kinetic.GetComponent(target)
		if !ok {
			continue
		}
		hurt, ok := s.world.Components.Hurtbox.GetComponent(target)
		if !ok {
			continue
		}

		hurtRect := core.Rect{
			CX: tkin.X,
			CY: tkin.Y,
			HW: hurt.Width / 2,
			HH: hurt.Height / 2,
		}

		if attackRect.Overlaps(hurtRect) {
			s.world.Resources.Damage.Queue.Push(event.GameEvent{
				Type: event.EventDamage,
				Payload: &event.DamagePayload{
					Attacker:  attacker,
					Target:    target,
					Damage:    damage,
					AttackerX: kin.X,
				},
				Frame: s.world.Resources.Time.FrameNumber,
			})
		}
	}
}

// contactDamage emits proximity damage from every able pursuer
// Repeat contact is throttled by the target's immunity window
func (s *HitboxSystem) contactDamage(actorEntity core.Entity, kin component.KineticComponent) {
	for _, p := range s.world.Components.Pursuer.GetAllEntities() {
		// Stunned pursuers deal no contact damage
		if s.world.Components.Stun.HasEntity(p) {
			continue
		}
		if s.world.Components.Death.HasEntity(p) {
			continue
		}

		pkin, ok := s.world.Components.Kinetic.GetComponent(p)
		if !ok {
			continue
		}

		if core.Distance(kin.X, kin.Y, pkin.X, pkin.Y) < parameter.CombatProximityRange {
			s.world.Resources.Damage.Queue.Push(event.GameEvent{
				Type: event.EventDamage,
				Payload: &event.DamagePayload{
					Attacker:  p,
					Target:    actorEntity,
					Damage:    parameter.CombatDamageContact,
					AttackerX: pkin.X,
				},
				Frame: s.world.Resources.Time.FrameNumber,
			})
		}
	}
}
