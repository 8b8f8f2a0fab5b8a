package system

import (
	"github.com/lixenwraith/desert-brawler/actor"
	"github.com/lixenwraith/desert-brawler/component"
	"github.com/lixenwraith/desert-brawler/core"
	"github.com/lixenwraith/desert-brawler/engine"
	"github.com/lixenwraith/desert-brawler/parameter"
)

// applyActorState switches the actor to target and applies the state's
// entry effects: animation refresh, attack bookkeeping and jump physics
// Both the input and state systems transition through this single path
func applyActorState(w *engine.World, e core.Entity, target actor.StateID) {
	ac, ok := w.Components.Actor.GetComponent(e)
	if !ok {
		return
	}

	ac.State = target
	st := actor.Lookup(target)

	switch target {
	case actor.StateJump:
		if kin, ok := w.Components.Kinetic.GetComponent(e); ok {
			kin.VelY = parameter.ActorJumpForce
			w.Components.Kinetic.SetComponent(e, kin)
		}
		// A fresh takeoff restores the one aerial attack
		ac.UsedAerialAttack = false

	case actor.StateFall:
		if kin, ok := w.Components.Kinetic.GetComponent(e); ok {
			if kin.VelY > 0 {
				kin.VelY = 0
				w.Components.Kinetic.SetComponent(e, kin)
			}
		}

	case actor.StateJumpPunch, actor.StateJumpKick:
		ac.UsedAerialAttack = true
	}

	// Each attack activation strikes every target at most once and
	// restarts the follow-up grace period
	if st.Attacking() {
		if track, ok := w.Components.HitTrack.GetComponent(e); ok {
			track.Clear()
			w.Components.HitTrack.SetComponent(e, track)
		}
		if combo, ok := w.Components.Combo.GetComponent(e); ok {
			combo.Remaining = parameter.ComboWindowDuration
			w.Components.Combo.SetComponent(e, combo)
		}
	}

	w.Components.Actor.SetComponent(e, ac)

	desc := st.Animation()
	w.Components.Animation.SetComponent(e, component.AnimationComponent{
		Sheet:         desc.Sheet,
		First:         desc.FirstFrame,
		Last:          desc.LastFrame,
		Frame:         desc.FirstFrame,
		FrameDuration: desc.FrameDuration,
	})
}
