package actor

import (
	"time"

	"github.com/lixenwraith/desert-brawler/parameter"
)

// punchState is the first strike of the punch chain
type punchState struct{}

func (punchState) React(in InputContext) Transition {
	// Follow-up attacks are accepted only past the halfway frame,
	// preventing instant re-trigger chains
	if !in.pastHalf() {
		return None()
	}

	// Same control chains immediately: punch does not lock its own trigger
	if in.Punch {
		return To(StatePunchCombo)
	}

	// The opposing control is deferred to animation completion
	if in.Kick {
		return QueueCombo(StatePunchKickCombo)
	}

	return None()
}

func (punchState) Advance(ctx UpdateContext) Transition {
	if ctx.AnimationFinished {
		return To(StateIdle)
	}
	return None()
}

func (punchState) Animation() AnimationDescriptor {
	return AnimationDescriptor{
		Sheet:         "player/punch",
		FirstFrame:    1,
		LastFrame:     12,
		FrameDuration: 30 * time.Millisecond,
	}
}

func (punchState) Motion() MotionProfile {
	return MotionProfile{LocksMovement: true}
}

func (punchState) LocksInput() bool { return true }
func (punchState) Attacking() bool  { return true }
func (punchState) Damage() int      { return parameter.CombatDamagePunch }

// punchComboState is the second punch of the chain
type punchComboState struct{}

func (punchComboState) React(in InputContext) Transition {
	// The kick control chains into the cross-strike finisher
	if in.Kick && in.pastHalf() {
		return QueueCombo(StatePunchKickCombo)
	}
	return None()
}

func (punchComboState) Advance(ctx UpdateContext) Transition {
	if ctx.AnimationFinished {
		return To(StateIdle)
	}
	return None()
}

func (punchComboState) Animation() AnimationDescriptor {
	return AnimationDescriptor{
		Sheet:         "player/punch-combo",
		FirstFrame:    1,
		LastFrame:     7,
		FrameDuration: 50 * time.Millisecond,
	}
}

func (punchComboState) Motion() MotionProfile {
	return MotionProfile{LocksMovement: true}
}

func (punchComboState) LocksInput() bool { return true }
func (punchComboState) Attacking() bool  { return true }
func (punchComboState) Damage() int      { return parameter.CombatDamagePunch }
