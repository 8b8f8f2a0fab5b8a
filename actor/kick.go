package actor

import (
	"time"

	"github.com/lixenwraith/desert-brawler/parameter"
)

// kickState is the first strike of the kick chain
type kickState struct{}

func (kickState) React(in InputContext) Transition {
	// Same control chains immediately past the halfway frame
	if in.Kick && in.pastHalf() {
		return To(StateKickCombo)
	}
	return None()
}

func (kickState) Advance(ctx UpdateContext) Transition {
	if ctx.AnimationFinished {
		return To(StateIdle)
	}
	return None()
}

func (kickState) Animation() AnimationDescriptor {
	return AnimationDescriptor{
		Sheet:         "player/kick",
		FirstFrame:    1,
		LastFrame:     20,
		FrameDuration: 20 * time.Millisecond,
	}
}

func (kickState) Motion() MotionProfile {
	return MotionProfile{LocksMovement: true}
}

func (kickState) LocksInput() bool { return true }
func (kickState) Attacking() bool  { return true }
func (kickState) Damage() int      { return parameter.CombatDamageKick }

// kickComboState is the second kick of the chain, no further follow-ups
type kickComboState struct{}

func (kickComboState) React(InputContext) Transition {
	return None()
}

func (kickComboState) Advance(ctx UpdateContext) Transition {
	if ctx.AnimationFinished {
		return To(StateIdle)
	}
	return None()
}

func (kickComboState) Animation() AnimationDescriptor {
	return AnimationDescriptor{
		Sheet:         "player/kick-combo",
		FirstFrame:    1,
		LastFrame:     19,
		FrameDuration: 20 * time.Millisecond,
	}
}

func (kickComboState) Motion() MotionProfile {
	return MotionProfile{LocksMovement: true}
}

func (kickComboState) LocksInput() bool { return true }
func (kickComboState) Attacking() bool  { return true }
func (kickComboState) Damage() int      { return parameter.CombatDamageKick }
