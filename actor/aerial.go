package actor

import (
	"time"

	"github.com/lixenwraith/desert-brawler/parameter"
)

// aerialAdvance is the shared completion rule of airborne attacks:
// keep falling when airborne, land when ground was reached mid-attack
func aerialAdvance(ctx UpdateContext) Transition {
	if !ctx.AnimationFinished {
		return None()
	}
	if !ctx.AtGround {
		return To(StateFall)
	}
	return To(StateLand)
}

// jumpPunchState is the airborne punch
type jumpPunchState struct{}

func (jumpPunchState) React(InputContext) Transition {
	// No chaining in the air, steering stays with the movement phase
	return None()
}

func (jumpPunchState) Advance(ctx UpdateContext) Transition {
	return aerialAdvance(ctx)
}

func (jumpPunchState) Animation() AnimationDescriptor {
	return AnimationDescriptor{
		Sheet:         "player/jump-punch",
		FirstFrame:    1,
		LastFrame:     17,
		FrameDuration: 20 * time.Millisecond,
	}
}

func (jumpPunchState) Motion() MotionProfile {
	// Height freezes during the attack, steering stays available
	return MotionProfile{AirControl: true}
}

func (jumpPunchState) LocksInput() bool { return true }
func (jumpPunchState) Attacking() bool  { return true }
func (jumpPunchState) Damage() int      { return parameter.CombatDamageAerial }

// jumpKickState is the airborne kick
type jumpKickState struct{}

func (jumpKickState) React(InputContext) Transition {
	return None()
}

func (jumpKickState) Advance(ctx UpdateContext) Transition {
	return aerialAdvance(ctx)
}

func (jumpKickState) Animation() AnimationDescriptor {
	return AnimationDescriptor{
		Sheet:         "player/jump-kick",
		FirstFrame:    1,
		LastFrame:     19,
		FrameDuration: 20 * time.Millisecond,
	}
}

func (jumpKickState) Motion() MotionProfile {
	return MotionProfile{AirControl: true}
}

func (jumpKickState) LocksInput() bool { return true }
func (jumpKickState) Attacking() bool  { return true }
func (jumpKickState) Damage() int      { return parameter.CombatDamageAerial }
