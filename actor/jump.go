package actor

import "time"

// jumpState is the ascending phase of a jump
type jumpState struct{}

func (jumpState) React(in InputContext) Transition {
	// One aerial attack per airborne period
	if !in.UsedAerialAttack {
		if in.Punch {
			return To(StateJumpPunch)
		}
		if in.Kick {
			return To(StateJumpKick)
		}
	}

	// Horizontal steering is handled by the movement phase
	return None()
}

func (jumpState) Advance(ctx UpdateContext) Transition {
	// Peak reached, start descending
	if ctx.VelY <= 0 {
		return To(StateFall)
	}
	return None()
}

func (jumpState) Animation() AnimationDescriptor {
	return AnimationDescriptor{
		Sheet:         "player/jump",
		FirstFrame:    1,
		LastFrame:     26,
		FrameDuration: 50 * time.Millisecond,
	}
}

func (jumpState) Motion() MotionProfile {
	return MotionProfile{AirControl: true, Gravity: true}
}

func (jumpState) LocksInput() bool { return false }
func (jumpState) Attacking() bool  { return false }
func (jumpState) Damage() int      { return 0 }

// fallState is the descending phase of a jump
type fallState struct{}

func (fallState) React(in InputContext) Transition {
	if !in.UsedAerialAttack {
		if in.Punch {
			return To(StateJumpPunch)
		}
		if in.Kick {
			return To(StateJumpKick)
		}
	}
	return None()
}

func (fallState) Advance(ctx UpdateContext) Transition {
	if ctx.AtGround {
		return To(StateLand)
	}
	return None()
}

func (fallState) Animation() AnimationDescriptor {
	return AnimationDescriptor{
		Sheet:         "player/falling",
		FirstFrame:    1,
		LastFrame:     19,
		FrameDuration: 100 * time.Millisecond,
	}
}

func (fallState) Motion() MotionProfile {
	return MotionProfile{AirControl: true, Gravity: true}
}

func (fallState) LocksInput() bool { return false }
func (fallState) Attacking() bool  { return false }
func (fallState) Damage() int      { return 0 }

// landState plays the short landing recovery
type landState struct{}

func (landState) React(InputContext) Transition {
	// Landing cannot be interrupted
	return None()
}

func (landState) Advance(ctx UpdateContext) Transition {
	if ctx.AnimationFinished {
		return To(StateIdle)
	}
	return None()
}

func (landState) Animation() AnimationDescriptor {
	return AnimationDescriptor{
		Sheet:         "player/landing",
		FirstFrame:    1,
		LastFrame:     20,
		FrameDuration: 20 * time.Millisecond,
	}
}

func (landState) Motion() MotionProfile {
	return MotionProfile{LocksMovement: true}
}

func (landState) LocksInput() bool { return true }
func (landState) Attacking() bool  { return false }
func (landState) Damage() int      { return 0 }
