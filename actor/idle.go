package actor

import "time"

// idleState is the stationary resting variant
type idleState struct{}

func (idleState) React(in InputContext) Transition {
	// Attack inputs have highest priority
	if in.Punch {
		return To(StatePunch)
	}
	if in.Kick {
		return To(StateKick)
	}

	if in.Jump {
		return To(StateJump)
	}

	// Movement inputs (lower priority)
	if in.Left || in.Right {
		if in.Walk {
			return To(StateIdleToWalk)
		}
		return To(StateIdleToRun)
	}

	return None()
}

func (idleState) Advance(UpdateContext) Transition {
	// Idle does not auto-transition
	return None()
}

func (idleState) Animation() AnimationDescriptor {
	return AnimationDescriptor{
		Sheet:         "player/idle",
		FirstFrame:    1,
		LastFrame:     23,
		FrameDuration: 120 * time.Millisecond,
	}
}

func (idleState) Motion() MotionProfile {
	return MotionProfile{}
}

func (idleState) LocksInput() bool { return false }
func (idleState) Attacking() bool  { return false }
func (idleState) Damage() int      { return 0 }
