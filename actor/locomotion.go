package actor

import (
	"time"

	"github.com/lixenwraith/desert-brawler/parameter"
)

// groundReact is the shared reaction of the locomotion variants:
// attacks interrupt, jump interrupts, releasing movement returns to idle
func groundReact(in InputContext) Transition {
	if in.Punch {
		return To(StatePunch)
	}
	if in.Kick {
		return To(StateKick)
	}
	if in.Jump {
		return To(StateJump)
	}
	if !in.Left && !in.Right {
		return To(StateIdle)
	}
	return None()
}

// idleToWalkState is the transitional wind-up into walking
type idleToWalkState struct{}

func (idleToWalkState) React(in InputContext) Transition {
	return groundReact(in)
}

func (idleToWalkState) Advance(ctx UpdateContext) Transition {
	if ctx.AnimationFinished {
		return To(StateWalk)
	}
	return None()
}

func (idleToWalkState) Animation() AnimationDescriptor {
	return AnimationDescriptor{
		Sheet:         "player/idle-to-walk",
		FirstFrame:    1,
		LastFrame:     6,
		FrameDuration: 60 * time.Millisecond,
	}
}

func (idleToWalkState) Motion() MotionProfile {
	return MotionProfile{GroundSpeed: parameter.ActorWalkSpeed}
}

func (idleToWalkState) LocksInput() bool { return false }
func (idleToWalkState) Attacking() bool  { return false }
func (idleToWalkState) Damage() int      { return 0 }

// idleToRunState is the transitional wind-up into running
type idleToRunState struct{}

func (idleToRunState) React(in InputContext) Transition {
	return groundReact(in)
}

func (idleToRunState) Advance(ctx UpdateContext) Transition {
	if ctx.AnimationFinished {
		return To(StateRun)
	}
	return None()
}

func (idleToRunState) Animation() AnimationDescriptor {
	return AnimationDescriptor{
		Sheet:         "player/idle-to-run",
		FirstFrame:    1,
		LastFrame:     7,
		FrameDuration: 60 * time.Millisecond,
	}
}

func (idleToRunState) Motion() MotionProfile {
	return MotionProfile{GroundSpeed: parameter.ActorRunSpeed}
}

func (idleToRunState) LocksInput() bool { return false }
func (idleToRunState) Attacking() bool  { return false }
func (idleToRunState) Damage() int      { return 0 }

// walkState is steady slow locomotion
type walkState struct{}

func (walkState) React(in InputContext) Transition {
	return groundReact(in)
}

func (walkState) Advance(UpdateContext) Transition {
	return None()
}

func (walkState) Animation() AnimationDescriptor {
	return AnimationDescriptor{
		Sheet:         "player/walk",
		FirstFrame:    1,
		LastFrame:     11,
		FrameDuration: 90 * time.Millisecond,
	}
}

func (walkState) Motion() MotionProfile {
	return MotionProfile{GroundSpeed: parameter.ActorWalkSpeed}
}

func (walkState) LocksInput() bool { return false }
func (walkState) Attacking() bool  { return false }
func (walkState) Damage() int      { return 0 }

// runState is steady fast locomotion
type runState struct{}

func (runState) React(in InputContext) Transition {
	return groundReact(in)
}

func (runState) Advance(UpdateContext) Transition {
	return None()
}

func (runState) Animation() AnimationDescriptor {
	return AnimationDescriptor{
		Sheet:         "player/run",
		FirstFrame:    1,
		LastFrame:     7,
		FrameDuration: 70 * time.Millisecond,
	}
}

func (runState) Motion() MotionProfile {
	return MotionProfile{GroundSpeed: parameter.ActorRunSpeed}
}

func (runState) LocksInput() bool { return false }
func (runState) Attacking() bool  { return false }
func (runState) Damage() int      { return 0 }
