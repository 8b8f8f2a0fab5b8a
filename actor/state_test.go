package actor

import "testing"

// atFrame builds an input context at the given animation progress
func atFrame(id StateID, frame int) InputContext {
	return InputContext{
		Frame:       frame,
		TotalFrames: Lookup(id).Animation().TotalFrames(),
	}
}

func halfFrame(id StateID) int {
	return Lookup(id).Animation().TotalFrames() / 2
}

func TestIdleReactions(t *testing.T) {
	st := Lookup(StateIdle)

	tests := []struct {
		name   string
		in     InputContext
		kind   TransitionKind
		target StateID
	}{
		{"punch", InputContext{Punch: true}, TransitionTo, StatePunch},
		{"kick", InputContext{Kick: true}, TransitionTo, StateKick},
		{"jump", InputContext{Jump: true}, TransitionTo, StateJump},
		{"run right", InputContext{Right: true}, TransitionTo, StateIdleToRun},
		{"walk left", InputContext{Left: true, Walk: true}, TransitionTo, StateIdleToWalk},
		{"nothing", InputContext{}, TransitionNone, 0},
	}

	for _, tt := range tests {
		tr := st.React(tt.in)
		if tr.Kind != tt.kind {
			t.Errorf("%s: expected kind %d, got %d", tt.name, tt.kind, tr.Kind)
		}
		if tr.Kind == TransitionTo && tr.Target != tt.target {
			t.Errorf("%s: expected target %s, got %s", tt.name, Name(tt.target), Name(tr.Target))
		}
	}
}

func TestTransitionStatesCompleteIntoLocomotion(t *testing.T) {
	tests := []struct {
		from StateID
		to   StateID
	}{
		{StateIdleToWalk, StateWalk},
		{StateIdleToRun, StateRun},
		{StateLand, StateIdle},
		{StatePunch, StateIdle},
		{StatePunchCombo, StateIdle},
		{StateKick, StateIdle},
		{StateKickCombo, StateIdle},
		{StatePunchKickCombo, StateIdle},
	}

	for _, tt := range tests {
		tr := Lookup(tt.from).Advance(UpdateContext{AnimationFinished: true})
		if tr.Kind != TransitionTo || tr.Target != tt.to {
			t.Errorf("Expected %s to complete into %s, got %v", Name(tt.from), Name(tt.to), tr)
		}

		tr = Lookup(tt.from).Advance(UpdateContext{})
		if tr.Kind != TransitionNone {
			t.Errorf("Expected %s to hold while animating, got %v", Name(tt.from), tr)
		}
	}
}

func TestJumpDescendsAtApex(t *testing.T) {
	st := Lookup(StateJump)

	tr := st.Advance(UpdateContext{VelY: 120})
	if tr.Kind != TransitionNone {
		t.Errorf("Expected jump to hold while ascending, got %v", tr)
	}

	tr = st.Advance(UpdateContext{VelY: 0})
	if tr.Kind != TransitionTo || tr.Target != StateFall {
		t.Errorf("Expected fall at apex, got %v", tr)
	}
}

func TestFallLandsAtGround(t *testing.T) {
	st := Lookup(StateFall)

	tr := st.Advance(UpdateContext{AtGround: false, VelY: -300})
	if tr.Kind != TransitionNone {
		t.Errorf("Expected fall to hold while airborne, got %v", tr)
	}

	tr = st.Advance(UpdateContext{AtGround: true})
	if tr.Kind != TransitionTo || tr.Target != StateLand {
		t.Errorf("Expected land at ground, got %v", tr)
	}
}

func TestAerialAttacksOncePerAirbornePeriod(t *testing.T) {
	for _, id := range []StateID{StateJump, StateFall} {
		st := Lookup(id)

		tr := st.React(InputContext{Punch: true})
		if tr.Kind != TransitionTo || tr.Target != StateJumpPunch {
			t.Errorf("%s: expected jump punch, got %v", Name(id), tr)
		}

		tr = st.React(InputContext{Kick: true})
		if tr.Kind != TransitionTo || tr.Target != StateJumpKick {
			t.Errorf("%s: expected jump kick, got %v", Name(id), tr)
		}

		tr = st.React(InputContext{Punch: true, UsedAerialAttack: true})
		if tr.Kind != TransitionNone {
			t.Errorf("%s: expected spent aerial attack to be refused, got %v", Name(id), tr)
		}
	}
}

func TestAerialAttackCompletion(t *testing.T) {
	for _, id := range []StateID{StateJumpPunch, StateJumpKick} {
		st := Lookup(id)

		tr := st.Advance(UpdateContext{AnimationFinished: true, AtGround: false})
		if tr.Kind != TransitionTo || tr.Target != StateFall {
			t.Errorf("%s: expected fall after airborne completion, got %v", Name(id), tr)
		}

		tr = st.Advance(UpdateContext{AnimationFinished: true, AtGround: true})
		if tr.Kind != TransitionTo || tr.Target != StateLand {
			t.Errorf("%s: expected land after grounded completion, got %v", Name(id), tr)
		}

		tr = st.Advance(UpdateContext{AnimationFinished: false})
		if tr.Kind != TransitionNone {
			t.Errorf("%s: expected hold while animating, got %v", Name(id), tr)
		}
	}
}

func TestPunchReTriggerChainsImmediately(t *testing.T) {
	st := Lookup(StatePunch)
	half := halfFrame(StatePunch)

	in := atFrame(StatePunch, half)
	in.Punch = true
	tr := st.React(in)
	if tr.Kind != TransitionTo || tr.Target != StatePunchCombo {
		t.Errorf("Expected immediate punch combo at half progress, got %v", tr)
	}

	in = atFrame(StatePunch, half-1)
	in.Punch = true
	tr = st.React(in)
	if tr.Kind != TransitionNone {
		t.Errorf("Expected early re-trigger to be ignored, got %v", tr)
	}
}

func TestKickReTriggerChainsImmediately(t *testing.T) {
	st := Lookup(StateKick)
	half := halfFrame(StateKick)

	in := atFrame(StateKick, half)
	in.Kick = true
	tr := st.React(in)
	if tr.Kind != TransitionTo || tr.Target != StateKickCombo {
		t.Errorf("Expected immediate kick combo at half progress, got %v", tr)
	}
}

func TestCrossStrikeIsQueued(t *testing.T) {
	for _, id := range []StateID{StatePunch, StatePunchCombo} {
		st := Lookup(id)
		in := atFrame(id, halfFrame(id))
		in.Kick = true

		tr := st.React(in)
		if tr.Kind != TransitionQueueCombo || tr.Target != StatePunchKickCombo {
			t.Errorf("%s: expected queued cross strike, got %v", Name(id), tr)
		}
	}
}

func TestChainEndersAcceptNoFollowUps(t *testing.T) {
	for _, id := range []StateID{StateKickCombo, StatePunchKickCombo, StateJumpPunch, StateJumpKick} {
		in := atFrame(id, halfFrame(id))
		in.Punch = true
		in.Kick = true

		tr := Lookup(id).React(in)
		if tr.Kind != TransitionNone {
			t.Errorf("%s: expected no follow-up, got %v", Name(id), tr)
		}
	}
}

func TestLocomotionReleaseReturnsToIdle(t *testing.T) {
	for _, id := range []StateID{StateWalk, StateRun, StateIdleToWalk, StateIdleToRun} {
		tr := Lookup(id).React(InputContext{})
		if tr.Kind != TransitionTo || tr.Target != StateIdle {
			t.Errorf("%s: expected idle on release, got %v", Name(id), tr)
		}
	}
}

func TestMotionProfiles(t *testing.T) {
	if got := Lookup(StateWalk).Motion().GroundSpeed; got != 200 {
		t.Errorf("Expected walk speed 200, got %v", got)
	}
	if got := Lookup(StateRun).Motion().GroundSpeed; got != 600 {
		t.Errorf("Expected run speed 600, got %v", got)
	}

	for _, id := range []StateID{StateJump, StateFall} {
		m := Lookup(id).Motion()
		if !m.AirControl || !m.Gravity {
			t.Errorf("%s: expected air control with gravity, got %+v", Name(id), m)
		}
	}

	for _, id := range []StateID{StateJumpPunch, StateJumpKick} {
		m := Lookup(id).Motion()
		if !m.AirControl || m.Gravity {
			t.Errorf("%s: expected frozen height with steering, got %+v", Name(id), m)
		}
	}

	for _, id := range []StateID{StatePunch, StateKick, StateLand, StatePunchKickCombo} {
		if !Lookup(id).Motion().LocksMovement {
			t.Errorf("%s: expected movement lock", Name(id))
		}
	}
}
