package actor

import "testing"

func TestRegistryCoversEveryState(t *testing.T) {
	for id := StateID(0); id < StateCount; id++ {
		if Lookup(id) == nil {
			t.Errorf("Expected implementation for state %s, got nil", Name(id))
		}
	}
}

func TestStateNames(t *testing.T) {
	if Name(StateIdle) != "Idle" {
		t.Errorf("Expected Idle, got %s", Name(StateIdle))
	}
	if Name(StatePunchKickCombo) != "PunchKickCombo" {
		t.Errorf("Expected PunchKickCombo, got %s", Name(StatePunchKickCombo))
	}
	if Name(StateCount) != "StateID(15)" {
		t.Errorf("Expected fallback name for out-of-range id, got %s", Name(StateCount))
	}
}

func TestAirborneStates(t *testing.T) {
	airborne := map[StateID]bool{
		StateJump:      true,
		StateFall:      true,
		StateJumpPunch: true,
		StateJumpKick:  true,
	}

	for id := StateID(0); id < StateCount; id++ {
		if Airborne(id) != airborne[id] {
			t.Errorf("Airborne(%s) = %v, expected %v", Name(id), Airborne(id), airborne[id])
		}
	}
}

func TestAttackStatesCarryDamage(t *testing.T) {
	tests := []struct {
		id     StateID
		damage int
	}{
		{StatePunch, 2},
		{StatePunchCombo, 2},
		{StateKick, 3},
		{StateKickCombo, 3},
		{StatePunchKickCombo, 3},
		{StateJumpPunch, 6},
		{StateJumpKick, 6},
	}

	for _, tt := range tests {
		st := Lookup(tt.id)
		if !st.Attacking() {
			t.Errorf("Expected %s to be attacking", Name(tt.id))
		}
		if st.Damage() != tt.damage {
			t.Errorf("Expected %s damage %d, got %d", Name(tt.id), tt.damage, st.Damage())
		}
		if !st.LocksInput() {
			t.Errorf("Expected %s to lock input", Name(tt.id))
		}
	}
}

func TestNonAttackStatesDealNoDamage(t *testing.T) {
	for id := StateID(0); id < StateCount; id++ {
		st := Lookup(id)
		if !st.Attacking() && st.Damage() != 0 {
			t.Errorf("Expected %s damage 0, got %d", Name(id), st.Damage())
		}
	}
}

func TestAnimationDescriptors(t *testing.T) {
	for id := StateID(0); id < StateCount; id++ {
		desc := Lookup(id).Animation()
		if desc.Sheet == "" {
			t.Errorf("Expected sheet name for %s", Name(id))
		}
		if desc.FirstFrame != 1 {
			t.Errorf("Expected %s to start at frame 1, got %d", Name(id), desc.FirstFrame)
		}
		if desc.LastFrame < desc.FirstFrame {
			t.Errorf("Expected %s last frame >= first, got %d", Name(id), desc.LastFrame)
		}
		if desc.FrameDuration <= 0 {
			t.Errorf("Expected positive frame duration for %s", Name(id))
		}
	}
}
