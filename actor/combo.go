package actor

import (
	"time"

	"github.com/lixenwraith/desert-brawler/parameter"
)

// punchKickComboState is the cross-strike finisher, it ends every chain
type punchKickComboState struct{}

func (punchKickComboState) React(InputContext) Transition {
	return None()
}

func (punchKickComboState) Advance(ctx UpdateContext) Transition {
	if ctx.AnimationFinished {
		return To(StateIdle)
	}
	return None()
}

func (punchKickComboState) Animation() AnimationDescriptor {
	return AnimationDescriptor{
		Sheet:         "player/punch-kick-combo",
		FirstFrame:    1,
		LastFrame:     16,
		FrameDuration: 30 * time.Millisecond,
	}
}

func (punchKickComboState) Motion() MotionProfile {
	return MotionProfile{LocksMovement: true}
}

func (punchKickComboState) LocksInput() bool { return true }
func (punchKickComboState) Attacking() bool  { return true }

// Damage is kick-grade, the finisher ends with a kick
func (punchKickComboState) Damage() int { return parameter.CombatDamageKick }
