package actor

import "fmt"

// registry maps every StateID to its behavior implementation
var registry = [StateCount]State{
	StateIdle:           idleState{},
	StateIdleToWalk:     idleToWalkState{},
	StateIdleToRun:      idleToRunState{},
	StateWalk:           walkState{},
	StateRun:            runState{},
	StateJump:           jumpState{},
	StateFall:           fallState{},
	StateLand:           landState{},
	StatePunch:          punchState{},
	StatePunchCombo:     punchComboState{},
	StateKick:           kickState{},
	StateKickCombo:      kickComboState{},
	StatePunchKickCombo: punchKickComboState{},
	StateJumpPunch:      jumpPunchState{},
	StateJumpKick:       jumpKickState{},
}

var stateNames = [StateCount]string{
	StateIdle:           "Idle",
	StateIdleToWalk:     "IdleToWalk",
	StateIdleToRun:      "IdleToRun",
	StateWalk:           "Walk",
	StateRun:            "Run",
	StateJump:           "Jump",
	StateFall:           "Fall",
	StateLand:           "Land",
	StatePunch:          "Punch",
	StatePunchCombo:     "PunchCombo",
	StateKick:           "Kick",
	StateKickCombo:      "KickCombo",
	StatePunchKickCombo: "PunchKickCombo",
	StateJumpPunch:      "JumpPunch",
	StateJumpKick:       "JumpKick",
}

func init() {
	for id := StateID(0); id < StateCount; id++ {
		if registry[id] == nil {
			panic(fmt.Sprintf("actor: state %d has no implementation", id))
		}
	}
}

// Lookup returns the behavior implementation for id
func Lookup(id StateID) State {
	return registry[id]
}

// Name returns the display name of id
func Name(id StateID) string {
	if id >= StateCount {
		return fmt.Sprintf("StateID(%d)", id)
	}
	return stateNames[id]
}

// Airborne reports whether id is an in-air state
func Airborne(id StateID) bool {
	switch id {
	case StateJump, StateFall, StateJumpPunch, StateJumpKick:
		return true
	}
	return false
}

// LocksInput reports whether id ignores non-combo controls
func LocksInput(id StateID) bool {
	return registry[id].LocksInput()
}
