package actor

import "time"

// StateID identifies one variant of the actor behavior machine
// The set is closed; registry.go asserts every variant is implemented
type StateID uint8

const (
	StateIdle StateID = iota
	StateIdleToWalk
	StateIdleToRun
	StateWalk
	StateRun
	StateJump
	StateFall
	StateLand
	StatePunch
	StatePunchCombo
	StateKick
	StateKickCombo
	StatePunchKickCombo
	StateJumpPunch
	StateJumpKick

	// StateCount is the number of variants, keep last
	StateCount
)

// TransitionKind discriminates the three reaction outcomes
type TransitionKind uint8

const (
	// TransitionNone keeps the current state
	TransitionNone TransitionKind = iota

	// TransitionTo switches state immediately
	TransitionTo

	// TransitionQueueCombo defers the switch until the current
	// animation naturally completes, subject to the combo window
	TransitionQueueCombo
)

// Transition is the result of React or Advance
type Transition struct {
	Kind   TransitionKind
	Target StateID
}

// None reports no state change
func None() Transition {
	return Transition{Kind: TransitionNone}
}

// To requests an immediate transition
func To(target StateID) Transition {
	return Transition{Kind: TransitionTo, Target: target}
}

// QueueCombo requests a deferred combo transition
func QueueCombo(target StateID) Transition {
	return Transition{Kind: TransitionQueueCombo, Target: target}
}

// InputContext is the per-tick control snapshot a state reacts to
type InputContext struct {
	// Held movement controls
	Left, Right bool

	// Walk is the movement modifier (walk instead of run)
	Walk bool

	// Edge-triggered controls, true only on the tick they were pressed
	Jump  bool
	Punch bool
	Kick  bool

	// UsedAerialAttack is true once an airborne attack was spent
	// during the current airborne period
	UsedAerialAttack bool

	// Animation progress of the current state
	Frame       int
	TotalFrames int
}

// pastHalf reports whether animation progress allows a follow-up attack
func (in InputContext) pastHalf() bool {
	return in.Frame >= in.TotalFrames/2
}

// UpdateContext carries the timed/physical conditions Advance examines
type UpdateContext struct {
	// AnimationFinished is true on the tick the animation wrapped
	AnimationFinished bool

	// AtGround is true when the actor is at or below ground level
	AtGround bool

	// VelY is the current vertical velocity, positive is up
	VelY float64
}

// AnimationDescriptor is the presentation contract a state owns
type AnimationDescriptor struct {
	Sheet         string
	FirstFrame    int
	LastFrame     int
	FrameDuration time.Duration
}

// TotalFrames is the playable frame count (frame 0 of each sheet is blank)
func (a AnimationDescriptor) TotalFrames() int {
	return a.LastFrame + 1
}

// MotionProfile is the physics contract a state owns
type MotionProfile struct {
	// GroundSpeed when moving on the ground, 0 for non-moving states
	GroundSpeed float64

	// AirControl allows horizontal steering while airborne
	AirControl bool

	// Gravity applies vertical integration in this state
	Gravity bool

	// LocksMovement blocks directional movement input
	// Combo-trigger controls are still evaluated while locked
	LocksMovement bool
}

// State is the capability contract every variant implements
// All methods are pure functions of the variant and its context
type State interface {
	// React examines currently-pressed controls and yields a transition
	React(in InputContext) Transition

	// Advance examines timed/physical conditions and yields a transition
	Advance(ctx UpdateContext) Transition

	// Animation returns the sprite descriptor for this state
	Animation() AnimationDescriptor

	// Motion returns the physics profile for this state
	Motion() MotionProfile

	// LocksInput reports whether non-combo input is ignored
	LocksInput() bool

	// Attacking reports whether this state owns an active attack
	Attacking() bool

	// Damage is the fixed damage amount, 0 for non-attack states
	Damage() int
}
