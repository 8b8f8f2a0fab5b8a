package system

import (
	"github.com/lixenwraith/desert-brawler/actor"
	"github.com/lixenwraith/desert-brawler/engine"
	"github.com/lixenwraith/desert-brawler/event"
	"github.com/lixenwraith/desert-brawler/parameter"
)

// ActorInputSystem feeds the control snapshot to the actor's active state
// and manages the combo window and follow-up queueing
type ActorInputSystem struct {
	world *engine.World
}

func NewActorInputSystem(world *engine.World) engine.System {
	s := &ActorInputSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *ActorInputSystem) Init() {}

// Name returns system's name
func (s *ActorInputSystem) Name() string {
	return "actor_input"
}

func (s *ActorInputSystem) Priority() int {
	return parameter.PriorityActorInput
}

func (s *ActorInputSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *ActorInputSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *ActorInputSystem) Update() {
	res := s.world.Resources
	if res.Round.GameOver {
		return
	}

	e := res.Game.Actor
	ac, ok := s.world.Components.Actor.GetComponent(e)
	if !ok {
		return
	}

	dt := res.Time.DeltaTime

	// The combo window counts down regardless of what else happens
	combo, hasCombo := s.world.Components.Combo.GetComponent(e)
	if hasCombo && combo.Remaining > 0 {
		combo.Remaining -= dt
		if combo.Remaining <= 0 {
			combo.Remaining = 0
			// An expired window abandons any deferred follow-up
			combo.HasQueued = false
		}
		s.world.Components.Combo.SetComponent(e, combo)
	}

	// Stun suppresses all control input
	if s.world.Components.Stun.HasEntity(e) {
		return
	}

	st := actor.Lookup(ac.State)
	in := res.Input

	anim, _ := s.world.Components.Animation.GetComponent(e)

	ctx := actor.InputContext{
		Left:             in.Left,
		Right:            in.Right,
		Walk:             in.Walk,
		Jump:             in.Jump,
		Punch:            in.Punch,
		Kick:             in.Kick,
		UsedAerialAttack: ac.UsedAerialAttack,
		Frame:            anim.Frame,
		TotalFrames:      anim.TotalFrames(),
	}

	if st.LocksInput() {
		// Locked states only listen for combo follow-ups, and only
		// while the window from the previous attack input is open
		if !hasCombo || combo.Remaining <= 0 {
			return
		}
		ctx.Left, ctx.Right, ctx.Walk, ctx.Jump = false, false, false, false
	}

	tr := st.React(ctx)

	switch tr.Kind {
	case actor.TransitionTo:
		applyActorState(s.world, e, tr.Target)

	case actor.TransitionQueueCombo:
		combo.Queued = tr.Target
		combo.HasQueued = true
		combo.Remaining = parameter.ComboWindowDuration
		s.world.Components.Combo.SetComponent(e, combo)
	}
}
