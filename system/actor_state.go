package system

import (
	"github.com/lixenwraith/desert-brawler/actor"
	"github.com/lixenwraith/desert-brawler/engine"
	"github.com/lixenwraith/desert-brawler/event"
	"github.com/lixenwraith/desert-brawler/parameter"
)

// ActorStateSystem advances the actor's behavior machine on timed and
// physical conditions: animation completion, jump apex and landing
// It also consumes the deferred combo follow-up when an attack ends
type ActorStateSystem struct {
	world *engine.World
}

func NewActorStateSystem(world *engine.World) engine.System {
	s := &ActorStateSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *ActorStateSystem) Init() {}

// Name returns system's name
func (s *ActorStateSystem) Name() string {
	return "actor_state"
}

func (s *ActorStateSystem) Priority() int {
	return parameter.PriorityActorState
}

func (s *ActorStateSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *ActorStateSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *ActorStateSystem) Update() {
	res := s.world.Resources
	if res.Round.GameOver {
		return
	}

	e := res.Game.Actor
	ac, ok := s.world.Components.Actor.GetComponent(e)
	if !ok {
		return
	}

	anim, _ := s.world.Components.Animation.GetComponent(e)
	kin, _ := s.world.Components.Kinetic.GetComponent(e)

	// A finished attack hands over to the deferred follow-up if the
	// combo window is still open, otherwise the queue entry is dropped
	if anim.Finished {
		if combo, ok := s.world.Components.Combo.GetComponent(e); ok && combo.HasQueued {
			target := combo.Queued
			combo.HasQueued = false
			s.world.Components.Combo.SetComponent(e, combo)

			if combo.Remaining > 0 && actor.Lookup(ac.State).Attacking() {
				applyActorState(s.world, e, target)
				return
			}
		}
	}

	ctx := actor.UpdateContext{
		AnimationFinished: anim.Finished,
		AtGround:          kin.Y <= ac.GroundY,
		VelY:              kin.VelY,
	}

	tr := actor.Lookup(ac.State).Advance(ctx)
	if tr.Kind == actor.TransitionTo {
		applyActorState(s.world, e, tr.Target)
	}
}
