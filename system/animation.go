package system

import (
	"github.com/lixenwraith/desert-brawler/engine"
	"github.com/lixenwraith/desert-brawler/event"
	"github.com/lixenwraith/desert-brawler/parameter"
)

// AnimationSystem advances every animation by accumulated tick time
// and raises the Finished flag on the tick the playback wraps
// The flag survives until the next animation pass so the state system
// observes completion at the start of the following tick
type AnimationSystem struct {
	world *engine.World
}

func NewAnimationSystem(world *engine.World) engine.System {
	s := &AnimationSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AnimationSystem) Init() {}

// Name returns system's name
func (s *AnimationSystem) Name() string {
	return "animation"
}

func (s *AnimationSystem) Priority() int {
	return parameter.PriorityAnimation
}

func (s *AnimationSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *AnimationSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *AnimationSystem) Update() {
	res := s.world.Resources
	if res.Round.GameOver {
		return
	}

	dt := res.Time.DeltaTime

	for _, e := range s.world.Components.Animation.GetAllEntities() {
		anim, ok := s.world.Components.Animation.GetComponent(e)
		if !ok {
			continue
		}

		anim.Finished = false
		anim.Acc += dt
		for anim.Acc >= anim.FrameDuration {
			anim.Acc -= anim.FrameDuration
			anim.Frame++
			if anim.Frame > anim.Last {
				anim.Frame = anim.First
				anim.Finished = true
			}
		}

		s.world.Components.Animation.SetComponent(e, anim)
	}
}
