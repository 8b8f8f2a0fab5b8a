package system

import (
	"github.com/lixenwraith/desert-brawler/engine"
	"github.com/lixenwraith/desert-brawler/event"
	"github.com/lixenwraith/desert-brawler/parameter"
)

// FlashSystem manages the lifecycle of hit-flash feedback
type FlashSystem struct {
	world *engine.World
}

func NewFlashSystem(world *engine.World) engine.System {
	s := &FlashSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *FlashSystem) Init() {}

// Name returns system's name
func (s *FlashSystem) Name() string {
	return "flash"
}

func (s *FlashSystem) Priority() int {
	return parameter.PriorityFlash
}

func (s *FlashSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *FlashSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *FlashSystem) Update() {
	res := s.world.Resources
	if res.Round.GameOver {
		return
	}

	dt := res.Time.DeltaTime
	for _, e := range s.world.Components.HitFlash.GetAllEntities() {
		flash, ok := s.world.Components.HitFlash.GetComponent(e)
		if !ok {
			continue
		}

		flash.Remaining -= dt
		if flash.Remaining <= 0 {
			s.world.Components.HitFlash.RemoveEntity(e)
		} else {
			s.world.Components.HitFlash.SetComponent(e, flash)
		}
	}
}
