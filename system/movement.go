package system

import (
	"github.com/lixenwraith/desert-brawler/actor"
	"github.com/lixenwraith/desert-brawler/component"
	"github.com/lixenwraith/desert-brawler/core"
	"github.com/lixenwraith/desert-brawler/engine"
	"github.com/lixenwraith/desert-brawler/event"
	"github.com/lixenwraith/desert-brawler/parameter"
)

// MovementSystem integrates actor physics from the active state's
// motion profile: ground speed, air steering, gravity and ground clamp
type MovementSystem struct {
	world *engine.World
}

func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *MovementSystem) Init() {}

// Name returns system's name
func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *MovementSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *MovementSystem) Update() {
	res := s.world.Resources
	if res.Round.GameOver {
		return
	}

	e := res.Game.Actor
	ac, ok := s.world.Components.Actor.GetComponent(e)
	if !ok {
		return
	}

	kin, ok := s.world.Components.Kinetic.GetComponent(e)
	if !ok {
		return
	}

	dt := res.Time.DeltaTime.Seconds()
	profile := actor.Lookup(ac.State).Motion()
	stunned := s.world.Components.Stun.HasEntity(e)

	// Directional input, suppressed while stunned or movement-locked
	dir := 0.0
	if !stunned && !profile.LocksMovement {
		in := res.Input
		if in.Left {
			dir -= 1
		}
		if in.Right {
			dir += 1
		}
	}

	if dir != 0 {
		facing := core.FacingRight
		if dir < 0 {
			facing = core.FacingLeft
		}
		s.world.Components.Facing.SetComponent(e, component.FacingComponent{Direction: facing})
	}

	switch {
	case profile.AirControl:
		kin.VelX = dir * parameter.ActorAirControlSpeed
	case profile.GroundSpeed > 0:
		kin.VelX = dir * profile.GroundSpeed
	default:
		kin.VelX = 0
	}

	kin.X += kin.VelX * dt

	if profile.Gravity {
		kin.VelY -= parameter.ActorGravity * dt
		kin.Y += kin.VelY * dt
		if kin.Y <= ac.GroundY {
			kin.Y = ac.GroundY
			if kin.VelY < 0 {
				kin.VelY = 0
			}
		}
	}

	s.world.Components.Kinetic.SetComponent(e, kin)
}
