package system

import (
	"math"

	"github.com/lixenwraith/desert-brawler/core"
	"github.com/lixenwraith/desert-brawler/engine"
	"github.com/lixenwraith/desert-brawler/event"
	"github.com/lixenwraith/desert-brawler/parameter"
)

// PursuerSystem steers every pursuer toward the actor
// Horizontal homing always runs, vertical homing stops inside a dead
// zone, and facing only flips outside a hysteresis band so pursuers
// hovering near the actor do not jitter
type PursuerSystem struct {
	world *engine.World
}

func NewPursuerSystem(world *engine.World) engine.System {
	s := &PursuerSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *PursuerSystem) Init() {}

// Name returns system's name
func (s *PursuerSystem) Name() string {
	return "pursuer"
}

func (s *PursuerSystem) Priority() int {
	return parameter.PriorityPursuer
}

func (s *PursuerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *PursuerSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *PursuerSystem) Update() {
	res := s.world.Resources
	if res.Round.GameOver {
		return
	}

	target, ok := s.world.Components.Kinetic.GetComponent(res.Game.Actor)
	if !ok {
		return
	}

	dt := res.Time.DeltaTime.Seconds()

	for _, e := range s.world.Components.Pursuer.GetAllEntities() {
		// Stunned pursuers are frozen in place
		if s.world.Components.Stun.HasEntity(e) {
			continue
		}
		if s.world.Components.Death.HasEntity(e) {
			continue
		}

		kin, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}

		dx := target.X - kin.X
		dy := target.Y - kin.Y

		if dx != 0 {
			kin.X += sign(dx) * parameter.PursuerHorizontalSpeed * dt
		}
		if math.Abs(dy) > parameter.PursuerVerticalDeadZone {
			kin.Y += sign(dy) * parameter.PursuerVerticalSpeed * dt
		}

		s.world.Components.Kinetic.SetComponent(e, kin)
		s.updateFacing(e, dx)
	}
}

// updateFacing flips facing only once the actor is clearly on the
// other side of the hysteresis band
func (s *PursuerSystem) updateFacing(e core.Entity, dx float64) {
	if math.Abs(dx) <= parameter.PursuerFacingHysteresis {
		return
	}

	facing, ok := s.world.Components.Facing.GetComponent(e)
	if !ok {
		return
	}

	want := core.FacingRight
	if dx < 0 {
		want = core.FacingLeft
	}
	if facing.Direction != want {
		facing.Direction = want
		s.world.Components.Facing.SetComponent(e, facing)
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}
