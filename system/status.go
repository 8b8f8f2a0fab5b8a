package system

import (
	"math"

	"github.com/lixenwraith/desert-brawler/engine"
	"github.com/lixenwraith/desert-brawler/event"
	"github.com/lixenwraith/desert-brawler/parameter"
)

// StatusSystem counts down stun and immunity timers and integrates
// knockback impulses with proportional decay
type StatusSystem struct {
	world *engine.World
}

func NewStatusSystem(world *engine.World) engine.System {
	s := &StatusSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *StatusSystem) Init() {}

// Name returns system's name
func (s *StatusSystem) Name() string {
	return "status"
}

func (s *StatusSystem) Priority() int {
	return parameter.PriorityStatus
}

func (s *StatusSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *StatusSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *StatusSystem) Update() {
	res := s.world.Resources
	if res.Round.GameOver {
		return
	}

	dt := res.Time.DeltaTime

	for _, e := range s.world.Components.Stun.GetAllEntities() {
		stun, _ := s.world.Components.Stun.GetComponent(e)
		stun.Remaining -= dt
		if stun.Remaining <= 0 {
			s.world.Components.Stun.RemoveEntity(e)
		} else {
			s.world.Components.Stun.SetComponent(e, stun)
		}
	}

	for _, e := range s.world.Components.Invulnerable.GetAllEntities() {
		inv, _ := s.world.Components.Invulnerable.GetComponent(e)
		inv.Remaining -= dt
		if inv.Remaining <= 0 {
			s.world.Components.Invulnerable.RemoveEntity(e)
		} else {
			s.world.Components.Invulnerable.SetComponent(e, inv)
		}
	}

	s.integrateKnockback(dt.Seconds())
}

// integrateKnockback moves entities by their impulse velocity, decays
// it proportionally and removes it once it falls below the rest speed
func (s *StatusSystem) integrateKnockback(dt float64) {
	for _, e := range s.world.Components.Knockback.GetAllEntities() {
		kb, _ := s.world.Components.Knockback.GetComponent(e)

		if kin, ok := s.world.Components.Kinetic.GetComponent(e); ok {
			kin.X += kb.VelX * dt
			kin.Y += kb.VelY * dt
			s.world.Components.Kinetic.SetComponent(e, kin)
		}

		damp := 1 - kb.Decay*dt
		if damp < 0 {
			damp = 0
		}
		kb.VelX *= damp
		kb.VelY *= damp

		if math.Hypot(kb.VelX, kb.VelY) < parameter.CombatKnockbackRest {
			s.world.Components.Knockback.RemoveEntity(e)
		} else {
			s.world.Components.Knockback.SetComponent(e, kb)
		}
	}
}
