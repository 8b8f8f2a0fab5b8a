package system

import (
	"math"

	"github.com/lixenwraith/desert-brawler/component"
	"github.com/lixenwraith/desert-brawler/core"
	"github.com/lixenwraith/desert-brawler/engine"
	"github.com/lixenwraith/desert-brawler/event"
	"github.com/lixenwraith/desert-brawler/parameter"
)

// RoundSystem is the end-of-tick bookkeeper: it drains defeat events,
// awards score, runs the round timer, spawns pursuers on a cadence up
// to the roster cap, and culls pursuers that drift out of the world
type RoundSystem struct {
	world *engine.World
}

func NewRoundSystem(world *engine.World) engine.System {
	s := &RoundSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *RoundSystem) Init() {}

// Name returns system's name
func (s *RoundSystem) Name() string {
	return "round"
}

func (s *RoundSystem) Priority() int {
	return parameter.PriorityRound
}

func (s *RoundSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *RoundSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *RoundSystem) Update() {
	res := s.world.Resources

	s.drainDefeats()

	if res.Round.GameOver {
		return
	}

	dt := res.Time.DeltaTime

	res.Round.Remaining -= dt
	if res.Round.Remaining <= 0 {
		res.Round.Remaining = 0
		s.endRound()
		return
	}

	res.Round.SpawnCooldown -= dt
	if res.Round.SpawnCooldown <= 0 && res.Round.PursuerCount < parameter.PursuerMaxCount {
		s.spawnPursuer()
		res.Round.SpawnCooldown = parameter.PursuerSpawnInterval
	}

	s.cullDistant()
}

// drainDefeats processes every defeat emitted by this tick's damage pass
func (s *RoundSystem) drainDefeats() {
	res := s.world.Resources

	for _, ev := range res.Defeat.Queue.Consume() {
		payload, ok := ev.Payload.(*event.DefeatPayload)
		if !ok {
			continue
		}

		if payload.Actor {
			s.endRound()
			continue
		}

		s.world.DestroyEntity(payload.Entity)
		res.Round.PursuerCount--
		if !res.Round.GameOver {
			res.Round.Score += parameter.RoundScorePerDefeat
		}
	}
}

// endRound stops the simulation and announces the result
func (s *RoundSystem) endRound() {
	res := s.world.Resources
	if res.Round.GameOver {
		return
	}
	res.Round.GameOver = true
	s.world.PushEvent(event.EventRoundOver, nil)
}

// spawnPursuer creates a pursuer off-screen on a random side of the actor
func (s *RoundSystem) spawnPursuer() {
	res := s.world.Resources

	akin, ok := s.world.Components.Kinetic.GetComponent(res.Game.Actor)
	if !ok {
		return
	}

	side := 1.0
	facing := core.FacingLeft
	if res.Round.Rand.Intn(2) == 0 {
		side = -1.0
		facing = core.FacingRight
	}

	e := s.world.CreateEntity()
	s.world.Components.Pursuer.SetComponent(e, component.PursuerComponent{})
	s.world.Components.Kinetic.SetComponent(e, component.KineticComponent{
		X: akin.X + side*parameter.PursuerSpawnDistance,
		Y: res.Config.GroundY,
	})
	s.world.Components.Facing.SetComponent(e, component.FacingComponent{Direction: facing})
	s.world.Components.Health.SetComponent(e, component.HealthComponent{
		Current: parameter.PursuerInitialHealth,
		Max:     parameter.PursuerInitialHealth,
	})
	s.world.Components.Hurtbox.SetComponent(e, component.HurtboxComponent{
		Width:  parameter.PursuerHurtWidth,
		Height: parameter.PursuerHurtHeight,
	})

	res.Round.PursuerCount++
}

// cullDistant destroys pursuers that drifted past the world extent
func (s *RoundSystem) cullDistant() {
	res := s.world.Resources

	akin, ok := s.world.Components.Kinetic.GetComponent(res.Game.Actor)
	if !ok {
		return
	}

	for _, e := range s.world.Components.Pursuer.GetAllEntities() {
		kin, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		if math.Abs(kin.X-akin.X) > parameter.PursuerCullDistance {
			s.world.DestroyEntity(e)
			res.Round.PursuerCount--
		}
	}
}
