package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/desert-brawler/actor"
	"github.com/lixenwraith/desert-brawler/component"
	"github.com/lixenwraith/desert-brawler/core"
	"github.com/lixenwraith/desert-brawler/event"
	"github.com/lixenwraith/desert-brawler/parameter"
)

// GameContext owns the world, the control-event router and tick sequencing
// It is the single entry point the frontend drives the simulation through
type GameContext struct {
	World  *World
	Router *Router
}

// NewGameContext creates the world with all resources initialized
// Systems are registered separately via AddSystem
func NewGameContext(seed int64) *GameContext {
	res := &Resource{
		Time:   &TimeResource{DeltaTime: parameter.TickInterval},
		Config: &ConfigResource{GroundY: 0, Seed: seed},
		Input:  &InputResource{},
		Round: &RoundResource{
			Remaining: parameter.RoundDuration,
			Rand:      rand.New(rand.NewSource(seed)),
		},
		Game:    &GameResource{},
		Control: &EventQueueResource{Queue: event.NewQueue()},
		Damage:  &EventQueueResource{Queue: event.NewQueue()},
		Defeat:  &EventQueueResource{Queue: event.NewQueue()},
	}

	return &GameContext{
		World:  NewWorld(res),
		Router: NewRouter(res.Control.Queue),
	}
}

// AddSystem registers a system with the world and the event router
func (g *GameContext) AddSystem(s System) {
	g.World.AddSystem(s)
	g.Router.Register(s)
}

// Step advances the simulation by one fixed tick
// Dispatch order: time update, control events, systems, edge-input clear
func (g *GameContext) Step(dt time.Duration) {
	g.World.RunSafe(func() {
		res := g.World.Resources
		res.Time.DeltaTime = dt
		res.Time.FrameNumber++

		g.Router.DispatchAll()
		g.World.UpdateLocked()

		res.Input.ClearEdges()
	})
}

// Reset restores the initial round state and notifies every system
// Safe to call at startup and on restart after game over
func (g *GameContext) Reset() {
	g.World.RunSafe(func() {
		res := g.World.Resources

		// Discard stale events from the previous round
		res.Control.Queue.Consume()
		res.Damage.Queue.Consume()
		res.Defeat.Queue.Consume()

		g.World.Clear()

		res.Time.FrameNumber = 0
		*res.Input = InputResource{}
		res.Round.Score = 0
		res.Round.Remaining = parameter.RoundDuration
		res.Round.PursuerCount = 0
		res.Round.SpawnCooldown = 0
		res.Round.GameOver = false
		res.Round.Rand = rand.New(rand.NewSource(res.Config.Seed))

		res.Game.Actor = g.spawnActor()

		// Broadcast reset so systems re-run Init, entities above are
		// already in place when handlers observe the event
		g.World.PushEvent(event.EventGameReset, nil)
		g.Router.DispatchAll()
	})
}

// spawnActor creates the player fighter at the arena origin
func (g *GameContext) spawnActor() core.Entity {
	w := g.World
	groundY := w.Resources.Config.GroundY

	e := w.CreateEntity()

	w.Components.Actor.SetComponent(e, component.ActorComponent{
		State:   actor.StateIdle,
		GroundY: groundY,
	})
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{X: 0, Y: groundY})
	w.Components.Facing.SetComponent(e, component.FacingComponent{Direction: core.FacingRight})
	w.Components.Health.SetComponent(e, component.HealthComponent{
		Current: parameter.ActorInitialHealth,
		Max:     parameter.ActorInitialHealth,
	})
	w.Components.Hurtbox.SetComponent(e, component.HurtboxComponent{
		Width:  parameter.ActorHurtWidth,
		Height: parameter.ActorHurtHeight,
	})
	w.Components.Combo.SetComponent(e, component.ComboComponent{})
	w.Components.HitTrack.SetComponent(e, component.HitTrackComponent{})

	anim := actor.Lookup(actor.StateIdle).Animation()
	w.Components.Animation.SetComponent(e, component.AnimationComponent{
		Sheet:         anim.Sheet,
		First:         anim.FirstFrame,
		Last:          anim.LastFrame,
		Frame:         anim.FirstFrame,
		FrameDuration: anim.FrameDuration,
	})

	return e
}
