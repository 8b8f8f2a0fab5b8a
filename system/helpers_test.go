package system

import (
	"time"

	"github.com/lixenwraith/desert-brawler/actor"
	"github.com/lixenwraith/desert-brawler/component"
	"github.com/lixenwraith/desert-brawler/core"
	"github.com/lixenwraith/desert-brawler/engine"
	"github.com/lixenwraith/desert-brawler/parameter"
)

// newTestContext builds a fully wired simulation ready to step
func newTestContext(seed int64) *engine.GameContext {
	ctx := engine.NewGameContext(seed)
	w := ctx.World

	ctx.AddSystem(NewActorInputSystem(w))
	ctx.AddSystem(NewActorStateSystem(w))
	ctx.AddSystem(NewMovementSystem(w))
	ctx.AddSystem(NewPursuerSystem(w))
	ctx.AddSystem(NewHitboxSystem(w))
	ctx.AddSystem(NewDamageSystem(w))
	ctx.AddSystem(NewStatusSystem(w))
	ctx.AddSystem(NewFlashSystem(w))
	ctx.AddSystem(NewAnimationSystem(w))
	ctx.AddSystem(NewRoundSystem(w))

	ctx.Reset()

	// Tests spawn their own pursuers, the cadence is re-armed by the
	// round tests that exercise it
	w.Resources.Round.SpawnCooldown = time.Hour

	return ctx
}

// step advances the simulation by n fixed ticks
func step(ctx *engine.GameContext, n int) {
	for i := 0; i < n; i++ {
		ctx.Step(parameter.TickInterval)
	}
}

// spawnTestPursuer places a pursuer at the given position and keeps the
// round bookkeeping consistent
func spawnTestPursuer(ctx *engine.GameContext, x, y float64) core.Entity {
	w := ctx.World

	e := w.CreateEntity()
	w.Components.Pursuer.SetComponent(e, component.PursuerComponent{})
	w.Components.Kinetic.SetComponent(e, component.KineticComponent{X: x, Y: y})
	w.Components.Facing.SetComponent(e, component.FacingComponent{Direction: core.FacingLeft})
	w.Components.Health.SetComponent(e, component.HealthComponent{
		Current: parameter.PursuerInitialHealth,
		Max:     parameter.PursuerInitialHealth,
	})
	w.Components.Hurtbox.SetComponent(e, component.HurtboxComponent{
		Width:  parameter.PursuerHurtWidth,
		Height: parameter.PursuerHurtHeight,
	})

	w.Resources.Round.PursuerCount++
	return e
}

// actorState reads the actor's current behavior state
func actorState(ctx *engine.GameContext) actor.StateID {
	ac, _ := ctx.World.Components.Actor.GetComponent(ctx.World.Resources.Game.Actor)
	return ac.State
}
