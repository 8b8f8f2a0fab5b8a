package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/desert-brawler/component"
	"github.com/lixenwraith/desert-brawler/event"
	"github.com/lixenwraith/desert-brawler/parameter"
)

func TestPunchDamagesOverlappingPursuerOnce(t *testing.T) {
	ctx := newTestContext(1)

	// In front of the actor, inside hitbox reach but outside contact range
	p := spawnTestPursuer(ctx, 140, 0)

	ctx.World.Resources.Input.Punch = true
	step(ctx, 30)

	health, ok := ctx.World.Components.Health.GetComponent(p)
	if !ok {
		t.Fatalf("Expected pursuer to survive a single punch")
	}
	want := parameter.PursuerInitialHealth - parameter.CombatDamagePunch
	if health.Current != want {
		t.Errorf("Expected exactly one damage application (%d hp), got %d", want, health.Current)
	}
}

func TestHitAppliesStatusEffects(t *testing.T) {
	ctx := newTestContext(1)
	p := spawnTestPursuer(ctx, 140, 0)

	ctx.World.Resources.Input.Punch = true
	step(ctx, 12)

	w := ctx.World
	if !w.Components.Stun.HasEntity(p) {
		t.Errorf("Expected struck pursuer to be stunned")
	}
	if !w.Components.Invulnerable.HasEntity(p) {
		t.Errorf("Expected struck pursuer to gain damage immunity")
	}
	if !w.Components.HitFlash.HasEntity(p) {
		t.Errorf("Expected struck pursuer to flash")
	}

	kb, ok := w.Components.Knockback.GetComponent(p)
	if !ok {
		t.Fatalf("Expected struck pursuer to be knocked back")
	}
	if kb.VelX <= 0 {
		t.Errorf("Expected knockback away from the attacker, got VelX %v", kb.VelX)
	}
}

func TestKnockbackDecaysToRest(t *testing.T) {
	ctx := newTestContext(1)
	w := ctx.World

	p := spawnTestPursuer(ctx, 140, 0)
	w.Components.Knockback.SetComponent(p, component.KnockbackComponent{
		VelX:  parameter.CombatKnockbackSpeed,
		Decay: parameter.CombatKnockbackDecay,
	})

	before, _ := w.Components.Kinetic.GetComponent(p)
	step(ctx, 1)
	after, _ := w.Components.Kinetic.GetComponent(p)

	// Knockback outpaces the pursuer's own homing step
	if after.X <= before.X {
		t.Errorf("Expected knockback to move the pursuer right, got %v -> %v", before.X, after.X)
	}

	// 300 units/s decaying at 5/s reaches rest in under two seconds
	step(ctx, 130)
	if w.Components.Knockback.HasEntity(p) {
		t.Errorf("Expected knockback removed once below rest speed")
	}
}

func TestContactDamageThrottledByImmunity(t *testing.T) {
	ctx := newTestContext(1)
	spawnTestPursuer(ctx, 50, 0)

	// Ten ticks of continuous contact, one application inside the window
	step(ctx, 10)

	health, _ := ctx.World.Components.Health.GetComponent(ctx.World.Resources.Game.Actor)
	want := parameter.ActorInitialHealth - parameter.CombatDamageContact
	if health.Current != want {
		t.Errorf("Expected contact damage once (%d hp), got %d", want, health.Current)
	}
}

func TestStunnedPursuerNeitherTargetableNorDamaging(t *testing.T) {
	ctx := newTestContext(1)
	w := ctx.World

	p := spawnTestPursuer(ctx, 50, 0)
	w.Components.Stun.SetComponent(p, component.StunComponent{Remaining: 10 * time.Second})

	before, _ := w.Components.Kinetic.GetComponent(p)

	ctx.World.Resources.Input.Punch = true
	step(ctx, 30)

	health, _ := w.Components.Health.GetComponent(p)
	if health.Current != parameter.PursuerInitialHealth {
		t.Errorf("Expected stunned pursuer untargetable, got %d hp", health.Current)
	}

	actorHealth, _ := w.Components.Health.GetComponent(w.Resources.Game.Actor)
	if actorHealth.Current != parameter.ActorInitialHealth {
		t.Errorf("Expected no contact damage from stunned pursuer, got %d hp", actorHealth.Current)
	}

	after, _ := w.Components.Kinetic.GetComponent(p)
	if after.X != before.X || after.Y != before.Y {
		t.Errorf("Expected stunned pursuer frozen, moved %v,%v -> %v,%v",
			before.X, before.Y, after.X, after.Y)
	}
}

func TestDamageClampsAtZero(t *testing.T) {
	ctx := newTestContext(1)
	w := ctx.World

	p := spawnTestPursuer(ctx, 140, 0)
	w.Components.Health.SetComponent(p, component.HealthComponent{Current: 1, Max: parameter.PursuerInitialHealth})

	w.Resources.Damage.Queue.Push(event.GameEvent{
		Type: event.EventDamage,
		Payload: &event.DamagePayload{
			Attacker:  w.Resources.Game.Actor,
			Target:    p,
			Damage:    parameter.CombatDamageAerial,
			AttackerX: 0,
		},
	})
	step(ctx, 1)

	// Defeat destroys the entity the same tick, health never goes negative
	if w.Components.Health.HasEntity(p) {
		health, _ := w.Components.Health.GetComponent(p)
		t.Errorf("Expected defeated pursuer destroyed, got %d hp", health.Current)
	}
}

func TestDefeatAwardsScoreExactlyOnce(t *testing.T) {
	ctx := newTestContext(1)
	w := ctx.World

	p := spawnTestPursuer(ctx, 140, 0)
	w.Components.Health.SetComponent(p, component.HealthComponent{Current: 2, Max: parameter.PursuerInitialHealth})

	ctx.World.Resources.Input.Punch = true
	step(ctx, 30)

	if w.Components.Pursuer.HasEntity(p) {
		t.Errorf("Expected defeated pursuer destroyed")
	}
	if w.Resources.Round.Score != parameter.RoundScorePerDefeat {
		t.Errorf("Expected score %d, got %d", parameter.RoundScorePerDefeat, w.Resources.Round.Score)
	}
	if w.Resources.Round.PursuerCount != 0 {
		t.Errorf("Expected pursuer count 0, got %d", w.Resources.Round.PursuerCount)
	}
}

func TestInvulnerabilityBlocksRepeatHits(t *testing.T) {
	ctx := newTestContext(1)
	w := ctx.World

	p := spawnTestPursuer(ctx, 140, 0)
	w.Components.Invulnerable.SetComponent(p, component.InvulnerableComponent{Remaining: 10 * time.Second})

	ctx.World.Resources.Input.Punch = true
	step(ctx, 30)

	health, _ := w.Components.Health.GetComponent(p)
	if health.Current != parameter.PursuerInitialHealth {
		t.Errorf("Expected immune pursuer to take no damage, got %d hp", health.Current)
	}
}
