package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/desert-brawler/core"
	"github.com/lixenwraith/desert-brawler/event"
)

// Resource holds singleton simulation resources, initialized during
// GameContext creation and accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Input  *InputResource
	Round  *RoundResource
	Game   *GameResource

	// Control carries lifecycle events (reset), routed once per tick
	// before systems run
	Control *EventQueueResource

	// Damage and Defeat are intra-tick pipelines: produced by an
	// earlier phase and drained by a later phase of the same tick
	Damage *EventQueueResource
	Defeat *EventQueueResource
}

// TimeResource wraps tick timing for systems
// Updated by GameContext at the start of every tick
type TimeResource struct {
	// DeltaTime is the fixed simulation step of the current tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count since the last reset
	FrameNumber int64
}

// ConfigResource holds static configuration decided at startup
type ConfigResource struct {
	// GroundY is the resting height of grounded entities
	GroundY float64

	// Seed drives pursuer spawn randomness
	Seed int64
}

// InputResource is the per-tick control snapshot
// Held controls persist across ticks, edge-triggered controls are
// cleared by GameContext at the end of each tick
type InputResource struct {
	// Held
	Left  bool
	Right bool
	Walk  bool

	// Edge-triggered
	Jump  bool
	Punch bool
	Kick  bool
}

// ClearEdges resets the edge-triggered controls after a tick consumed them
func (in *InputResource) ClearEdges() {
	in.Jump = false
	in.Punch = false
	in.Kick = false
}

// RoundResource tracks score, round timing and the pursuer population
type RoundResource struct {
	Score         int
	Remaining     time.Duration
	PursuerCount  int
	SpawnCooldown time.Duration
	GameOver      bool

	// Rand drives spawn side selection, seeded from ConfigResource
	Rand *rand.Rand
}

// GameResource holds well-known entity references
type GameResource struct {
	Actor core.Entity
}

// EventQueueResource wraps an event queue for systems access
type EventQueueResource struct {
	Queue *event.Queue
}
