package component

import "github.com/lixenwraith/desert-brawler/actor"

// ActorComponent marks the player-controlled fighter and holds its
// behavior machine state
type ActorComponent struct {
	State actor.StateID

	// UsedAerialAttack is set when an airborne attack fires and
	// cleared on the next jump takeoff
	UsedAerialAttack bool

	// GroundY is the resting height the actor returns to after a jump
	GroundY float64
}
