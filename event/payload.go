package event

import "github.com/lixenwraith/desert-brawler/core"

// DamagePayload describes one contact detected by the collision phase
// AttackerX is the attacker position snapshot used for knockback direction
type DamagePayload struct {
	Attacker  core.Entity
	Target    core.Entity
	Damage    int
	AttackerX float64
}

// DefeatPayload identifies a defeated entity
type DefeatPayload struct {
	Entity core.Entity
	Actor  bool // true when the defeated entity is the controllable actor
}
