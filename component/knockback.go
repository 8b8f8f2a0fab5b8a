package component

// KnockbackComponent is an impulse velocity that decays toward rest
// It is integrated separately from regular movement so stunned entities
// still slide away from the hit
type KnockbackComponent struct {
	VelX  float64
	VelY  float64
	Decay float64
}
