package component

// HitboxComponent is a damage-dealing region relative to its owner
// Active is true only during the middle third of an attack animation
type HitboxComponent struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
	Active  bool
}
