package component

// HurtboxComponent is a damage-receiving region centered on its owner
type HurtboxComponent struct {
	Width  float64
	Height float64
}
