package component

// KineticComponent holds world position and velocity
// Positions are in world units, Y grows upward with ground at GroundY
type KineticComponent struct {
	X, Y       float64
	VelX, VelY float64
}
