package core

// Entity is a unique identifier for an entity
// Zero is the reserved invalid entity
type Entity uint64

// Facing is the horizontal orientation of an entity
type Facing int8

const (
	FacingNone Facing = iota
	FacingLeft
	FacingRight
)

// Sign returns the x-axis direction multiplier for the facing
func (f Facing) Sign() float64 {
	switch f {
	case FacingLeft:
		return -1
	case FacingRight:
		return 1
	}
	return 0
}
