package component

import "time"

// AnimationComponent tracks playback through a sprite sheet row
// Frame 0 of each sheet is blank, playback runs First..Last inclusive
type AnimationComponent struct {
	Sheet         string
	First         int
	Last          int
	Frame         int
	FrameDuration time.Duration

	// Acc accumulates simulation time toward the next frame step
	Acc time.Duration

	// Finished is set on the tick the animation wraps past Last
	// and cleared at the start of the next animation pass
	Finished bool
}

// TotalFrames is the playable frame count of the sheet row
func (a *AnimationComponent) TotalFrames() int {
	return a.Last + 1
}
