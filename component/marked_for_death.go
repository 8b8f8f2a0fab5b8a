package component

// MarkedForDeathComponent tags an entity for safe destruction after
// the damage pass, preventing double defeat processing in the same tick
type MarkedForDeathComponent struct{}
