package component

// HealthComponent holds remaining hit points
type HealthComponent struct {
	Current int
	Max     int
}
