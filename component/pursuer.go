package component

// PursuerComponent marks a hostile chaser
type PursuerComponent struct{}
