package component

import "github.com/lixenwraith/desert-brawler/core"

// FacingComponent holds the horizontal direction an entity faces
type FacingComponent struct {
	Direction core.Facing
}
