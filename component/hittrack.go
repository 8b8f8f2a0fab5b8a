package component

import "github.com/lixenwraith/desert-brawler/core"

// HitTrackComponent records the targets already struck by the current
// attack activation, guaranteeing at most one hit per target per attack
type HitTrackComponent struct {
	Struck map[core.Entity]struct{}
}

// Mark records a struck target, allocating the set lazily
func (h *HitTrackComponent) Mark(target core.Entity) {
	if h.Struck == nil {
		h.Struck = make(map[core.Entity]struct{})
	}
	h.Struck[target] = struct{}{}
}

// Has reports whether target was already struck by this activation
func (h *HitTrackComponent) Has(target core.Entity) bool {
	_, ok := h.Struck[target]
	return ok
}

// Clear resets the set for a new attack activation
func (h *HitTrackComponent) Clear() {
	for k := range h.Struck {
		delete(h.Struck, k)
	}
}
