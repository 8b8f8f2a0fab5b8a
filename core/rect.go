package core

import "math"

// Rect is an axis-aligned box described by center and half extents
type Rect struct {
	CX, CY float64
	HW, HH float64
}

// NewRect builds a Rect from a center point and full width/height
func NewRect(cx, cy, w, h float64) Rect {
	return Rect{CX: cx, CY: cy, HW: w / 2, HH: h / 2}
}

// Overlaps reports whether two rects intersect
// Touching edges do not count as overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.CX-r.HW < o.CX+o.HW &&
		r.CX+r.HW > o.CX-o.HW &&
		r.CY-r.HH < o.CY+o.HH &&
		r.CY+r.HH > o.CY-o.HH
}

// Distance returns the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
