package ui

import "slider/internal/carousel"

// Zone is a clickable cell range on one row: columns [X0, X1) of row Y.
type Zone struct {
	X0, X1 int
	Y      int
	Target carousel.Target
}

// Zones maps screen cells back to the element drawn there. Views rebuild it
// on every View call; one click handler per container consults it instead of
// one handler per generated element.
type Zones struct {
	zones []Zone
}

// Reset drops all zones.
func (z *Zones) Reset() {
	z.zones = z.zones[:0]
}

// Add registers a zone. Later zones sit on top of earlier ones.
func (z *Zones) Add(x0, x1, y int, t carousel.Target) {
	if x1 <= x0 || t == nil {
		return
	}
	z.zones = append(z.zones, Zone{X0: x0, X1: x1, Y: y, Target: t})
}

// AddRows registers the same target on rows [y0, y1).
func (z *Zones) AddRows(x0, x1, y0, y1 int, t carousel.Target) {
	for y := y0; y < y1; y++ {
		z.Add(x0, x1, y, t)
	}
}

// Hit returns the topmost target covering (x, y).
func (z *Zones) Hit(x, y int) (carousel.Target, bool) {
	for i := len(z.zones) - 1; i >= 0; i-- {
		zn := z.zones[i]
		if zn.Y == y && x >= zn.X0 && x < zn.X1 {
			return zn.Target, true
		}
	}
	return nil, false
}

// Len returns the number of zones.
func (z *Zones) Len() int { return len(z.zones) }
