package carousel

// PanelWidth is the offset distance between neighbouring panels, in percent of the viewport width.
const PanelWidth = 100

// Layout returns the horizontal offset of every panel, in percent of the
// viewport width: panel i sits at (i - current) * 100. The visible panel is
// the only one at offset 0. Layout has no side effects.
func Layout(current, count int) []int {
	if count <= 0 {
		return nil
	}
	offsets := make([]int, count)
	for i := range offsets {
		offsets[i] = (i - current) * PanelWidth
	}
	return offsets
}
