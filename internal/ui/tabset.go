package ui

// TabSet tracks which tab is active and rotates through tabs.
type TabSet struct {
	Current  int // index of the active tab, -1 when there are no tabs
	Count    int
	OnChange func(from, to int)
}

// NewTabSet creates a set with the first tab active.
func NewTabSet(count int) *TabSet {
	cur := 0
	if count <= 0 {
		count, cur = 0, -1
	}
	return &TabSet{Current: cur, Count: count}
}

// Next activates the following tab, wrapping to the first.
// Returns the new current index.
func (t *TabSet) Next() int {
	if t.Count == 0 {
		return -1
	}
	t.change((t.Current + 1) % t.Count)
	return t.Current
}

// Prev activates the preceding tab, wrapping to the last.
func (t *TabSet) Prev() int {
	if t.Count == 0 {
		return -1
	}
	t.change((t.Current - 1 + t.Count) % t.Count)
	return t.Current
}

// Select activates tab i.
// Returns true if i names a tab.
func (t *TabSet) Select(i int) bool {
	if i < 0 || i >= t.Count {
		return false
	}
	t.change(i)
	return true
}

func (t *TabSet) change(to int) {
	from := t.Current
	t.Current = to
	if t.OnChange != nil && from != to {
		t.OnChange(from, to)
	}
}
