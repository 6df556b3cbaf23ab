package carousel

import "fmt"

// Indicator represents one panel's position in the indicator row.
type Indicator struct {
	Index  int // panel index this indicator points at
	Active bool
}

// IndicatorSet owns the generated indicators. Indicators are created once by
// Build and never added or removed afterwards.
type IndicatorSet struct {
	items  []Indicator
	byIdx  map[int]*Indicator
	built  bool
	active int
}

// NewIndicatorSet returns an empty, unbuilt set.
func NewIndicatorSet() *IndicatorSet {
	return &IndicatorSet{active: -1}
}

// Build creates count indicators in ascending index order, all inactive.
// A zero count is a no-op that leaves the set empty.
func (s *IndicatorSet) Build(count int) error {
	if s.built {
		return ErrAlreadyInitialized
	}
	s.built = true
	if count <= 0 {
		return nil
	}
	s.items = make([]Indicator, count)
	s.byIdx = make(map[int]*Indicator, count)
	for i := range s.items {
		s.items[i] = Indicator{Index: i}
		s.byIdx[i] = &s.items[i]
	}
	return nil
}

// Lookup returns the indicator for index.
func (s *IndicatorSet) Lookup(index int) (*Indicator, error) {
	ind, ok := s.byIdx[index]
	if !ok {
		return nil, fmt.Errorf("indicator %d of %d: %w", index, len(s.items), ErrIndexNotFound)
	}
	return ind, nil
}

// SetActive marks index active and every other indicator inactive.
// Calling it again with the same index leaves the same single active indicator.
func (s *IndicatorSet) SetActive(index int) error {
	target, err := s.Lookup(index)
	if err != nil {
		return err
	}
	for i := range s.items {
		s.items[i].Active = false
	}
	target.Active = true
	s.active = index
	return nil
}

// Active returns the active index, or -1 before the first SetActive.
func (s *IndicatorSet) Active() int { return s.active }

// Len returns the number of indicators.
func (s *IndicatorSet) Len() int { return len(s.items) }

// Flags returns the active flag of every indicator in index order.
func (s *IndicatorSet) Flags() []bool {
	flags := make([]bool, len(s.items))
	for i, ind := range s.items {
		flags[i] = ind.Active
	}
	return flags
}

// Snapshot returns a copy of the indicators.
func (s *IndicatorSet) Snapshot() []Indicator {
	out := make([]Indicator, len(s.items))
	copy(out, s.items)
	return out
}
