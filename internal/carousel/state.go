package carousel

import "fmt"

// State is the single source of truth for the carousel position.
// Count is fixed at construction; Current is always in [0, Count) when Count > 0.
type State struct {
	current int
	count   int
}

// NewState creates a state at index 0. Negative counts are treated as zero.
func NewState(count int) *State {
	if count < 0 {
		count = 0
	}
	return &State{count: count}
}

// Current returns the current index. It is 0 for an empty carousel.
func (s *State) Current() int { return s.current }

// Count returns the number of panels.
func (s *State) Count() int { return s.count }

// Apply performs m and returns the new current index.
// On error the current index is unchanged.
func (s *State) Apply(m Move) (int, error) {
	if s.count == 0 {
		return s.current, ErrEmptyCarousel
	}
	switch m.Kind {
	case MoveNext:
		s.current = (s.current + 1) % s.count
	case MovePrevious:
		s.current = (s.current - 1 + s.count) % s.count
	case MoveGoTo:
		if m.Index < 0 || m.Index >= s.count {
			return s.current, fmt.Errorf("goto %d with %d panels: %w", m.Index, s.count, ErrOutOfRange)
		}
		s.current = m.Index
	default:
		return s.current, fmt.Errorf("unknown move kind %d", m.Kind)
	}
	return s.current, nil
}
