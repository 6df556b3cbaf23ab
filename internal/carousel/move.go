package carousel

import "fmt"

// MoveKind identifies the kind of navigation intent.
type MoveKind int

const (
	MoveNext MoveKind = iota
	MovePrevious
	MoveGoTo
)

func (k MoveKind) String() string {
	switch k {
	case MoveNext:
		return "next"
	case MovePrevious:
		return "previous"
	case MoveGoTo:
		return "goto"
	default:
		return "unknown"
	}
}

// Move is a transition request applied to State.
// Index is only meaningful for MoveGoTo.
type Move struct {
	Kind  MoveKind
	Index int
}

// Next returns a move to the following panel, wrapping to 0 after the last.
func Next() Move { return Move{Kind: MoveNext} }

// Previous returns a move to the preceding panel, wrapping to the last from 0.
func Previous() Move { return Move{Kind: MovePrevious} }

// GoTo returns a move to panel i.
func GoTo(i int) Move { return Move{Kind: MoveGoTo, Index: i} }

func (m Move) String() string {
	if m.Kind == MoveGoTo {
		return fmt.Sprintf("goto(%d)", m.Index)
	}
	return m.Kind.String()
}
