package carousel

import (
	"fmt"
	"strconv"
)

// Roles and annotations understood by the router.
const (
	RoleIndicator = "indicator"
	AttrSlide     = "slide"
)

// Target is the element an activation originated from. The router inspects
// it at dispatch time instead of binding a handler per indicator.
type Target interface {
	Role() string
	Attr(name string) (string, bool)
}

// Element is a Target carrying string annotations.
type Element struct {
	Kind  string
	Attrs map[string]string
}

// Role implements Target.
func (e Element) Role() string { return e.Kind }

// Attr implements Target.
func (e Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// IndicatorElement returns the target for the indicator of panel i.
func IndicatorElement(i int) Element {
	return Element{Kind: RoleIndicator, Attrs: map[string]string{AttrSlide: strconv.Itoa(i)}}
}

// Event is an input delivered by the host.
type Event interface {
	isEvent()
}

// Forward is the "next" control being activated.
type Forward struct{}

// Backward is the "previous" control being activated.
type Backward struct{}

// KeyPress is a key press with its host key code (e.g. "left").
type KeyPress struct {
	Code string
}

// Activate is a click (or equivalent) inside the indicator container.
type Activate struct {
	Target Target
}

func (Forward) isEvent()  {}
func (Backward) isEvent() {}
func (KeyPress) isEvent() {}
func (Activate) isEvent() {}

// Mover applies a move. *Engine implements it.
type Mover interface {
	HandleInput(Move) error
}

// Keys designates the key codes bound to Previous and Next.
type Keys struct {
	Previous []string
	Next     []string
}

// DefaultKeys binds the arrow keys.
func DefaultKeys() Keys {
	return Keys{Previous: []string{"left"}, Next: []string{"right"}}
}

// Router binds the input channels to a single Mover. No channel changes
// carousel state except through Mover.HandleInput.
type Router struct {
	mover Mover
	keys  map[string]MoveKind
}

// NewRouter creates a router dispatching to m.
func NewRouter(m Mover, keys Keys) *Router {
	r := &Router{mover: m, keys: make(map[string]MoveKind)}
	for _, k := range keys.Previous {
		r.keys[k] = MovePrevious
	}
	for _, k := range keys.Next {
		r.keys[k] = MoveNext
	}
	return r
}

// Resolve maps ev to a move. ok is false when ev is ignored (unbound key,
// activation outside an indicator).
func (r *Router) Resolve(ev Event) (m Move, ok bool, err error) {
	switch ev := ev.(type) {
	case Forward:
		return Next(), true, nil
	case Backward:
		return Previous(), true, nil
	case KeyPress:
		kind, bound := r.keys[ev.Code]
		if !bound {
			return Move{}, false, nil
		}
		return Move{Kind: kind}, true, nil
	case Activate:
		if ev.Target == nil || ev.Target.Role() != RoleIndicator {
			return Move{}, false, nil
		}
		raw, found := ev.Target.Attr(AttrSlide)
		if !found {
			return Move{}, false, fmt.Errorf("indicator without %q annotation: %w", AttrSlide, ErrMalformedIndex)
		}
		i, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return Move{}, false, fmt.Errorf("indicator annotation %q: %w", raw, ErrMalformedIndex)
		}
		return GoTo(i), true, nil
	}
	return Move{}, false, nil
}

// Dispatch resolves ev and hands the move to the Mover.
// Ignored events return nil.
func (r *Router) Dispatch(ev Event) error {
	m, ok, err := r.Resolve(ev)
	if err != nil || !ok {
		return err
	}
	return r.mover.HandleInput(m)
}
