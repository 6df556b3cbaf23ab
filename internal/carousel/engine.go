package carousel

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Frame is what the engine pushes to the renderer on every render.
type Frame struct {
	Current    int
	Offsets    []int  // per panel, percent of viewport width
	Indicators []bool // per indicator, active flag
}

// Renderer materializes frames. The engine is agnostic to how.
// Render is called with the engine lock held and must not call back into the engine.
type Renderer interface {
	Render(Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame)

// Render implements Renderer.
func (f RendererFunc) Render(fr Frame) { f(fr) }

// Transition describes one applied move, successful or not.
type Transition struct {
	Move Move
	From int
	To   int
	Err  error
}

// Observer is notified after every move the engine applies.
// Moves on an empty carousel are not observed.
type Observer interface {
	Observe(Transition)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver adds an observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// Engine orchestrates State, Layout and IndicatorSet.
// Engine is safe for concurrent use; apply and render are serialized.
type Engine struct {
	mu          sync.Mutex
	state       *State
	indicators  *IndicatorSet
	renderer    Renderer
	observers   []Observer
	log         *slog.Logger
	initialized bool
}

// Ensure Engine can be driven by a Router.
var _ Mover = (*Engine)(nil)

// New creates an engine for count panels. Call Initialize before HandleInput.
func New(count int, r Renderer, opts ...Option) *Engine {
	if r == nil {
		r = RendererFunc(func(Frame) {})
	}
	e := &Engine{
		state:      NewState(count),
		indicators: NewIndicatorSet(),
		renderer:   r,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize builds the indicators and renders panel 0.
// An empty carousel builds nothing and renders nothing.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initialized {
		return ErrAlreadyInitialized
	}
	if err := e.indicators.Build(e.state.Count()); err != nil {
		return err
	}
	e.initialized = true
	e.log.Debug("carousel initialized", "panels", e.state.Count())
	e.renderLocked()
	return nil
}

// HandleInput applies m and re-renders, even if the index did not change.
// A rejected move (ErrOutOfRange) is returned and nothing is rendered.
// On an empty carousel HandleInput is a no-op and returns nil.
func (e *Engine) HandleInput(m Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ErrNotInitialized
	}
	from := e.state.Current()
	to, err := e.state.Apply(m)
	if errors.Is(err, ErrEmptyCarousel) {
		return nil
	}
	e.notify(Transition{Move: m, From: from, To: to, Err: err})
	if err != nil {
		e.log.Warn("carousel move rejected", "move", m.String(), "current", from, "err", err)
		return err
	}
	e.log.Debug("carousel move", "move", m.String(), "from", from, "to", to)
	e.renderLocked()
	return nil
}

// Render pushes the current frame again, e.g. after the host resized.
func (e *Engine) Render() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderLocked()
}

func (e *Engine) renderLocked() {
	if !e.initialized || e.state.Count() == 0 {
		return
	}
	cur := e.state.Current()
	if err := e.indicators.SetActive(cur); err != nil {
		panic(fmt.Sprintf("carousel: invariant violated: %v", err))
	}
	e.renderer.Render(Frame{
		Current:    cur,
		Offsets:    Layout(cur, e.state.Count()),
		Indicators: e.indicators.Flags(),
	})
}

func (e *Engine) notify(t Transition) {
	for _, o := range e.observers {
		o.Observe(t)
	}
}

// CurrentIndex returns the visible panel index.
func (e *Engine) CurrentIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Current()
}

// Count returns the number of panels.
func (e *Engine) Count() int {
	return e.state.Count()
}

// Indicators returns a snapshot of the indicator records.
func (e *Engine) Indicators() []Indicator {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.indicators.Snapshot()
}
